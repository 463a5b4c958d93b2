// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/givelink/givelink/internal/config"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmailSender(t *testing.T, serverURL string) EmailSender {
	t.Helper()
	s, err := NewEmailSender(config.ClientEmail{
		BaseURL:   serverURL,
		ServiceID: "service_test",
		PublicKey: "pk_test",
	}, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestEmailSend_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "service_test", body["service_id"])
		assert.Equal(t, "tmpl_contact", body["template_id"])
		assert.Equal(t, "pk_test", body["user_id"])

		params, ok := body["template_params"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ali", params["name"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := newTestEmailSender(t, srv.URL)
	err := s.Send(context.Background(), "tmpl_contact", models.ContactMessage{
		Name:    "Ali",
		Email:   "ali@x.z",
		Message: "Keep it up",
	})

	require.NoError(t, err)
}

func TestEmailSend_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	s := newTestEmailSender(t, srv.URL)
	err := s.Send(context.Background(), "tmpl_contact", models.ContactMessage{Name: "Ali"})

	require.ErrorIs(t, err, ErrServerFailure)
}

func TestEmailSend_EmptyTemplate(t *testing.T) {
	s := newTestEmailSender(t, "http://example.org")
	err := s.Send(context.Background(), "", models.ContactMessage{})
	require.Error(t, err)
}

func TestNewEmailSender_EmptyBaseURL(t *testing.T) {
	_, err := NewEmailSender(config.ClientEmail{}, logger.Nop())
	require.Error(t, err)
}
