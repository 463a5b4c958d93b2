// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"ADAPTER_API_BASE_URL":    "http://10.0.0.5/donationApp_restapi/api",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/home/user/.givelink/state.db",

		"EMAIL_BASE_URL":          "https://api.emailjs.com/api/v1.0/email/send",
		"EMAIL_SERVICE_ID":        "service_test",
		"EMAIL_CONTACT_TEMPLATE":  "template_contact",
		"EMAIL_FEEDBACK_TEMPLATE": "template_feedback",
		"EMAIL_PUBLIC_KEY":        "public_key",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "http://10.0.0.5/donationApp_restapi/api", cfg.Adapter.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/home/user/.givelink/state.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "https://api.emailjs.com/api/v1.0/email/send", cfg.Email.BaseURL)
	assert.Equal(t, "service_test", cfg.Email.ServiceID)
	assert.Equal(t, "template_contact", cfg.Email.ContactTemplate)
	assert.Equal(t, "template_feedback", cfg.Email.FeedbackTemplate)
	assert.Equal(t, "public_key", cfg.Email.PublicKey)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_API_BASE_URL": "http://localhost/api",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost/api", cfg.Adapter.APIBaseURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
