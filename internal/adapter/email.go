// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/givelink/givelink/internal/config"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/models"
	"github.com/go-resty/resty/v2"
)

const emailSendTimeout = 10 * time.Second

type emailSender struct {
	client    *resty.Client
	serviceID string
	publicKey string
	logger    *logger.Logger
}

// NewEmailSender constructs an [EmailSender] backed by a transactional email
// HTTP API (EmailJS wire format). The service and public key identify the
// sending account; the template id is chosen per call so the contact and
// feedback forms can use different templates over the same sender.
func NewEmailSender(emailCfg config.ClientEmail, log *logger.Logger) (EmailSender, error) {
	if emailCfg.BaseURL == "" {
		return nil, fmt.Errorf("empty email service base url")
	}

	client := resty.New().
		SetBaseURL(emailCfg.BaseURL).
		SetTimeout(emailSendTimeout)

	return &emailSender{
		client:    client,
		serviceID: emailCfg.ServiceID,
		publicKey: emailCfg.PublicKey,
		logger:    log,
	}, nil
}

func (e *emailSender) Send(ctx context.Context, templateID string, msg models.ContactMessage) error {
	if templateID == "" {
		return fmt.Errorf("empty email template id")
	}

	payload := map[string]any{
		"service_id":  e.serviceID,
		"template_id": templateID,
		"user_id":     e.publicKey,
		"template_params": map[string]string{
			"name":    msg.Name,
			"email":   msg.Email,
			"message": msg.Message,
		},
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("")
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: email service responded %d", ErrServerFailure, resp.StatusCode())
	}

	e.logger.Info().Str("template_id", templateID).Msg("contact email sent")
	return nil
}
