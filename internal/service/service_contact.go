// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"fmt"

	"github.com/givelink/givelink/internal/adapter"
	"github.com/givelink/givelink/internal/config"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/validators"
	"github.com/givelink/givelink/models"
)

type contactService struct {
	sender    adapter.EmailSender
	emailCfg  config.ClientEmail
	validator validators.Validator
	logger    *logger.Logger
}

func NewContactService(sender adapter.EmailSender, emailCfg config.ClientEmail, validator validators.Validator, log *logger.Logger) ContactService {
	return &contactService{
		sender:    sender,
		emailCfg:  emailCfg,
		validator: validator,
		logger:    log,
	}
}

func (s *contactService) SendContact(ctx context.Context, msg models.ContactMessage) error {
	return s.send(ctx, s.emailCfg.ContactTemplate, msg)
}

func (s *contactService) SendFeedback(ctx context.Context, msg models.ContactMessage) error {
	return s.send(ctx, s.emailCfg.FeedbackTemplate, msg)
}

func (s *contactService) send(ctx context.Context, templateID string, msg models.ContactMessage) error {
	if err := s.validator.Validate(msg); err != nil {
		return err
	}

	if err := s.sender.Send(ctx, templateID, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
