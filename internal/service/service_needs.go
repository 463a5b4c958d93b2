// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"fmt"

	"github.com/givelink/givelink/internal/adapter"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/validators"
	"github.com/givelink/givelink/models"
)

type needsService struct {
	adapter   adapter.ServerAdapter
	auth      AuthService
	validator validators.Validator
	logger    *logger.Logger
}

func NewNeedsService(serverAdapter adapter.ServerAdapter, auth AuthService, validator validators.Validator, log *logger.Logger) NeedsService {
	return &needsService{
		adapter:   serverAdapter,
		auth:      auth,
		validator: validator,
		logger:    log,
	}
}

func (s *needsService) ListAll(ctx context.Context) ([]models.UrgentNeed, error) {
	needs, err := s.adapter.ListRequirements(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list urgent needs: %w", err)
	}

	SortNeedsForDisplay(needs)
	return needs, nil
}

func (s *needsService) ListOwn(ctx context.Context) ([]models.UrgentNeed, error) {
	session, ok := s.auth.Current()
	if !ok {
		return nil, ErrNotLoggedIn
	}
	if !session.HasNGODetails() {
		return nil, ErrNGODetailsMissing
	}

	needs, err := s.adapter.ListRequirements(ctx, session.NgoID)
	if err != nil {
		return nil, fmt.Errorf("list own urgent needs: %w", err)
	}

	SortNeedsForDisplay(needs)
	return needs, nil
}

func (s *needsService) Add(ctx context.Context, need models.UrgentNeed) error {
	session, ok := s.auth.Current()
	if !ok {
		return ErrNotLoggedIn
	}
	if !session.HasNGODetails() {
		return ErrNGODetailsMissing
	}

	need.NgoID = models.APIInt(session.NgoID)
	need.NGOName = session.NGOName
	if err := s.validator.Validate(need); err != nil {
		return err
	}

	if err := s.adapter.AddRequirement(ctx, need); err != nil {
		return fmt.Errorf("add urgent need: %w", err)
	}

	s.logger.Info().
		Str("func", "needsService.Add").
		Int64("ngo_id", session.NgoID).
		Str("item_name", need.ItemName).
		Msg("urgent need posted")
	return nil
}

func (s *needsService) Delete(ctx context.Context, requirementID int64) error {
	if err := s.adapter.DeleteRequirement(ctx, requirementID); err != nil {
		return fmt.Errorf("delete urgent need: %w", err)
	}
	return nil
}
