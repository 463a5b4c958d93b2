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

type profileService struct {
	adapter   adapter.ServerAdapter
	auth      AuthService
	validator validators.Validator
	logger    *logger.Logger
}

func NewProfileService(serverAdapter adapter.ServerAdapter, auth AuthService, validator validators.Validator, log *logger.Logger) ProfileService {
	return &profileService{
		adapter:   serverAdapter,
		auth:      auth,
		validator: validator,
		logger:    log,
	}
}

func (s *profileService) Profile(ctx context.Context) (models.User, error) {
	session, ok := s.auth.Current()
	if !ok {
		return models.User{}, ErrNotLoggedIn
	}

	user, err := s.adapter.User(ctx, session.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("load profile: %w", err)
	}
	return user, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, user models.User) error {
	session, ok := s.auth.Current()
	if !ok {
		return ErrNotLoggedIn
	}
	user.UserID = models.APIInt(session.UserID)

	if err := s.validator.Validate(user); err != nil {
		return err
	}
	if err := s.adapter.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	s.logger.Info().
		Str("func", "profileService.UpdateProfile").
		Int64("user_id", session.UserID).
		Msg("profile updated")
	return nil
}

func (s *profileService) UpdateNGOProfile(ctx context.Context, ngo models.NGO) error {
	session, ok := s.auth.Current()
	if !ok {
		return ErrNotLoggedIn
	}
	if !session.HasNGODetails() {
		return ErrNGODetailsMissing
	}
	ngo.NgoID = models.APIInt(session.NgoID)

	if err := s.validator.Validate(ngo); err != nil {
		return err
	}
	if err := s.adapter.UpdateNGO(ctx, ngo); err != nil {
		return fmt.Errorf("update organisation profile: %w", err)
	}

	s.logger.Info().
		Str("func", "profileService.UpdateNGOProfile").
		Int64("ngo_id", session.NgoID).
		Msg("organisation profile updated")
	return nil
}
