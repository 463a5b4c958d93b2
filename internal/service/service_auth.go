// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/givelink/givelink/internal/adapter"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/store"
	"github.com/givelink/givelink/internal/validators"
	"github.com/givelink/givelink/models"
)

type authService struct {
	localStore store.IdentityStore
	adapter    adapter.ServerAdapter
	validator  validators.Validator
	logger     *logger.Logger

	mu      sync.RWMutex
	session *models.Session
}

func NewAuthService(localStore store.IdentityStore, serverAdapter adapter.ServerAdapter, validator validators.Validator, log *logger.Logger) AuthService {
	return &authService{
		localStore: localStore,
		adapter:    serverAdapter,
		validator:  validator,
		logger:     log,
	}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := a.validator.Validate(creds); err != nil {
		return models.Session{}, err
	}

	result, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	if result.Blocked {
		a.logger.Warn().
			Str("func", "authService.Login").
			Int64("user_id", result.Session.UserID).
			Msg("blocked account attempted login")
		return models.Session{}, ErrAccountBlocked
	}

	if err = a.localStore.SaveSession(ctx, result.Session); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}
	a.setSession(result.Session)

	a.logger.Info().
		Str("func", "authService.Login").
		Int64("user_id", result.Session.UserID).
		Str("role", result.Session.RoleID.String()).
		Msg("logged in")

	return result.Session, nil
}

func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.Session(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.setSession(session)
	return session, nil
}

func (a *authService) Current() (models.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil {
		return models.Session{}, false
	}
	return *a.session, true
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.localStore.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.clearSession()

	a.logger.Info().Str("func", "authService.Logout").Msg("logged out")
	return nil
}

func (a *authService) RegisterDonor(ctx context.Context, reg models.DonorRegistration) error {
	if err := a.validator.Validate(reg); err != nil {
		return err
	}
	if err := a.adapter.RegisterDonor(ctx, reg); err != nil {
		return fmt.Errorf("register donor: %w", err)
	}
	return nil
}

func (a *authService) RegisterNGO(ctx context.Context, reg models.NGORegistration) error {
	if err := a.validator.Validate(reg); err != nil {
		return err
	}
	if err := a.adapter.RegisterNGO(ctx, reg); err != nil {
		return fmt.Errorf("register ngo: %w", err)
	}
	return nil
}

func (a *authService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if err := a.validator.Validate(models.Credentials{Email: email, Password: newPassword}); err != nil {
		return err
	}
	if err := a.adapter.ResetPassword(ctx, email, newPassword); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}

func (a *authService) DeleteAccount(ctx context.Context) error {
	session, ok := a.Current()
	if !ok {
		return ErrNotLoggedIn
	}

	if session.IsNGO() {
		if err := a.adapter.DeleteNGO(ctx, session.NgoID); err != nil {
			return fmt.Errorf("delete ngo account: %w", err)
		}
	} else {
		if err := a.adapter.DeleteUser(ctx, session.UserID); err != nil {
			return fmt.Errorf("delete account: %w", err)
		}
	}

	if err := a.localStore.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.clearSession()

	a.logger.Info().
		Str("func", "authService.DeleteAccount").
		Int64("user_id", session.UserID).
		Msg("account deleted")
	return nil
}

func (a *authService) setSession(session models.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = &session
}

func (a *authService) clearSession() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = nil
}
