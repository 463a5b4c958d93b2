// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

// Package client assembles the configured pieces into the running terminal
// application and owns the login/main-loop cycle.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/internal/store"
	"github.com/givelink/givelink/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run drives the session cycle: restore the persisted session if there is
// one, otherwise walk the login flow; then hand control to the main loop.
// Logout and account deletion drop back to the login flow.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		session, err := a.services.Auth.Restore(ctx)
		if err != nil {
			if !errors.Is(err, store.ErrSessionNotFound) {
				return fmt.Errorf("restore session: %w", err)
			}

			session, err = a.tui.LoginFlow(ctx)
			if err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		a.logger.Info().
			Int64("user_id", session.UserID).
			Str("role", session.RoleID.String()).
			Msg("session started")

		logout, err := a.tui.MainLoop(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		// A deleted account has already cleared its local state; Logout on an
		// empty session is a no-op.
		if err = a.services.Auth.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("clear local session")
		}
	}
}
