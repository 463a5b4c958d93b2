// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

// Package tui is the terminal front end. Every screen is a Bubble Tea model
// that delegates all domain decisions to the service layer and only renders
// state and dispatches async commands.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/models"
)

// ErrUserQuit reports that the user left the program from the pre-login
// menu rather than failing out of it.
var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the pre-login screens until a login succeeds or the user
// quits. It returns the authenticated session.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		"welcome":        newWelcomeModel(),
		"login":          newLoginModel(ctx, t.services.Auth),
		"register_donor": newRegisterModel(ctx, t.services.Auth, false),
		"register_ngo":   newRegisterModel(ctx, t.services.Auth, true),
		"reset":          newResetModel(ctx, t.services.Auth),
	}

	root := newRootModel(pages, "welcome")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(rootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.authenticated {
		return models.Session{}, ErrUserQuit
	}

	return result.resultSession, nil
}

// MainLoop runs the post-login screens for the session's role. It reports
// logout=true when the user logged out or deleted the account, in which case
// the caller should return to the login flow.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainModel(t.pagesForRole(ctx, session), "home")
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) pagesForRole(ctx context.Context, session models.Session) map[string]tea.Model {
	svcs := t.services

	switch session.RoleID {
	case models.RoleNGO:
		return map[string]tea.Model{
			"home":      newNGOHomeModel(ctx, svcs.Directory, svcs.Claims, session),
			"browse":    newClaimModel(ctx, svcs.Claims),
			"inventory": newInventoryModel(ctx, svcs.Inventory),
			"needs":     newNeedsModel(ctx, svcs.Needs, true),
			"profile":   newNGOProfileModel(ctx, svcs.Profile, svcs.Auth, session),
			"contact":   newContactModel(ctx, svcs.Contact, session),
		}
	case models.RoleAdmin:
		return map[string]tea.Model{
			"home":    newAdminHomeModel(ctx, svcs.Directory, session),
			"users":   newUsersModel(ctx, svcs.Directory),
			"ngos":    newNGODirectoryModel(ctx, svcs.Directory),
			"profile": newProfileModel(ctx, svcs.Profile, svcs.Auth, svcs.Donations),
			"contact": newContactModel(ctx, svcs.Contact, session),
		}
	default:
		return map[string]tea.Model{
			"home":    newDonorHomeModel(ctx, svcs.Donations, svcs.Notifications, session),
			"donate":  newDonateModel(ctx, svcs.Donations),
			"mine":    newMyDonationsModel(ctx, svcs.Donations),
			"feed":    newNotificationsModel(ctx, svcs.Notifications),
			"needs":   newNeedsModel(ctx, svcs.Needs, false),
			"ngos":    newNGODirectoryModel(ctx, svcs.Directory),
			"profile": newProfileModel(ctx, svcs.Profile, svcs.Auth, svcs.Donations),
			"contact": newContactModel(ctx, svcs.Contact, session),
		}
	}
}
