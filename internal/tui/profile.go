// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/internal/validators"
	"github.com/givelink/givelink/models"
)

// profileModel is the donor/admin profile editor. The form is prefilled from
// the backend record; saving pushes the edited fields back. Deleting the
// account asks for confirmation and then ends the session.
type profileModel struct {
	ctx       context.Context
	profile   service.ProfileService
	auth      service.AuthService
	donations service.DonationService

	gen     int
	loading bool
	user    models.User
	total   int64

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string

	confirm  *confirmModel
	deleting bool
}

func newProfileModel(ctx context.Context, profile service.ProfileService, auth service.AuthService, donations service.DonationService) *profileModel {
	username := newInput("username", 40)
	username.Focus()

	m := &profileModel{
		ctx:       ctx,
		profile:   profile,
		auth:      auth,
		donations: donations,
		inputs: []textinput.Model{
			username,
			newInput("email", 40),
			newInput("phone", 40),
			newInput("city", 40),
		},
	}
	return m
}

func (m *profileModel) Init() tea.Cmd {
	m.gen++
	m.loading = true
	m.errMsg = ""
	m.status = ""

	ctx, gen := m.ctx, m.gen
	profile, donations := m.profile, m.donations

	return tea.Batch(textinput.Blink, func() tea.Msg {
		user, err := profile.Profile(ctx)
		return profileLoadedMsg{gen: gen, user: user, err: err}
	}, func() tea.Msg {
		stats, err := donations.Stats(ctx)
		return donorStatsLoadedMsg{gen: gen, stats: stats, err: err}
	})
}

func (m *profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.inputs[0].SetValue(msg.user.Username)
		m.inputs[1].SetValue(msg.user.Email)
		m.inputs[2].SetValue(msg.user.Phone)
		m.inputs[3].SetValue(msg.user.City)
		return m, nil
	case donorStatsLoadedMsg:
		if msg.gen != m.gen || msg.err != nil {
			return m, nil
		}
		m.total = msg.stats.Total()
		return m, nil
	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, validators.ErrValidation) {
				m.errMsg = msg.err.Error()
			} else {
				m.errMsg = humanizeNetworkError(msg.err)
			}
			return m, nil
		}
		m.errMsg = ""
		m.status = "Profile updated"
		return m, nil
	case accountDeletedMsg:
		// Success quits through the router; only the failure lands here.
		m.deleting = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
		}
		return m, nil
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return navigateTo{page: "home"} }
		case "tab":
			m.focus = focusNext(m.inputs, m.focus)
			return m, nil
		case "shift+tab":
			m.focus = focusPrev(m.inputs, m.focus)
			return m, nil
		case "ctrl+d":
			m.confirm = &confirmModel{message: "Delete your account? This cannot be undone."}
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			user := m.user
			user.Username = strings.TrimSpace(m.inputs[0].Value())
			user.Email = strings.TrimSpace(m.inputs[1].Value())
			user.Phone = strings.TrimSpace(m.inputs[2].Value())
			user.City = strings.TrimSpace(m.inputs[3].Value())

			m.errMsg = ""
			m.status = ""
			m.submitting = true

			ctx, profile := m.ctx, m.profile
			return m, func() tea.Msg {
				return profileSavedMsg{err: profile.UpdateProfile(ctx, user)}
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *profileModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		m.confirm = nil
		m.deleting = true
		ctx, auth := m.ctx, m.auth
		return m, func() tea.Msg {
			return accountDeletedMsg{err: auth.DeleteAccount(ctx)}
		}
	case "n", "esc":
		m.confirm = nil
	}

	return m, nil
}

func (m *profileModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}
	if m.loading {
		return renderPage("MY PROFILE", "Loading...", "esc: back")
	}

	var b strings.Builder
	b.WriteString(renderFormRow("Username", m.inputs[0].View()))
	b.WriteString(renderFormRow("Email", m.inputs[1].View()))
	b.WriteString(renderFormRow("Phone", m.inputs[2].View()))
	b.WriteString(renderFormRow("City", m.inputs[3].View()))
	b.WriteString(fmt.Sprintf("\nDonations made: %d\n", m.total))

	switch {
	case m.submitting:
		b.WriteString("\n[Saving...]\n")
	case m.deleting:
		b.WriteString("\n[Deleting account...]\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("MY PROFILE", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: save │ ctrl+d: delete account │ esc: back")
}
