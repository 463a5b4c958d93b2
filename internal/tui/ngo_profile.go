// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/internal/validators"
	"github.com/givelink/givelink/models"
)

// ngoProfileModel edits the organisation record. The form starts from the
// locally cached identity; the backend offers no per-NGO fetch endpoint.
type ngoProfileModel struct {
	ctx     context.Context
	profile service.ProfileService
	auth    service.AuthService
	session models.Session

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string

	confirm  *confirmModel
	deleting bool
}

func newNGOProfileModel(ctx context.Context, profile service.ProfileService, auth service.AuthService, session models.Session) *ngoProfileModel {
	name := newInput("organisation name", 40)
	name.SetValue(session.NGOName)
	name.Focus()

	email := newInput("email", 40)
	email.SetValue(session.Email)

	phone := newInput("phone", 40)

	city := newInput("city", 40)
	city.SetValue(session.City)

	address := newInput("address", 40)

	return &ngoProfileModel{
		ctx:     ctx,
		profile: profile,
		auth:    auth,
		session: session,
		inputs:  []textinput.Model{name, email, phone, city, address},
	}
}

func (m *ngoProfileModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ngoProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
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
			m.confirm = &confirmModel{message: "Delete the organisation account? This cannot be undone."}
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			ngo := models.NGO{
				NGOName: strings.TrimSpace(m.inputs[0].Value()),
				Email:   strings.TrimSpace(m.inputs[1].Value()),
				Phone:   strings.TrimSpace(m.inputs[2].Value()),
				City:    strings.TrimSpace(m.inputs[3].Value()),
				Address: strings.TrimSpace(m.inputs[4].Value()),
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true

			ctx, profile := m.ctx, m.profile
			return m, func() tea.Msg {
				return profileSavedMsg{err: profile.UpdateNGOProfile(ctx, ngo)}
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ngoProfileModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m *ngoProfileModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	var b strings.Builder
	b.WriteString(renderFormRow("Name", m.inputs[0].View()))
	b.WriteString(renderFormRow("Email", m.inputs[1].View()))
	b.WriteString(renderFormRow("Phone", m.inputs[2].View()))
	b.WriteString(renderFormRow("City", m.inputs[3].View()))
	b.WriteString(renderFormRow("Address", m.inputs[4].View()))

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

	return renderPage("ORGANISATION PROFILE", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: save │ ctrl+d: delete account │ esc: back")
}
