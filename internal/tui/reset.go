// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/service"
)

type resetModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	done       bool
}

func newResetModel(ctx context.Context, auth service.AuthService) *resetModel {
	email := newInput("email", 40)
	email.Focus()
	password := newPasswordInput("new password", 40)

	return &resetModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{email, password},
	}
}

func (m *resetModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *resetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(resetDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeNetworkError(result.err)
			return m, nil
		}
		m.done = true
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return navigateTo{page: "welcome"} }
		case "tab":
			m.focus = focusNext(m.inputs, m.focus)
			return m, nil
		case "shift+tab":
			m.focus = focusPrev(m.inputs, m.focus)
			return m, nil
		case "enter":
			if m.done {
				return m, func() tea.Msg { return navigateTo{page: "login"} }
			}
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if email == "" || pass == "" {
				m.errMsg = "Email and new password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			ctx, auth := m.ctx, m.auth
			return m, func() tea.Msg {
				return resetDoneMsg{err: auth.ResetPassword(ctx, email, pass)}
			}
		}
	}

	if m.done {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *resetModel) View() string {
	if m.done {
		return renderPage("RESET PASSWORD", "Password updated. You can log in now.", "enter: go to login │ esc: back")
	}

	var b strings.Builder
	b.WriteString("Email     │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password  │ [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Resetting...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("RESET PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
