// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/models"
)

// registerModel backs both registration screens. The NGO variant carries one
// extra field (address) and posts to a different endpoint; everything else is
// shared.
type registerModel struct {
	ctx  context.Context
	auth service.AuthService
	ngo  bool

	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	done       bool
}

func newRegisterModel(ctx context.Context, auth service.AuthService, ngo bool) *registerModel {
	m := &registerModel{ctx: ctx, auth: auth, ngo: ngo}

	if ngo {
		m.labels = []string{"Name", "Email", "Phone", "City", "Address", "Password"}
		m.inputs = []textinput.Model{
			newInput("organisation name", 40),
			newInput("email", 40),
			newInput("phone", 40),
			newInput("city", 40),
			newInput("address", 40),
			newPasswordInput("password", 40),
		}
	} else {
		m.labels = []string{"Username", "Email", "Phone", "City", "Password"}
		m.inputs = []textinput.Model{
			newInput("username", 40),
			newInput("email", 40),
			newInput("phone", 40),
			newInput("city", 40),
			newPasswordInput("password", 40),
		}
	}
	m.inputs[0].Focus()

	return m
}

func (m *registerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *registerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerDoneMsg); ok {
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
		case "enter":
			if m.done {
				return m, func() tea.Msg { return navigateTo{page: "login"} }
			}
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister()
		case "tab":
			m.focus = focusNext(m.inputs, m.focus)
			return m, nil
		case "shift+tab":
			m.focus = focusPrev(m.inputs, m.focus)
			return m, nil
		}
	}

	if m.done {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *registerModel) View() string {
	title := "DONOR REGISTRATION"
	if m.ngo {
		title = "NGO REGISTRATION"
	}

	if m.done {
		return renderPage(title, "Account created. You can log in now.", "enter: go to login │ esc: back")
	}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(fmt.Sprintf("%-9s │ [%s]\n", m.labels[i], in.View()))
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *registerModel) cmdRegister() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	if m.ngo {
		reg := models.NGORegistration{
			NGOName:  strings.TrimSpace(m.inputs[0].Value()),
			Email:    strings.TrimSpace(m.inputs[1].Value()),
			Phone:    strings.TrimSpace(m.inputs[2].Value()),
			City:     strings.TrimSpace(m.inputs[3].Value()),
			Address:  strings.TrimSpace(m.inputs[4].Value()),
			Password: m.inputs[5].Value(),
		}
		return func() tea.Msg {
			return registerDoneMsg{err: auth.RegisterNGO(ctx, reg)}
		}
	}

	reg := models.DonorRegistration{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Email:    strings.TrimSpace(m.inputs[1].Value()),
		Phone:    strings.TrimSpace(m.inputs[2].Value()),
		City:     strings.TrimSpace(m.inputs[3].Value()),
		Password: m.inputs[4].Value(),
	}
	return func() tea.Msg {
		return registerDoneMsg{err: auth.RegisterDonor(ctx, reg)}
	}
}
