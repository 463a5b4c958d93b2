// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/models"
)

// usersModel is the admin-only donor account list.
type usersModel struct {
	ctx       context.Context
	directory service.DirectoryService

	gen     int
	loading bool
	users   []models.User
	idx     int
	errMsg  string
}

func newUsersModel(ctx context.Context, directory service.DirectoryService) *usersModel {
	return &usersModel{ctx: ctx, directory: directory}
}

func (m *usersModel) Init() tea.Cmd {
	m.gen++
	m.loading = true
	m.errMsg = ""

	ctx, gen, directory := m.ctx, m.gen, m.directory
	return func() tea.Msg {
		users, err := directory.ListUsers(ctx)
		return usersLoadedMsg{gen: gen, users: users, err: err}
	}
}

func (m *usersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(usersLoadedMsg); ok {
		if loaded.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if loaded.err != nil {
			m.errMsg = humanizeNetworkError(loaded.err)
			return m, nil
		}
		m.errMsg = ""
		m.users = loaded.users
		if m.idx >= len(m.users) {
			m.idx = 0
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return navigateTo{page: "home"} }
	case key.Matches(keyMsg, keys.refresh):
		return m, m.Init()
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.users)-1 {
			m.idx++
		}
	}

	return m, nil
}

func (m *usersModel) View() string {
	if m.loading {
		return renderPage("REGISTERED USERS", "Loading...", "esc: back")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}

	if len(m.users) == 0 {
		b.WriteString("No users registered\n")
	} else {
		b.WriteString("Username             │ City          │ Email                  │ Blocked\n")
		b.WriteString("─────────────────────┼───────────────┼────────────────────────┼────────\n")
		for i, user := range m.users {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			blocked := "no"
			if user.Blocked.Int64() != 0 {
				blocked = "yes"
			}

			b.WriteString(fmt.Sprintf(
				"%s%-20s │ %-13s │ %-22s │ %s\n",
				cursor,
				fitText(user.Username, 20),
				fitText(valueOrDash(user.City), 13),
				fitText(user.Email, 22),
				blocked,
			))
		}
	}

	return renderPage("REGISTERED USERS", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ r: refresh │ esc: back")
}
