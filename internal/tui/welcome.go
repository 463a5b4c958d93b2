// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type welcomeEntry struct {
	label string
	page  string
}

// welcomeModel is the pre-login menu.
type welcomeModel struct {
	entries []welcomeEntry
	idx     int
}

func newWelcomeModel() *welcomeModel {
	return &welcomeModel{
		entries: []welcomeEntry{
			{label: "Log in", page: "login"},
			{label: "Register as a donor", page: "register_donor"},
			{label: "Register as an NGO", page: "register_ngo"},
			{label: "Reset password", page: "reset"},
		},
	}
}

func (m *welcomeModel) Init() tea.Cmd {
	return nil
}

func (m *welcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		page := m.entries[m.idx].page
		return m, func() tea.Msg { return navigateTo{page: page} }
	}

	return m, nil
}

func (m *welcomeModel) View() string {
	out := "Give what you can, claim what you need.\n\nChoose an action:\n\n"
	for i, entry := range m.entries {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + entry.label + "\n"
	}
	return renderPage("GIVELINK", out, "↑/↓: navigate │ enter: select │ q: quit")
}
