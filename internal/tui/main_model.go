// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// mainModel routes the post-login screens. It owns the global hotkeys (quit,
// logout) and the page switch; everything else is delegated to the active
// page. Account deletion ends the program the same way logout does so the
// caller can fall back to the login flow.
type mainModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	logout     bool
}

func newMainModel(pages map[string]tea.Model, startPage string) mainModel {
	return mainModel{
		pages:   pages,
		current: pages[startPage],
	}
}

func (m mainModel) Init() tea.Cmd {
	if m.current == nil {
		return nil
	}
	return m.current.Init()
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case "ctrl+l":
			m.logout = true
			return m, tea.Quit
		}
	}

	if nav, ok := msg.(navigateTo); ok {
		next, exists := m.pages[nav.page]
		if !exists {
			return m, nil
		}

		m.current = next
		if nav.payload != nil {
			return m, func() tea.Msg { return nav.payload }
		}
		return m, m.current.Init()
	}

	if result, ok := msg.(accountDeletedMsg); ok && result.err == nil {
		m.logout = true
		return m, tea.Quit
	}

	if m.current == nil {
		return m, nil
	}

	updated, cmd := m.current.Update(msg)
	m.current = updated
	return m, cmd
}

func (m mainModel) View() string {
	if m.current == nil {
		return renderPage("GIVELINK", "", "")
	}
	return m.current.View()
}
