// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/models"
)

// rootModel routes the pre-login flow:
// 1) keeps the active page
// 2) handles the global quit hotkey
// 3) handles navigateTo messages
// 4) finishes the flow when a login succeeds
// All other messages go to the active page.
type rootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser    bool
	authenticated bool
	resultSession models.Session
}

func newRootModel(pages map[string]tea.Model, startPage string) rootModel {
	return rootModel{
		pages:   pages,
		current: pages[startPage],
	}
}

func (r rootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "q":
			if r.isWelcomePage() {
				r.quitByUser = true
				return r, tea.Quit
			}
		}
	}

	if nav, ok := msg.(navigateTo); ok {
		next, exists := r.pages[nav.page]
		if !exists {
			return r, nil
		}

		r.current = next
		if nav.payload != nil {
			return r, func() tea.Msg { return nav.payload }
		}
		return r, r.current.Init()
	}

	if result, ok := msg.(loginDoneMsg); ok && result.err == nil {
		r.authenticated = true
		r.resultSession = result.session
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r rootModel) View() string {
	if r.current == nil {
		return renderPage("GIVELINK", "", "")
	}
	return r.current.View()
}

func (r rootModel) isWelcomePage() bool {
	_, ok := r.current.(*welcomeModel)
	return ok
}
