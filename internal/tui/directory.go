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

// ngoDirectoryModel lists every registered organisation, name-sorted.
type ngoDirectoryModel struct {
	ctx       context.Context
	directory service.DirectoryService

	gen     int
	loading bool
	ngos    []models.NGO
	idx     int
	errMsg  string
}

func newNGODirectoryModel(ctx context.Context, directory service.DirectoryService) *ngoDirectoryModel {
	return &ngoDirectoryModel{ctx: ctx, directory: directory}
}

func (m *ngoDirectoryModel) Init() tea.Cmd {
	m.gen++
	m.loading = true
	m.errMsg = ""

	ctx, gen, directory := m.ctx, m.gen, m.directory
	return func() tea.Msg {
		ngos, err := directory.ListNGOs(ctx)
		return ngosLoadedMsg{gen: gen, ngos: ngos, err: err}
	}
}

func (m *ngoDirectoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(ngosLoadedMsg); ok {
		if loaded.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if loaded.err != nil {
			m.errMsg = humanizeNetworkError(loaded.err)
			return m, nil
		}
		m.errMsg = ""
		m.ngos = loaded.ngos
		if m.idx >= len(m.ngos) {
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
		if m.idx < len(m.ngos)-1 {
			m.idx++
		}
	}

	return m, nil
}

func (m *ngoDirectoryModel) View() string {
	if m.loading {
		return renderPage("NGO DIRECTORY", "Loading...", "esc: back")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}

	if len(m.ngos) == 0 {
		b.WriteString("No organisations registered\n")
	} else {
		b.WriteString("Name                     │ City          │ Phone        │ Email\n")
		b.WriteString("─────────────────────────┼───────────────┼──────────────┼──────────────────\n")
		for i, ngo := range m.ngos {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf(
				"%s%-24s │ %-13s │ %-12s │ %s\n",
				cursor,
				fitText(ngo.NGOName, 24),
				fitText(valueOrDash(ngo.City), 13),
				fitText(valueOrDash(ngo.Phone), 12),
				fitText(ngo.Email, 24),
			))
		}
	}

	return renderPage("NGO DIRECTORY", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ r: refresh │ esc: back")
}
