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

// adminHomeModel is the administrator landing screen with platform totals.
type adminHomeModel struct {
	ctx       context.Context
	directory service.DirectoryService
	session   models.Session

	gen     int
	loading bool
	stats   models.AdminStats
	errMsg  string
	menu    menuList
}

func newAdminHomeModel(ctx context.Context, directory service.DirectoryService, session models.Session) *adminHomeModel {
	return &adminHomeModel{
		ctx:       ctx,
		directory: directory,
		session:   session,
		menu: menuList{entries: []menuEntry{
			{label: "Registered users", page: "users"},
			{label: "NGO directory", page: "ngos"},
			{label: "My profile", page: "profile"},
			{label: "Contact us", page: "contact"},
		}},
	}
}

func (m *adminHomeModel) Init() tea.Cmd {
	m.gen++
	m.loading = true
	m.errMsg = ""

	ctx, gen, directory := m.ctx, m.gen, m.directory
	return func() tea.Msg {
		stats, err := directory.AdminStats(ctx)
		return adminStatsLoadedMsg{gen: gen, stats: stats, err: err}
	}
}

func (m *adminHomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(adminStatsLoadedMsg); ok {
		if loaded.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if loaded.err != nil {
			m.errMsg = humanizeNetworkError(loaded.err)
			return m, nil
		}
		m.errMsg = ""
		m.stats = loaded.stats
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.menu.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.menu.moveDown()
	case key.Matches(keyMsg, keys.refresh):
		return m, m.Init()
	case key.Matches(keyMsg, keys.enter):
		page := m.menu.selected()
		return m, func() tea.Msg { return navigateTo{page: page} }
	}

	return m, nil
}

func (m *adminHomeModel) View() string {
	var b strings.Builder
	b.WriteString("Welcome, " + m.session.Username + " (administrator)\n\n")

	if m.loading {
		b.WriteString("Loading stats...\n\n")
	} else {
		b.WriteString(fmt.Sprintf(
			"Users: %d │ NGOs: %d │ Donations: %d\n\n",
			m.stats.TotalUsers.Int64(), m.stats.TotalNGOs.Int64(), m.stats.TotalDonations.Int64(),
		))
	}

	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}

	b.WriteString(m.menu.view())

	return renderPage("ADMIN", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ enter: open │ r: refresh │ ctrl+l: log out")
}
