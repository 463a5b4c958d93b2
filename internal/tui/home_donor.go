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

// donorHomeModel is the donor landing screen: lifecycle counts, the unread
// bell badge, and the destination menu.
type donorHomeModel struct {
	ctx           context.Context
	donations     service.DonationService
	notifications service.NotificationService
	session       models.Session

	gen     int
	loading bool
	stats   models.DonorStats
	unread  bool
	errMsg  string
	menu    menuList
}

func newDonorHomeModel(ctx context.Context, donations service.DonationService, notifications service.NotificationService, session models.Session) *donorHomeModel {
	return &donorHomeModel{
		ctx:           ctx,
		donations:     donations,
		notifications: notifications,
		session:       session,
		menu: menuList{entries: []menuEntry{
			{label: "Donate an item", page: "donate"},
			{label: "My donations", page: "mine"},
			{label: "Notifications", page: "feed"},
			{label: "Urgent needs", page: "needs"},
			{label: "NGO directory", page: "ngos"},
			{label: "My profile", page: "profile"},
			{label: "Contact us", page: "contact"},
		}},
	}
}

func (m *donorHomeModel) Init() tea.Cmd {
	m.gen++
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *donorHomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case donorStatsLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.stats = msg.stats
		m.unread = msg.unread
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

func (m *donorHomeModel) View() string {
	var b strings.Builder
	b.WriteString("Welcome, " + m.session.Username + "!")
	if m.unread {
		b.WriteString("  " + badgeStyle.Render("🔔 new updates"))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading stats...\n\n")
	} else {
		b.WriteString(fmt.Sprintf(
			"Pending: %d │ Accepted: %d │ Completed: %d │ Total: %d\n\n",
			m.stats.Pending.Int64(), m.stats.Accepted.Int64(), m.stats.Completed.Int64(), m.stats.Total(),
		))
	}

	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}

	b.WriteString(m.menu.view())

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ enter: open │ r: refresh │ ctrl+l: log out")
}

func (m *donorHomeModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	gen := m.gen
	donations := m.donations
	notifications := m.notifications

	return func() tea.Msg {
		stats, err := donations.Stats(ctx)
		if err != nil {
			return donorStatsLoadedMsg{gen: gen, err: err}
		}

		unread, err := notifications.HasUnread(ctx)
		if err != nil {
			return donorStatsLoadedMsg{gen: gen, err: err}
		}

		return donorStatsLoadedMsg{gen: gen, stats: stats, unread: unread}
	}
}
