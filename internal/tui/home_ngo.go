// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/models"
)

// recentDonationsShown caps the feed on the NGO home screen; the full list
// lives on the browse screen.
const recentDonationsShown = 5

// ngoHomeModel is the NGO landing screen: platform pending count, this NGO's
// accepted/completed counts, a short recent-donations feed, and the menu.
// The counts and the feed load independently and fill in as they arrive.
type ngoHomeModel struct {
	ctx       context.Context
	directory service.DirectoryService
	claims    service.ClaimService
	session   models.Session

	gen           int
	loadingCounts bool
	loadingRecent bool
	pending       int64
	accepted      int64
	completed     int64
	recent        []models.DonatedItem
	errMsg        string
	menu          menuList
}

func newNGOHomeModel(ctx context.Context, directory service.DirectoryService, claims service.ClaimService, session models.Session) *ngoHomeModel {
	return &ngoHomeModel{
		ctx:       ctx,
		directory: directory,
		claims:    claims,
		session:   session,
		menu: menuList{entries: []menuEntry{
			{label: "Browse donations", page: "browse"},
			{label: "Inventory", page: "inventory"},
			{label: "Our urgent needs", page: "needs"},
			{label: "Organisation profile", page: "profile"},
			{label: "Contact us", page: "contact"},
		}},
	}
}

func (m *ngoHomeModel) Init() tea.Cmd {
	m.gen++
	m.loadingCounts = true
	m.loadingRecent = true
	m.errMsg = ""
	return tea.Batch(m.cmdLoadCounts(), m.cmdLoadRecent())
}

func (m *ngoHomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case homeCountsLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loadingCounts = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.pending = msg.pending
		m.accepted = msg.accepted
		m.completed = msg.completed
		return m, nil
	case recentDonationsLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loadingRecent = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.recent = msg.items
		if len(m.recent) > recentDonationsShown {
			m.recent = m.recent[:recentDonationsShown]
		}
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

func (m *ngoHomeModel) View() string {
	var b strings.Builder
	b.WriteString("Welcome, " + m.session.NGOName + "!\n\n")

	if m.loadingCounts {
		b.WriteString("Loading counts...\n\n")
	} else {
		b.WriteString(fmt.Sprintf(
			"Pending platform-wide: %d │ Accepted by us: %d │ Completed by us: %d\n\n",
			m.pending, m.accepted, m.completed,
		))
	}

	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}

	b.WriteString("[ RECENT DONATIONS ]\n")
	switch {
	case m.loadingRecent:
		b.WriteString("Loading...\n")
	case len(m.recent) == 0:
		b.WriteString("Nothing yet\n")
	default:
		for _, item := range m.recent {
			b.WriteString(fmt.Sprintf(
				"  %-24s │ %-9s │ %s\n",
				fitText(item.ItemName, 24),
				string(item.Status),
				item.CreatedAt.Format("2006-01-02"),
			))
		}
	}
	b.WriteString("\n")

	b.WriteString(m.menu.view())

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ enter: open │ r: refresh │ ctrl+l: log out")
}

func (m *ngoHomeModel) cmdLoadCounts() tea.Cmd {
	ctx, gen, directory := m.ctx, m.gen, m.directory

	return func() tea.Msg {
		pending, accepted, completed, err := directory.HomeCounts(ctx)
		return homeCountsLoadedMsg{gen: gen, pending: pending, accepted: accepted, completed: completed, err: err}
	}
}

func (m *ngoHomeModel) cmdLoadRecent() tea.Cmd {
	ctx, gen, claims := m.ctx, m.gen, m.claims

	return func() tea.Msg {
		items, err := claims.Available(ctx)
		// The feed wants recency only, not the claim screen's status buckets.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt.Time)
		})
		return recentDonationsLoadedMsg{gen: gen, items: items, err: err}
	}
}
