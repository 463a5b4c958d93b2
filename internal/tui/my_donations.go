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

// myDonationsModel lists the donor's own submissions in display order.
type myDonationsModel struct {
	ctx       context.Context
	donations service.DonationService

	gen     int
	loading bool
	items   []models.DonatedItem
	idx     int
	errMsg  string
}

func newMyDonationsModel(ctx context.Context, donations service.DonationService) *myDonationsModel {
	return &myDonationsModel{ctx: ctx, donations: donations}
}

func (m *myDonationsModel) Init() tea.Cmd {
	m.gen++
	m.loading = true
	m.errMsg = ""

	ctx, gen, donations := m.ctx, m.gen, m.donations
	return func() tea.Msg {
		items, err := donations.ListMine(ctx)
		return myDonationsLoadedMsg{gen: gen, items: items, err: err}
	}
}

func (m *myDonationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(myDonationsLoadedMsg); ok {
		if loaded.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if loaded.err != nil {
			m.errMsg = humanizeNetworkError(loaded.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = loaded.items
		if m.idx >= len(m.items) {
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
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	}

	return m, nil
}

func (m *myDonationsModel) View() string {
	if m.loading {
		return renderPage("MY DONATIONS", "Loading...", "esc: back")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString("No donations yet\n")
	} else {
		b.WriteString("Item                     │ Qty │ Status    │ NGO              │ Created\n")
		b.WriteString("─────────────────────────┼─────┼───────────┼──────────────────┼───────────\n")
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf(
				"%s%-24s │ %-3d │ %-9s │ %-16s │ %s\n",
				cursor,
				fitText(item.ItemName, 24),
				item.Quantity.Int64(),
				fitText(string(item.Status), 9),
				fitText(valueOrDash(item.NGOName), 16),
				item.CreatedAt.Format("2006-01-02"),
			))
		}

		if m.idx < len(m.items) && m.items[m.idx].ImageFilename != "" {
			b.WriteString("\nImage: " + m.donations.ImageURL(m.items[m.idx].ImageFilename) + "\n")
		}
	}

	return renderPage("MY DONATIONS", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ r: refresh │ esc: back")
}
