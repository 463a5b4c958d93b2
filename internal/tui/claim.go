// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/models"
)

// claimModel is the NGO browse-and-claim screen. Claiming removes the item
// from the view whether this NGO won the race or another one got there first;
// only a genuine failure keeps it listed.
type claimModel struct {
	ctx    context.Context
	claims service.ClaimService

	gen      int
	loading  bool
	claiming bool
	items    []models.DonatedItem
	idx      int
	status   string
	errMsg   string
}

func newClaimModel(ctx context.Context, claims service.ClaimService) *claimModel {
	return &claimModel{ctx: ctx, claims: claims}
}

func (m *claimModel) Init() tea.Cmd {
	m.gen++
	m.loading = true
	m.errMsg = ""
	m.status = ""

	ctx, gen, claims := m.ctx, m.gen, m.claims
	return func() tea.Msg {
		items, err := claims.Available(ctx)
		return claimablesLoadedMsg{gen: gen, items: items, err: err}
	}
}

func (m *claimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case claimablesLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = 0
		}
		return m, nil
	case claimDoneMsg:
		m.claiming = false
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, service.ErrNGODetailsMissing):
				m.errMsg = "Your organisation details are missing; complete your profile first"
			default:
				m.errMsg = humanizeNetworkError(msg.err)
			}
			return m, nil
		}

		m.removeItem(msg.itemID)
		m.errMsg = ""
		if msg.outcome == service.ClaimLostRace {
			m.status = "Item was already claimed by another organisation"
		} else {
			m.status = "Item added to your inventory"
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
	case key.Matches(keyMsg, keys.claim):
		if m.claiming || m.idx >= len(m.items) {
			return m, nil
		}

		item := m.items[m.idx]
		if !item.Status.Is(models.StatusPending) {
			m.status = "Only pending items can be claimed"
			return m, nil
		}

		m.status = ""
		m.errMsg = ""
		m.claiming = true
		return m, m.cmdClaim(item)
	}

	return m, nil
}

func (m *claimModel) removeItem(itemID int64) {
	for i, item := range m.items {
		if item.ItemID.Int64() == itemID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	if m.idx >= len(m.items) && m.idx > 0 {
		m.idx = len(m.items) - 1
	}
}

func (m *claimModel) View() string {
	if m.loading {
		return renderPage("BROWSE DONATIONS", "Loading...", "esc: back")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString("No donations available\n")
	} else {
		b.WriteString("Item                     │ Qty │ Status    │ Donor            │ Created\n")
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
				fitText(valueOrDash(item.Username), 16),
				item.CreatedAt.Format("2006-01-02"),
			))
		}
	}

	if m.claiming {
		b.WriteString("\nClaiming...\n")
	}

	return renderPage("BROWSE DONATIONS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: navigate │ c: claim │ r: refresh │ esc: back")
}

func (m *claimModel) cmdClaim(item models.DonatedItem) tea.Cmd {
	ctx, claims := m.ctx, m.claims

	return func() tea.Msg {
		outcome, err := claims.Claim(ctx, item)
		return claimDoneMsg{itemID: item.ItemID.Int64(), outcome: outcome, err: err}
	}
}
