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

// inventoryModel shows the NGO's claimed items behind two tabs, Accepted and
// Completed. Each tab reveals a fixed page worth of rows at a time; "load
// more" extends the visible slice without another fetch. Completing an entry
// runs the two-phase handoff in the service.
type inventoryModel struct {
	ctx       context.Context
	inventory service.InventoryService

	gen        int
	loading    bool
	completing bool
	entries    []models.InventoryEntry

	tab          models.DonationStatus
	idx          int
	acceptedEnd  int
	completedEnd int

	status string
	errMsg string
}

func newInventoryModel(ctx context.Context, inventory service.InventoryService) *inventoryModel {
	return &inventoryModel{ctx: ctx, inventory: inventory, tab: models.StatusAccepted}
}

func (m *inventoryModel) Init() tea.Cmd {
	m.gen++
	m.loading = true
	m.errMsg = ""
	m.status = ""
	m.idx = 0
	m.acceptedEnd = service.InventoryPageSize
	m.completedEnd = service.InventoryPageSize

	ctx, gen, inventory := m.ctx, m.gen, m.inventory
	return func() tea.Msg {
		entries, err := inventory.List(ctx)
		return inventoryLoadedMsg{gen: gen, entries: entries, err: err}
	}
}

func (m *inventoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inventoryLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		m.clampIdx()
		return m, nil
	case completeDoneMsg:
		m.completing = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrPartialCompletion) {
				m.status = "Marked completed, but the donation record may still show Accepted; refresh later"
				m.markCompleted(msg.inventoryID)
				m.clampIdx()
				return m, nil
			}
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Item marked as completed"
		m.markCompleted(msg.inventoryID)
		m.clampIdx()
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
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.right):
		if m.tab.Is(models.StatusAccepted) {
			m.tab = models.StatusCompleted
		} else {
			m.tab = models.StatusAccepted
		}
		m.idx = 0
		m.status = ""
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.visible())-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.more):
		total := len(m.tabEntries())
		if m.tab.Is(models.StatusAccepted) {
			m.acceptedEnd = service.NextPageEnd(m.acceptedEnd, total)
		} else {
			m.completedEnd = service.NextPageEnd(m.completedEnd, total)
		}
	case key.Matches(keyMsg, keys.complete):
		if m.completing || !m.tab.Is(models.StatusAccepted) {
			return m, nil
		}
		visible := m.visible()
		if m.idx >= len(visible) {
			return m, nil
		}

		entry := visible[m.idx]
		m.status = ""
		m.errMsg = ""
		m.completing = true

		ctx, inventory := m.ctx, m.inventory
		return m, func() tea.Msg {
			return completeDoneMsg{inventoryID: entry.InventoryID.Int64(), err: inventory.Complete(ctx, entry)}
		}
	}

	return m, nil
}

func (m *inventoryModel) tabEntries() []models.InventoryEntry {
	return service.FilterInventoryByStatus(m.entries, m.tab)
}

func (m *inventoryModel) visible() []models.InventoryEntry {
	entries := m.tabEntries()
	end := m.acceptedEnd
	if m.tab.Is(models.StatusCompleted) {
		end = m.completedEnd
	}
	if end > len(entries) {
		end = len(entries)
	}
	return entries[:end]
}

func (m *inventoryModel) markCompleted(inventoryID int64) {
	for i := range m.entries {
		if m.entries[i].InventoryID.Int64() == inventoryID {
			m.entries[i].Status = models.StatusCompleted
			break
		}
	}
}

func (m *inventoryModel) clampIdx() {
	if visible := len(m.visible()); m.idx >= visible {
		m.idx = 0
	}
}

func (m *inventoryModel) View() string {
	if m.loading {
		return renderPage("INVENTORY", "Loading...", "esc: back")
	}

	var b strings.Builder

	acceptedTab, completedTab := "  Accepted  ", "  Completed  "
	if m.tab.Is(models.StatusAccepted) {
		acceptedTab = "[ Accepted ]"
	} else {
		completedTab = "[ Completed ]"
	}
	b.WriteString(acceptedTab + " " + completedTab + "\n\n")

	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n\n")
	}

	visible := m.visible()
	total := len(m.tabEntries())

	if total == 0 {
		b.WriteString("Nothing here yet\n")
	} else {
		b.WriteString("Item                     │ Qty │ Donor            │ Claimed\n")
		b.WriteString("─────────────────────────┼─────┼──────────────────┼───────────\n")
		for i, entry := range visible {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf(
				"%s%-24s │ %-3d │ %-16s │ %s\n",
				cursor,
				fitText(entry.ItemName, 24),
				entry.Quantity.Int64(),
				fitText(valueOrDash(entry.Username), 16),
				entry.CreatedAt.Format("2006-01-02"),
			))
		}
		if len(visible) < total {
			b.WriteString(fmt.Sprintf("\n(%d of %d shown — m: load more)\n", len(visible), total))
		}
	}

	if m.completing {
		b.WriteString("\nCompleting...\n")
	}

	hotKeys := "tab: switch tab │ ↑/↓: navigate │ m: load more │ r: refresh │ esc: back"
	if m.tab.Is(models.StatusAccepted) {
		hotKeys = "c: complete │ " + hotKeys
	}

	return renderPage("INVENTORY", strings.TrimRight(b.String(), "\n"), hotKeys)
}
