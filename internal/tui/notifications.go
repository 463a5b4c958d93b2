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

// notificationsModel shows the donor's status-change feed. Unread entries are
// marked with a dot; opening one records it in the local read set.
type notificationsModel struct {
	ctx           context.Context
	notifications service.NotificationService

	gen     int
	loading bool
	items   []models.Notification
	idx     int
	errMsg  string
}

func newNotificationsModel(ctx context.Context, notifications service.NotificationService) *notificationsModel {
	return &notificationsModel{ctx: ctx, notifications: notifications}
}

func (m *notificationsModel) Init() tea.Cmd {
	m.gen++
	m.loading = true
	m.errMsg = ""

	ctx, gen, notifications := m.ctx, m.gen, m.notifications
	return func() tea.Msg {
		items, err := notifications.Feed(ctx)
		return feedLoadedMsg{gen: gen, items: items, err: err}
	}
}

func (m *notificationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case feedLoadedMsg:
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
	case markReadDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		for i := range m.items {
			if m.items[i].ItemID == msg.itemID {
				m.items[i].Read = true
			}
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
	case key.Matches(keyMsg, keys.enter):
		if m.idx >= len(m.items) {
			return m, nil
		}
		item := m.items[m.idx]
		if item.Read {
			return m, nil
		}

		ctx, notifications := m.ctx, m.notifications
		return m, func() tea.Msg {
			return markReadDoneMsg{itemID: item.ItemID, err: notifications.MarkRead(ctx, item.ItemID)}
		}
	}

	return m, nil
}

func (m *notificationsModel) View() string {
	if m.loading {
		return renderPage("NOTIFICATIONS", "Loading...", "esc: back")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString("No updates yet\n")
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}

			marker := " "
			if !item.Read {
				marker = "●"
			}

			line := fmt.Sprintf("%s was %s", item.ItemName, strings.ToLower(string(item.Status)))
			if item.NGOName != "" {
				line += " by " + item.NGOName
			}

			b.WriteString(fmt.Sprintf("%s%s %s — %s\n", cursor, marker, line, item.AgeLabel))
		}
	}

	return renderPage("NOTIFICATIONS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: navigate │ enter: mark read │ r: refresh │ esc: back")
}
