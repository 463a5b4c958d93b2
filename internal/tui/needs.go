// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/internal/validators"
	"github.com/givelink/givelink/models"
)

// needsModel is the urgent-needs board. Donors see every organisation's
// needs sorted by priority; an NGO sees only its own and can add or delete
// them.
type needsModel struct {
	ctx   context.Context
	needs service.NeedsService
	own   bool

	gen     int
	loading bool
	items   []models.UrgentNeed
	idx     int
	errMsg  string
	status  string

	adding    bool
	addInputs []textinput.Model
	addFocus  int
	saving    bool

	confirm *confirmModel
}

func newNeedsModel(ctx context.Context, needs service.NeedsService, own bool) *needsModel {
	return &needsModel{ctx: ctx, needs: needs, own: own}
}

func (m *needsModel) Init() tea.Cmd {
	m.gen++
	m.loading = true
	m.errMsg = ""

	ctx, gen, needs, own := m.ctx, m.gen, m.needs, m.own
	return func() tea.Msg {
		var (
			items []models.UrgentNeed
			err   error
		)
		if own {
			items, err = needs.ListOwn(ctx)
		} else {
			items, err = needs.ListAll(ctx)
		}
		return needsLoadedMsg{gen: gen, needs: items, err: err}
	}
}

func (m *needsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case needsLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.needs
		if m.idx >= len(m.items) {
			m.idx = 0
		}
		return m, nil
	case needSavedMsg:
		m.saving = false
		if msg.err != nil {
			if errors.Is(msg.err, validators.ErrValidation) {
				m.errMsg = msg.err.Error()
			} else {
				m.errMsg = humanizeNetworkError(msg.err)
			}
			return m, nil
		}
		m.adding = false
		m.status = "Need posted"
		return m, m.Init()
	case needDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.status = "Need removed"
		return m, m.Init()
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}
	if m.adding {
		return m.updateAdding(msg)
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
	case m.own && key.Matches(keyMsg, keys.newItem):
		m.startAdding()
	case m.own && key.Matches(keyMsg, keys.delete):
		if m.idx >= len(m.items) {
			return m, nil
		}
		m.confirm = &confirmModel{message: "Remove \"" + m.items[m.idx].ItemName + "\"?"}
	}

	return m, nil
}

func (m *needsModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirm = nil
		if m.idx >= len(m.items) {
			return m, nil
		}
		need := m.items[m.idx]
		ctx, needs := m.ctx, m.needs
		return m, func() tea.Msg {
			return needDeletedMsg{
				requirementID: need.RequirementID.Int64(),
				err:           needs.Delete(ctx, need.RequirementID.Int64()),
			}
		}
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.confirm = nil
	}

	return m, nil
}

func (m *needsModel) startAdding() {
	item := newInput("item name", 40)
	item.Focus()
	quantity := newInput("quantity", 40)
	priority := newInput("priority (1-5)", 40)

	m.addInputs = []textinput.Model{item, quantity, priority}
	m.addFocus = 0
	m.adding = true
	m.errMsg = ""
	m.status = ""
}

func (m *needsModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.adding = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.addFocus = focusNext(m.addInputs, m.addFocus)
			return m, nil
		case "shift+tab":
			m.addFocus = focusPrev(m.addInputs, m.addFocus)
			return m, nil
		case "enter":
			if m.saving {
				return m, nil
			}

			need, err := m.collectNeed()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.saving = true
			ctx, needs := m.ctx, m.needs
			return m, func() tea.Msg {
				return needSavedMsg{err: needs.Add(ctx, need)}
			}
		}
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

func (m *needsModel) collectNeed() (models.UrgentNeed, error) {
	quantity, err := strconv.ParseInt(strings.TrimSpace(m.addInputs[1].Value()), 10, 64)
	if err != nil || quantity <= 0 {
		return models.UrgentNeed{}, errors.New("quantity must be a positive number")
	}

	priorityRaw := strings.TrimSpace(m.addInputs[2].Value())
	var priority int64
	if priorityRaw != "" {
		priority, err = strconv.ParseInt(priorityRaw, 10, 64)
		if err != nil || priority < 1 || priority > 5 {
			return models.UrgentNeed{}, errors.New("priority must be between 1 and 5")
		}
	}

	return models.UrgentNeed{
		ItemName: strings.TrimSpace(m.addInputs[0].Value()),
		Quantity: models.APIInt(quantity),
		Priority: models.APIInt(priority),
	}, nil
}

func (m *needsModel) View() string {
	title := "URGENT NEEDS"
	if m.own {
		title = "OUR URGENT NEEDS"
	}

	if m.adding {
		var b strings.Builder
		b.WriteString(renderFormRow("Item", m.addInputs[0].View()))
		b.WriteString(renderFormRow("Quantity", m.addInputs[1].View()))
		b.WriteString(renderFormRow("Priority", m.addInputs[2].View()))
		if m.saving {
			b.WriteString("\n[Saving...]\n")
		}
		if m.errMsg != "" {
			b.WriteString("\nError: " + m.errMsg + "\n")
		}
		return renderPage("POST AN URGENT NEED", strings.TrimRight(b.String(), "\n"),
			"tab: next field │ enter: save │ esc: cancel")
	}

	if m.loading {
		return renderPage(title, "Loading...", "esc: back")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString("No urgent needs posted\n")
	} else {
		b.WriteString("Item                     │ Qty │ Priority │ NGO\n")
		b.WriteString("─────────────────────────┼─────┼──────────┼──────────────────\n")
		for i, need := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf(
				"%s%-24s │ %-3d │ %-8s │ %s\n",
				cursor,
				fitText(need.ItemName, 24),
				need.Quantity.Int64(),
				strings.Repeat("!", int(need.Rank())),
				fitText(need.NGOName, 18),
			))
		}
	}

	hotKeys := "↑/↓: navigate │ r: refresh │ esc: back"
	if m.own {
		hotKeys = "a: add │ ctrl+d: delete │ " + hotKeys
	}

	out := renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
	if m.confirm != nil {
		return m.confirm.View()
	}
	return out
}
