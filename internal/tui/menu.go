// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

type menuEntry struct {
	label string
	page  string
}

// menuList is the cursor-driven destination list shared by the home screens.
type menuList struct {
	entries []menuEntry
	idx     int
}

func (m *menuList) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *menuList) moveDown() {
	if m.idx < len(m.entries)-1 {
		m.idx++
	}
}

func (m *menuList) selected() string {
	return m.entries[m.idx].page
}

func (m *menuList) view() string {
	out := ""
	for i, entry := range m.entries {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + entry.label + "\n"
	}
	return out
}
