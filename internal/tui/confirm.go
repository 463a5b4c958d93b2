// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n" + helpStyle.Render("y: yes    n: no")
	return overlayBoxStyle.Render(content)
}
