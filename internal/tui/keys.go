// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	refresh  key.Binding
	claim    key.Binding
	complete key.Binding
	more     key.Binding
	newItem  key.Binding
	delete   key.Binding
	upload   key.Binding
	send     key.Binding
	feedback key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	claim:    key.NewBinding(key.WithKeys("c")),
	complete: key.NewBinding(key.WithKeys("c")),
	more:     key.NewBinding(key.WithKeys("m")),
	newItem:  key.NewBinding(key.WithKeys("a")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
	upload:   key.NewBinding(key.WithKeys("ctrl+u")),
	send:     key.NewBinding(key.WithKeys("ctrl+s")),
	feedback: key.NewBinding(key.WithKeys("ctrl+f")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
