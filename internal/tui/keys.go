// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	add     key.Binding
	toggle  key.Binding
	remove  key.Binding
	clear   key.Binding
	submit  key.Binding
	copy    key.Binding
	signOut key.Binding
	reload  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q")),
	add:     key.NewBinding(key.WithKeys("a")),
	toggle:  key.NewBinding(key.WithKeys(" ", "space", "o")),
	remove:  key.NewBinding(key.WithKeys("d", "delete")),
	clear:   key.NewBinding(key.WithKeys("c")),
	submit:  key.NewBinding(key.WithKeys("enter", "s")),
	copy:    key.NewBinding(key.WithKeys("y")),
	signOut: key.NewBinding(key.WithKeys("L")),
	reload:  key.NewBinding(key.WithKeys("r")),
}
