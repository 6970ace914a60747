// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the menu key bindings.
type KeyMap struct {
	NextTheme key.Binding
	PrevTheme key.Binding
	NextType  key.Binding
	Increase  key.Binding
	Decrease  key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTheme: key.NewBinding(
			key.WithKeys("t", "right", "l"),
			key.WithHelp("t/→", "next theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("T", "left", "h"),
			key.WithHelp("T/←", "prev theme"),
		),
		NextType: key.NewBinding(
			key.WithKeys("tab", "v"),
			key.WithHelp("tab", "next type"),
		),
		Increase: key.NewBinding(
			key.WithKeys("+", "=", "up", "k"),
			key.WithHelp("+/↑", "more time"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "down", "j"),
			key.WithHelp("-/↓", "less time"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTheme, k.NextType, k.Increase, k.Decrease, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTheme, k.PrevTheme, k.NextType},
		{k.Increase, k.Decrease, k.Reset},
		{k.Help, k.Quit},
	}
}

// adjustHelp relabels the adjust keys for the widget's input.
func (k *KeyMap) adjustHelp(timeDriven bool) {
	if timeDriven {
		k.Increase.SetHelp("+/↑", "more time")
		k.Decrease.SetHelp("-/↓", "less time")
		return
	}
	k.Increase.SetHelp("+/↑", "more health")
	k.Decrease.SetHelp("-/↓", "less health")
}
