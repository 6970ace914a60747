// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/laststand-tui/internal/ui/styles"
)

// MinWidth is the narrowest frame Render will draw.
const MinWidth = 24

// Render draws f inside its themed container, width cells wide.
func Render(f Frame, term *styles.Terminal, width int) string {
	width = max(width, MinWidth)
	inner := width - 4 // border and padding

	lines := make([]string, 0, len(f.Parts))
	for _, p := range f.Parts {
		lines = append(lines, p.Render(term, inner))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)

	box := f.Container.Style(term).
		Padding(0, 1).
		Width(width - 2).
		Align(lipgloss.Center)
	if f.Shake {
		box = box.MarginLeft(1)
	}
	return box.Render(body)
}

func profileOf(term *styles.Terminal) termenv.Profile {
	if term == nil {
		return termenv.ColorProfile()
	}
	return term.ColorProfile
}
