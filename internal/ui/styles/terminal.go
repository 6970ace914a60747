// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Terminal describes the output the widgets render to.
type Terminal struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	renderer *lipgloss.Renderer
}

// NewTerminal detects the capabilities of stdout.
func NewTerminal() *Terminal {
	return newTerminal(os.Stdout, termenv.ColorProfile(), termenv.HasDarkBackground())
}

// NewTerminalWithProfile builds a Terminal with fixed capabilities. Tests
// use termenv.Ascii to get uncolored output.
func NewTerminalWithProfile(w io.Writer, profile termenv.Profile, dark bool) *Terminal {
	return newTerminal(w, profile, dark)
}

func newTerminal(w io.Writer, profile termenv.Profile, dark bool) *Terminal {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	r.SetHasDarkBackground(dark)
	return &Terminal{
		IsDark:       dark,
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
		Width:        80,
		Height:       24,
		renderer:     r,
	}
}

// NewStyle returns a lipgloss style bound to this terminal's renderer.
func (t *Terminal) NewStyle() lipgloss.Style {
	if t == nil || t.renderer == nil {
		return lipgloss.NewStyle()
	}
	return t.renderer.NewStyle()
}

// Backdrop is the color opacity blends toward when no background is set.
func (t *Terminal) Backdrop() Color {
	if t != nil && !t.IsDark {
		return "#ffffff"
	}
	return "#000000"
}

// SetSize updates the dimensions for responsive layouts.
func (t *Terminal) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// LayoutMode returns the current layout mode based on width.
func (t *Terminal) LayoutMode() LayoutMode {
	if t.Width < 50 {
		return LayoutNarrow
	}
	if t.Width < 90 {
		return LayoutMedium
	}
	return LayoutWide
}

// ContentWidth is the widget width for the current layout mode.
func (t *Terminal) ContentWidth() int {
	switch t.LayoutMode() {
	case LayoutNarrow:
		return max(t.Width-2, 20)
	case LayoutMedium:
		return t.Width - 10
	default:
		return 72
	}
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 50 columns
	LayoutMedium                   // 50-90 columns
	LayoutWide                     // >= 90 columns
)
