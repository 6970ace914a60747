// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jeranaias/laststand-tui/internal/severity"
)

// =============================================================================
// SHARED TONES
// =============================================================================

const (
	White    Color = "#f8f9fa"
	Gray5    Color = "#adb5bd"
	Gray6    Color = "#868e96"
	Gray7    Color = "#495057"
	Gray8    Color = "#343a40"
	Charcoal Color = "#1a1b1e"
)

// =============================================================================
// THEME PALETTES
// =============================================================================

// palette is the raw material a theme spec is built from. Ramp is indexed
// by severity tier.
type palette struct {
	ramp    [4]Color
	text    Color
	muted   Color
	surface Color
	track   Color
	frame   Color // border color when it does not follow the ramp
	life    Color

	border    BorderKind
	font      Font
	glow      bool
	uppercase bool
	spacing   int
	opacity   float64
}

func (p palette) accent(s severity.Severity) Color {
	if s < severity.Stable || s > severity.Critical {
		s = severity.Stable
	}
	return p.ramp[s]
}

var classicPalette = palette{
	ramp:      [4]Color{"#fa5252", "#f03e3e", "#e03131", "#c92a2a"},
	text:      White,
	muted:     Gray6,
	surface:   Charcoal,
	track:     Gray8,
	life:      "#e03131",
	border:    BorderRounded,
	font:      FontDisplay,
	uppercase: true,
}

var neonPalette = palette{
	ramp:      [4]Color{"#00dcff", "#e64980", "#ff00f0", "#ff1744"},
	text:      "#e0f7ff",
	muted:     "#7a5c99",
	surface:   "#0a0014",
	track:     "#1a0033",
	life:      "#ff00f0",
	border:    BorderDouble,
	font:      FontDisplay,
	glow:      true,
	uppercase: true,
	spacing:   1,
}

// Retro never leaves phosphor green until the alarm state.
var retroPalette = palette{
	ramp:      [4]Color{"#30ff30", "#30ff30", "#30ff30", "#ff3030"},
	text:      "#30ff30",
	muted:     "#25a025",
	surface:   "#052505",
	track:     "#0b3d0b",
	frame:     "#25a025",
	life:      "#30ff30",
	border:    BorderNormal,
	font:      FontMono,
	uppercase: true,
}

var holoPalette = palette{
	ramp:    holoRamp(),
	text:    "#c8e6ff",
	muted:   "#6c8eb0",
	track:   "#0d2238",
	life:    "#64c8ff",
	border:  BorderRounded,
	font:    FontSans,
	glow:    true,
	spacing: 1,
	opacity: 0.85,
}

var militaryPalette = palette{
	ramp:      [4]Color{"#2f9e44", "#2f9e44", "#f08c00", "#e03131"},
	text:      "#d0d0c0",
	muted:     "#8a8a70",
	surface:   "#1a1a1a",
	track:     "#262626",
	frame:     "#404040",
	life:      "#2f9e44",
	border:    BorderThick,
	font:      FontMono,
	uppercase: true,
	spacing:   1,
}

var minimalPalette = palette{
	ramp:    [4]Color{Gray5, "#fcc419", "#ff922b", "#ff6b6b"},
	text:    "#dee2e6",
	muted:   Gray6,
	track:   Gray7,
	frame:   Gray7,
	life:    "#ff6b6b",
	border:  BorderNormal,
	font:    FontSans,
}

// =============================================================================
// HOLO INTERPOLATION
// =============================================================================

var (
	holoCalm  = mustHex("#3296ff")
	holoAlarm = mustHex("#ff3232")
)

// holoColor blends from blue to red by tier, so each step up in danger
// moves a third of the way across.
func holoColor(s severity.Severity) Color {
	t := float64(s) / float64(severity.Critical)
	return Color(holoCalm.BlendRgb(holoAlarm, t).Clamped().Hex())
}

func holoRamp() [4]Color {
	var r [4]Color
	for _, s := range severity.All {
		r[s] = holoColor(s)
	}
	return r
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// AccentColor returns the severity color of a theme, the color used for
// the main readout and progress fill.
func AccentColor(t Theme, s severity.Severity) Color {
	return paletteFor(t).accent(s)
}

func paletteFor(t Theme) palette {
	switch t {
	case Neon:
		return neonPalette
	case Retro:
		return retroPalette
	case Holo:
		return holoPalette
	case Military:
		return militaryPalette
	case Minimal:
		return minimalPalette
	}
	return classicPalette
}
