// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeranaias/laststand-tui/internal/util"
)

// Color is a hex color token such as "#ff1744". Empty means the terminal
// default.
type Color string

// BorderKind selects the frame drawn around boxed elements.
type BorderKind int

const (
	BorderNone BorderKind = iota
	BorderNormal
	BorderRounded
	BorderDouble
	BorderThick
	BorderBlock
)

func (b BorderKind) lipgloss() (lipgloss.Border, bool) {
	switch b {
	case BorderNormal:
		return lipgloss.NormalBorder(), true
	case BorderRounded:
		return lipgloss.RoundedBorder(), true
	case BorderDouble:
		return lipgloss.DoubleBorder(), true
	case BorderThick:
		return lipgloss.ThickBorder(), true
	case BorderBlock:
		return lipgloss.BlockBorder(), true
	}
	return lipgloss.Border{}, false
}

// Font is a typeface token. Terminals only have one face, so Display is
// rendered bold and Mono is the plain face.
type Font int

const (
	FontSans Font = iota
	FontMono
	FontDisplay
)

// Size is a relative text size token.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
	SizeXLarge
)

// Descriptor is the resolved look of one element. It is a plain value and
// is recomputed on every render.
type Descriptor struct {
	Foreground  Color
	Background  Color
	BorderColor Color
	Border      BorderKind
	// Glow is the shadow color. It tints the border when no border color
	// is set and makes text bold.
	Glow Color

	Font Font
	Size Size

	Bold      bool
	Italic    bool
	Faint     bool
	Underline bool
	Uppercase bool

	// Spacing is the number of blank cells inserted between letters.
	Spacing int
	// Opacity in [0,1]; zero is treated as fully opaque.
	Opacity float64
}

// IsZero reports whether d carries no styling at all.
func (d Descriptor) IsZero() bool {
	return d == Descriptor{}
}

var upper = cases.Upper(language.Und)

// Apply performs the text transforms of d (case and letter spacing).
func (d Descriptor) Apply(s string) string {
	if d.Uppercase {
		s = upper.String(s)
	}
	return util.Spaced(s, d.Spacing)
}

// Render applies text transforms and styling in one step.
func (d Descriptor) Render(term *Terminal, s string) string {
	return d.Style(term).Render(d.Apply(s))
}

// Style converts d into a lipgloss style for term. A nil term uses the
// default renderer.
func (d Descriptor) Style(term *Terminal) lipgloss.Style {
	s := term.NewStyle()

	if fg := d.visibleForeground(term); fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if d.Background != "" {
		s = s.Background(lipgloss.Color(d.Background))
	}

	bold := d.Bold || d.Font == FontDisplay || d.Glow != "" || d.Size >= SizeLarge
	s = s.Bold(bold).Italic(d.Italic).Faint(d.Faint).Underline(d.Underline)

	if b, ok := d.Border.lipgloss(); ok {
		s = s.Border(b)
		bc := d.BorderColor
		if bc == "" {
			bc = d.Glow
		}
		if bc != "" {
			s = s.BorderForeground(lipgloss.Color(bc))
		}
	}
	if d.Size == SizeXLarge {
		s = s.Padding(0, 1)
	}
	return s
}

// visibleForeground blends the foreground toward the backdrop by opacity.
func (d Descriptor) visibleForeground(term *Terminal) Color {
	if d.Foreground == "" || d.Opacity <= 0 || d.Opacity >= 1 {
		return d.Foreground
	}
	fg, err := colorful.Hex(string(d.Foreground))
	if err != nil {
		return d.Foreground
	}
	back := d.Background
	if back == "" {
		back = term.Backdrop()
	}
	bg, err := colorful.Hex(string(back))
	if err != nil {
		return d.Foreground
	}
	return Color(bg.BlendRgb(fg, d.Opacity).Clamped().Hex())
}
