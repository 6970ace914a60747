// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jeranaias/laststand-tui/internal/ui/styles"
	"github.com/jeranaias/laststand-tui/internal/util"
)

// Part is one render request inside a Frame. Each part carries the
// descriptors it was resolved with.
type Part interface {
	Render(term *styles.Terminal, width int) string
}

// fit applies the text transforms of d, cuts the result to width and styles it.
func fit(term *styles.Terminal, d styles.Descriptor, s string, width int) string {
	return d.Style(term).Render(util.TruncateWidth(d.Apply(s), width))
}

// dim returns d rendered faint, used for the off phase of blinking.
func dim(d styles.Descriptor, on bool) styles.Descriptor {
	if on {
		d.Faint = true
		d.Glow = ""
	}
	return d
}

// =============================================================================
// HEADING
// =============================================================================

// Heading is a single centered line of text such as a title or subtitle.
type Heading struct {
	Text   string
	Style  styles.Descriptor
	Dim    bool
	Offset int // horizontal displacement while glitching
}

func (h Heading) Render(term *styles.Terminal, width int) string {
	text := util.TruncateWidth(h.Style.Apply(h.Text), width)
	text = util.Displace(text, h.Offset)
	return dim(h.Style, h.Dim).Style(term).Render(text)
}

// =============================================================================
// TIME DISPLAY
// =============================================================================

// TimeDisplay is a label over a large readout.
type TimeDisplay struct {
	Label      string
	Value      string
	LabelStyle styles.Descriptor
	ValueStyle styles.Descriptor
	Dim        bool
}

func (t TimeDisplay) Render(term *styles.Terminal, width int) string {
	label := fit(term, t.LabelStyle, t.Label, width)
	value := dim(t.ValueStyle, t.Dim).Render(term, t.Value)
	return lipgloss.JoinVertical(lipgloss.Center, label, value)
}

// =============================================================================
// PROGRESS BAR
// =============================================================================

// ProgressBar is a labelled horizontal bar. Reverse bars fill as the
// percentage falls, for distance-closed readouts.
type ProgressBar struct {
	Label        string
	Percent      float64
	Reverse      bool
	Marker       string // drawn above the fill edge when set
	Glyphs       styles.Glyphs
	Fill         styles.Descriptor
	Track        styles.Descriptor
	LabelStyle   styles.Descriptor
	PercentStyle styles.Descriptor
}

// Displayed returns the filled share of the bar in [0,100].
func (p ProgressBar) Displayed() float64 {
	v := p.Percent
	if p.Reverse {
		v = 100 - v
	}
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func (p ProgressBar) Render(term *styles.Terminal, width int) string {
	shown := p.Displayed()
	barWidth := max(width, 4)

	bar := progress.New(
		progress.WithSolidFill(string(p.Fill.Foreground)),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
		progress.WithColorProfile(profileOf(term)),
	)
	bar.Full = p.Glyphs.BarFull
	bar.Empty = p.Glyphs.BarEmpty
	bar.EmptyColor = string(p.Track.Foreground)

	var lines []string
	if p.Label != "" {
		left := p.LabelStyle.Render(term, p.Label)
		right := p.PercentStyle.Render(term, util.FormatPercent(p.Percent))
		gap := max(barWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)
		lines = append(lines, left+strings.Repeat(" ", gap)+right)
	}
	if p.Marker != "" {
		pos := int(float64(barWidth-1) * shown / 100)
		marker := p.Fill.Style(term).Render(p.Marker)
		lines = append(lines, strings.Repeat(" ", pos)+marker+strings.Repeat(" ", max(barWidth-pos-lipgloss.Width(marker), 0)))
	}
	lines = append(lines, bar.ViewAs(shown/100))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// =============================================================================
// STATUS BOX
// =============================================================================

// StatusBox is a bordered panel with an icon title and wrapped body.
type StatusBox struct {
	Title      string
	Icon       string
	Lines      []string
	Box        styles.Descriptor
	TitleStyle styles.Descriptor
	TextStyle  styles.Descriptor
	IconStyle  styles.Descriptor
	Dim        bool // blinks the icon
	// Body is rendered below the title instead of Lines when set.
	Body Part
}

func (s StatusBox) Render(term *styles.Terminal, width int) string {
	inner := max(width-4, 8)
	title := s.TitleStyle.Render(term, s.Title)
	if s.Icon != "" {
		title = dim(s.IconStyle, s.Dim).Render(term, s.Icon) + " " + title
	}
	body := []string{title}
	if s.Body != nil {
		body = append(body, s.Body.Render(term, inner))
	} else {
		for _, line := range s.Lines {
			wrapped := wordwrap.String(s.TextStyle.Apply(line), inner)
			body = append(body, s.TextStyle.Style(term).Render(wrapped))
		}
	}
	return s.Box.Style(term).
		Padding(0, 1).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

// =============================================================================
// LIVES ROW
// =============================================================================

// LivesRow shows the discretized health as a row of glyphs.
type LivesRow struct {
	Label      string
	Lives      int
	Total      int
	Glyphs     styles.Glyphs
	Full       styles.Descriptor
	Empty      styles.Descriptor
	LabelStyle styles.Descriptor
}

func (l LivesRow) Render(term *styles.Terminal, width int) string {
	cells := make([]string, 0, l.Total)
	for i := 0; i < l.Total; i++ {
		if i < l.Lives {
			cells = append(cells, l.Full.Render(term, l.Glyphs.LifeFull))
		} else {
			cells = append(cells, l.Empty.Render(term, l.Glyphs.LifeEmpty))
		}
	}
	row := strings.Join(cells, " ")
	if l.Label == "" {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Center, l.LabelStyle.Render(term, l.Label), row)
}

// =============================================================================
// BANNER
// =============================================================================

// Banner is a boxed alert line.
type Banner struct {
	Text  string
	Style styles.Descriptor
	Dim   bool
}

func (b Banner) Render(term *styles.Terminal, width int) string {
	inner := max(width-4, 1)
	text := util.Center(util.TruncateWidth(b.Style.Apply(b.Text), inner), inner)
	return dim(b.Style, b.Dim).Style(term).Padding(0, 1).Render(text)
}

// =============================================================================
// DIAGNOSTICS
// =============================================================================

// Diagnostics is a terminal-style log block.
type Diagnostics struct {
	Prompt string
	Lines  []string
	Bullet string
	Style  styles.Descriptor
}

func (d Diagnostics) Render(term *styles.Terminal, width int) string {
	st := d.Style.Style(term)
	out := make([]string, 0, len(d.Lines)+1)
	if d.Prompt != "" {
		out = append(out, st.Render(d.Prompt))
	}
	for _, line := range d.Lines {
		out = append(out, st.Render(wordwrap.String(d.Bullet+" "+line, max(width, 8))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// =============================================================================
// SCANLINE
// =============================================================================

// Scanline is a full-width rule with a bright sweep at Position (0-99).
type Scanline struct {
	Position int
	Glyph    rune
	Style    styles.Descriptor
	Sweep    styles.Descriptor
}

// Column returns the sweep column for a rule of the given width.
func (s Scanline) Column(width int) int {
	if width <= 0 {
		return 0
	}
	pos := ((s.Position % 100) + 100) % 100
	return pos * width / 100
}

func (s Scanline) Render(term *styles.Terminal, width int) string {
	if width <= 0 {
		return ""
	}
	col := s.Column(width)
	rule := string(s.Glyph)
	st := s.Style.Style(term)
	return st.Render(strings.Repeat(rule, col)) +
		s.Sweep.Style(term).Render(rule) +
		st.Render(strings.Repeat(rule, width-col-1))
}

// =============================================================================
// FOOTER
// =============================================================================

// Footer is a row of small captions.
type Footer struct {
	Items []string
	Style styles.Descriptor
}

func (f Footer) Render(term *styles.Terminal, width int) string {
	return fit(term, f.Style, strings.Join(f.Items, "  ·  "), width)
}
