// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/laststand-tui/internal/severity"
	"github.com/jeranaias/laststand-tui/internal/ui/styles"
)

// =============================================================================
// PRIMITIVE RENDERING TESTS
// =============================================================================

func TestHeadingRender(t *testing.T) {
	term := asciiTerm()
	h := Heading{Text: "last stand", Style: styles.Descriptor{Uppercase: true}}
	if got := h.Render(term, 40); got != "LAST STAND" {
		t.Errorf("Render = %q", got)
	}

	h.Offset = 2
	if got := h.Render(term, 40); got != "  LAST STAND" {
		t.Errorf("displaced Render = %q", got)
	}

	h = Heading{Text: "SYSTEM INTEGRITY BREACH"}
	if got := h.Render(term, 10); lipgloss.Width(got) > 10 {
		t.Errorf("heading wider than 10: %q", got)
	}
}

func TestTimeDisplayRender(t *testing.T) {
	td := TimeDisplay{Label: "TIME REMAINING", Value: "00:45"}
	out := td.Render(asciiTerm(), 40)
	if !strings.Contains(out, "TIME REMAINING") || !strings.Contains(out, "00:45") {
		t.Errorf("missing content:\n%s", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
}

func TestProgressBarDisplayed(t *testing.T) {
	tests := []struct {
		percent float64
		reverse bool
		want    float64
	}{
		{75, false, 75},
		{75, true, 25},
		{120, false, 100},
		{-5, true, 100},
	}
	for _, tt := range tests {
		p := ProgressBar{Percent: tt.percent, Reverse: tt.reverse}
		if got := p.Displayed(); got != tt.want {
			t.Errorf("Displayed(%v, reverse=%v) = %v, want %v", tt.percent, tt.reverse, got, tt.want)
		}
	}
}

func TestProgressBarRender(t *testing.T) {
	g := styles.GlyphsFor(styles.Retro)
	p := ProgressBar{Label: "SYSTEM INTEGRITY", Percent: 50, Glyphs: g}
	out := p.Render(asciiTerm(), 20)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected label and bar lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "50.0%") {
		t.Errorf("label line = %q", lines[0])
	}
	bar := lines[1]
	if strings.Count(bar, "#") != 10 || strings.Count(bar, ".") != 10 {
		t.Errorf("bar = %q, want 10 full and 10 empty", bar)
	}
}

func TestProgressBarMarker(t *testing.T) {
	p := ProgressBar{Percent: 100, Reverse: true, Marker: "X", Glyphs: styles.GlyphsFor(styles.Retro)}
	out := p.Render(asciiTerm(), 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected marker and bar lines, got %d", len(lines))
	}
	if strings.Index(lines[0], "X") != 0 {
		t.Errorf("marker at full distance should sit at column 0: %q", lines[0])
	}
}

func TestStatusBoxRender(t *testing.T) {
	box := StatusBox{
		Title: "STATUS REPORT",
		Icon:  "!",
		Lines: []string{"Threat approaching at accelerated pace. Defensive options limited."},
		Box:   styles.Resolve(styles.Retro, severity.Warning, styles.StatusBox),
	}
	out := box.Render(asciiTerm(), 30)
	if !strings.Contains(out, "! STATUS REPORT") {
		t.Errorf("missing title:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 30 {
			t.Errorf("line wider than box (%d): %q", w, line)
		}
	}
	if !strings.Contains(out, "accelerated") {
		t.Errorf("body not rendered:\n%s", out)
	}
}

func TestStatusBoxBody(t *testing.T) {
	box := StatusBox{
		Title: "DIAGNOSTIC LOG",
		Lines: []string{"ignored"},
		Body:  Diagnostics{Prompt: "$ sys.check", Lines: []string{"RUNNING DIAGNOSTICS"}, Bullet: ">"},
	}
	out := box.Render(asciiTerm(), 40)
	if strings.Contains(out, "ignored") {
		t.Error("Lines must not render when Body is set")
	}
	if !strings.Contains(out, "> RUNNING DIAGNOSTICS") || !strings.Contains(out, "$ sys.check") {
		t.Errorf("diagnostics missing:\n%s", out)
	}
}

func TestBannerRenderCentered(t *testing.T) {
	b := Banner{Text: "ALERT"}
	if got := b.Render(asciiTerm(), 14); got != "   ALERT    " {
		t.Errorf("Render = %q", got)
	}
}

func TestLivesRowRender(t *testing.T) {
	row := LivesRow{Lives: 2, Total: 5, Glyphs: styles.GlyphsFor(styles.Retro)}
	if got := row.Render(asciiTerm(), 40); got != "<3 <3 -- -- --" {
		t.Errorf("Render = %q", got)
	}
}

func TestScanlineColumn(t *testing.T) {
	tests := []struct {
		pos, width, want int
	}{
		{0, 50, 0},
		{50, 50, 25},
		{99, 50, 49},
		{100, 50, 0},
		{-1, 100, 99},
		{10, 0, 0},
	}
	for _, tt := range tests {
		s := Scanline{Position: tt.pos}
		if got := s.Column(tt.width); got != tt.want {
			t.Errorf("Column(pos=%d, width=%d) = %d, want %d", tt.pos, tt.width, got, tt.want)
		}
	}

	out := Scanline{Position: 50, Glyph: '-'}.Render(asciiTerm(), 10)
	if out != "----------" {
		t.Errorf("Render = %q", out)
	}
}

func TestFooterRender(t *testing.T) {
	f := Footer{Items: []string{"LAST STAND MODE", "DIFFICULTY: EXTREME"}}
	got := f.Render(asciiTerm(), 80)
	if got != "LAST STAND MODE  ·  DIFFICULTY: EXTREME" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderRespectsWidth(t *testing.T) {
	term := asciiTerm()
	in := Input{Kind: Glitch, Theme: styles.Holo, Remaining: 5, MaxTime: 60}
	out := Render(Compose(in, InitialState(in)), term, 50)
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != 50 {
			t.Errorf("line width %d, want 50: %q", w, line)
		}
	}
	narrow := Render(Compose(in, InitialState(in)), term, 5)
	if w := lipgloss.Width(strings.Split(narrow, "\n")[0]); w != MinWidth {
		t.Errorf("narrow width %d, want %d", w, MinWidth)
	}
}

func TestCorruptKeepsLength(t *testing.T) {
	for seed := -3; seed <= 3; seed++ {
		got := corrupt("SYSTEM FAILURE", seed)
		if len([]rune(got)) != len([]rune("SYSTEM FAILURE")) {
			t.Errorf("seed %d changed length: %q", seed, got)
		}
		if []rune(got)[6] != ' ' {
			t.Errorf("seed %d corrupted a space: %q", seed, got)
		}
	}
}
