// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/jeranaias/laststand-tui/internal/severity"
)

// =============================================================================
// RESOLVER COMPLETENESS
// =============================================================================

func TestSpecsCoverEveryElement(t *testing.T) {
	for _, th := range Themes {
		spec, ok := specs[th]
		if !ok {
			t.Fatalf("no spec for theme %s", th)
		}
		for _, e := range Elements {
			if spec[e] == nil {
				t.Errorf("theme %s has no style for %s", th, e)
			}
		}
	}
}

func TestResolve_Total(t *testing.T) {
	for _, th := range Themes {
		for _, s := range severity.All {
			for _, e := range Elements {
				d := Resolve(th, s, e)
				if d.IsZero() {
					t.Errorf("Resolve(%s, %s, %s) is empty", th, s, e)
				}
			}
		}
	}
}

func TestResolve_UnknownElementFallsBackToText(t *testing.T) {
	for _, th := range Themes {
		for _, s := range severity.All {
			want := Resolve(th, s, Text)
			if got := Resolve(th, s, Element(999)); got != want {
				t.Errorf("%s/%s: unknown element = %+v, want text %+v", th, s, got, want)
			}
			if got := Resolve(th, s, Element(-1)); got != want {
				t.Errorf("%s/%s: negative element not text", th, s)
			}
		}
	}
}

func TestResolve_UnknownThemeFallsBackToClassic(t *testing.T) {
	got := Resolve(Theme(77), severity.Warning, Time)
	want := Resolve(Classic, severity.Warning, Time)
	if got != want {
		t.Errorf("unknown theme resolved to %+v, want %+v", got, want)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	a := Resolve(Holo, severity.Caution, Title)
	b := Resolve(Holo, severity.Caution, Title)
	if a != b {
		t.Error("Resolve not deterministic")
	}
}

// =============================================================================
// COLOR RAMPS
// =============================================================================

func TestClassicRampDarkensWithDanger(t *testing.T) {
	seen := map[Color]bool{}
	for _, s := range severity.All {
		c := Resolve(Classic, s, Time).Foreground
		if seen[c] {
			t.Errorf("classic reuses color %s at %s", c, s)
		}
		seen[c] = true
	}
}

func TestRetroIsGreenUntilCritical(t *testing.T) {
	for _, s := range []severity.Severity{severity.Stable, severity.Caution, severity.Warning} {
		if got := Resolve(Retro, s, Time).Foreground; got != "#30ff30" {
			t.Errorf("retro %s time color = %s", s, got)
		}
	}
	if got := Resolve(Retro, severity.Critical, Time).Foreground; got != "#ff3030" {
		t.Errorf("retro critical time color = %s", got)
	}
}

func TestHoloInterpolates(t *testing.T) {
	var reds []float64
	for _, s := range severity.All {
		c, err := colorful.Hex(string(AccentColor(Holo, s)))
		if err != nil {
			t.Fatalf("holo %s: %v", s, err)
		}
		reds = append(reds, c.R)
	}
	for i := 1; i < len(reds); i++ {
		if reds[i] <= reds[i-1] {
			t.Errorf("holo red channel did not rise at tier %d: %v", i, reds)
		}
	}
	calm, _ := colorful.Hex(string(AccentColor(Holo, severity.Stable)))
	if calm.B <= calm.R {
		t.Errorf("holo stable should be blue, got %s", calm.Hex())
	}
}

func TestNeonTitleStaysCalm(t *testing.T) {
	if Resolve(Neon, severity.Caution, Title).Foreground != Resolve(Neon, severity.Stable, Title).Foreground {
		t.Error("neon title shifted before warning")
	}
	if Resolve(Neon, severity.Critical, Title).Foreground == Resolve(Neon, severity.Stable, Title).Foreground {
		t.Error("neon title did not shift at critical")
	}
}

// =============================================================================
// DESCRIPTOR RENDERING
// =============================================================================

func TestDescriptorApply(t *testing.T) {
	d := Descriptor{Uppercase: true, Spacing: 1}
	if got := d.Apply("go"); got != "G O" {
		t.Errorf("Apply = %q", got)
	}
	if got := (Descriptor{}).Apply("keep"); got != "keep" {
		t.Errorf("plain Apply = %q", got)
	}
}

func TestDescriptorRenderAscii(t *testing.T) {
	term := NewTerminalWithProfile(&bytes.Buffer{}, termenv.Ascii, true)
	d := Resolve(Minimal, severity.Stable, Text)
	if got := d.Render(term, "plain"); got != "plain" {
		t.Errorf("ascii render = %q", got)
	}
}

func TestDescriptorBorder(t *testing.T) {
	term := NewTerminalWithProfile(&bytes.Buffer{}, termenv.Ascii, true)
	out := Resolve(Classic, severity.Stable, Container).Style(term).Render("x")
	if !strings.Contains(out, "╭") {
		t.Errorf("classic container should use a rounded border:\n%s", out)
	}
	out = Resolve(Military, severity.Stable, Container).Style(term).Render("x")
	if !strings.Contains(out, "┏") {
		t.Errorf("military container should use a thick border:\n%s", out)
	}
}

func TestDescriptorOpacityBlends(t *testing.T) {
	term := NewTerminalWithProfile(&bytes.Buffer{}, termenv.TrueColor, true)
	d := Descriptor{Foreground: "#ffffff", Opacity: 0.5}
	got := d.visibleForeground(term)
	if got == "#ffffff" || got == "#000000" {
		t.Errorf("opacity not blended: %s", got)
	}
	opaque := Descriptor{Foreground: "#123456"}
	if opaque.visibleForeground(term) != "#123456" {
		t.Error("zero opacity must mean opaque")
	}
}

func TestGlyphsFallback(t *testing.T) {
	if GlyphsFor(Theme(9)) != GlyphsFor(Classic) {
		t.Error("glyph fallback")
	}
}
