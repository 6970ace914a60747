// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"strings"

	"github.com/jeranaias/laststand-tui/internal/effects"
	"github.com/jeranaias/laststand-tui/internal/severity"
	"github.com/jeranaias/laststand-tui/internal/ui/styles"
	"github.com/jeranaias/laststand-tui/internal/util"
)

// DefaultTotalLives is the number of life glyphs on the game over screen.
const DefaultTotalLives = 5

// Input is everything a widget is composed from.
type Input struct {
	Kind  Kind
	Theme styles.Theme

	// Timer and glitch widgets count down from Remaining seconds.
	Remaining int
	MaxTime   int

	// Reaper and game over widgets show a supplied percentage.
	Percent    float64
	TotalLives int

	Tables Tables
	// Title replaces the theme's default heading when set.
	Title string
}

// Normalize replaces out-of-domain values with safe defaults. Percentages
// are clamped and unknown kinds and themes fall back to the defaults.
func (in Input) Normalize() Input {
	if !in.Theme.Valid() {
		in.Theme = styles.DefaultTheme
	}
	if _, ok := kindNames[in.Kind]; !ok {
		in.Kind = DefaultKind
	}
	in.Remaining = max(in.Remaining, 0)
	in.Percent = severity.Clamp(in.Percent)
	if in.TotalLives <= 0 {
		in.TotalLives = DefaultTotalLives
	}
	return in
}

// InitialState is the effect state a freshly mounted widget starts from.
func InitialState(in Input) effects.State {
	in = in.Normalize()
	return effects.State{Remaining: in.Remaining}
}

// Measure returns the percentage and tier a widget shows for in and st.
// Time-driven kinds read the live countdown from st.
func Measure(in Input, st effects.State) (float64, severity.Severity) {
	in = in.Normalize()
	p := in.Percent
	if in.Kind.TimeDriven() {
		p = severity.Percentage(st.Remaining, in.MaxTime)
	}
	return p, severity.Classify(p, in.Tables.For(in.Kind))
}

// Classifier returns the function the effect scheduler uses to retune
// severity-dependent channels.
func Classifier(in Input) effects.ClassifyFunc {
	return func(st effects.State) severity.Severity {
		_, s := Measure(in, st)
		return s
	}
}

// Lives converts a health percentage into whole lives, rounding up so any
// remaining health shows at least one life.
func Lives(percent float64, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Ceil(severity.Clamp(percent) * float64(total) / 100))
}

// Frame is a composed widget ready to render.
type Frame struct {
	Kind     Kind
	Theme    styles.Theme
	Severity severity.Severity
	Percent  float64
	// Primary is the formatted main readout ("00:45", "12.5%").
	Primary  string
	Title    string
	Subtitle string
	Status   string
	Parts    []Part

	Container styles.Descriptor
	Shake     bool
	NearDeath bool
}

// FindPart returns the first part of type T in f.
func FindPart[T Part](f Frame) (T, bool) {
	for _, p := range f.Parts {
		if v, ok := p.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Compose builds the frame of in at effect state st.
func Compose(in Input, st effects.State) Frame {
	in = in.Normalize()
	p, sev := Measure(in, st)

	c := composer{in: in, st: st, sev: sev, pct: p, glyphs: styles.GlyphsFor(in.Theme)}
	f := Frame{
		Kind:      in.Kind,
		Theme:     in.Theme,
		Severity:  sev,
		Percent:   p,
		Title:     TitleFor(in.Kind, in.Theme),
		Status:    StatusMessage(in.Kind, sev),
		Container: c.resolve(styles.Container),
	}
	if in.Title != "" {
		f.Title = in.Title
	}

	switch in.Kind {
	case Reaper:
		c.reaper(&f)
	case Glitch:
		c.glitch(&f)
	case GameOver:
		c.gameOver(&f)
	default:
		c.timer(&f)
	}
	return f
}

type composer struct {
	in     Input
	st     effects.State
	sev    severity.Severity
	pct    float64
	glyphs styles.Glyphs
}

func (c composer) resolve(e styles.Element) styles.Descriptor {
	return styles.Resolve(c.in.Theme, c.sev, e)
}

func (c composer) add(f *Frame, parts ...Part) {
	f.Parts = append(f.Parts, parts...)
}

func (c composer) heading(text string, e styles.Element) Heading {
	return Heading{Text: text, Style: c.resolve(e)}
}

func (c composer) progress(label string, reverse bool) ProgressBar {
	return ProgressBar{
		Label:        label,
		Percent:      c.pct,
		Reverse:      reverse,
		Glyphs:       c.glyphs,
		Fill:         c.resolve(styles.ProgressFill),
		Track:        c.resolve(styles.ProgressTrack),
		LabelStyle:   c.resolve(styles.ProgressLabel),
		PercentStyle: c.resolve(styles.Percentage),
	}
}

func (c composer) status(title string, lines ...string) StatusBox {
	return StatusBox{
		Title:      title,
		Icon:       c.glyphs.Icon,
		Lines:      lines,
		Box:        c.resolve(styles.StatusBox),
		TitleStyle: c.resolve(styles.StatusTitle),
		TextStyle:  c.resolve(styles.StatusText),
		IconStyle:  c.resolve(styles.Icon),
		Dim:        c.st.Blink && c.sev.AtLeast(severity.Warning),
	}
}

func (c composer) banner(text string) Banner {
	return Banner{Text: text, Style: c.resolve(styles.Banner), Dim: c.st.Blink}
}

// themeExtras appends the per-theme overlays: retro scanline, holo pulse
// and the military clock.
func (c composer) themeExtras(f *Frame) {
	switch c.in.Theme {
	case styles.Retro:
		c.add(f, Scanline{
			Position: c.st.Scanline,
			Glyph:    c.glyphs.Scanline,
			Style:    c.resolve(styles.Scanline),
			Sweep:    c.resolve(styles.Title),
		})
	case styles.Holo:
		c.add(f, Scanline{
			Position: c.st.Phase,
			Glyph:    c.glyphs.Scanline,
			Style:    c.resolve(styles.Scanline),
			Sweep:    c.resolve(styles.ProgressFill),
		})
	case styles.Military:
		if c.st.Timestamp != "" {
			c.add(f, c.heading(zuluLabel+" "+c.st.Timestamp, styles.Diagnostic))
		}
	}
}

// =============================================================================
// TIMER
// =============================================================================

func (c composer) timer(f *Frame) {
	f.Primary = util.FormatClock(c.st.Remaining)
	if c.in.Theme == styles.Military {
		f.Primary = util.FormatMission(c.st.Remaining)
	}

	title := c.heading(f.Title, styles.Title)
	title.Dim = c.st.Flicker
	c.add(f, title)
	c.add(f, TimeDisplay{
		Label:      timeLabel,
		Value:      f.Primary,
		LabelStyle: c.resolve(styles.TimeLabel),
		ValueStyle: c.resolve(styles.Time),
		Dim:        c.st.Blink && c.sev == severity.Critical,
	})
	c.add(f, c.progress(integrityLabel, false))
	c.add(f, c.status(systemStatus+": "+c.sev.Label(), f.Status))

	if text, ok := AlertBanner(Timer, c.in.Theme, c.pct); ok {
		c.add(f, c.banner(text))
	}
	c.themeExtras(f)
}

// =============================================================================
// REAPER
// =============================================================================

func (c composer) reaper(f *Frame) {
	f.Primary = util.FormatPercent(c.pct)
	f.Subtitle = reaperSubtitles.at(c.sev)

	title := c.heading(f.Title, styles.Title)
	title.Dim = c.st.Flicker
	sub := c.heading(f.Subtitle, styles.Subtitle)
	if c.sev == severity.Critical {
		sub.Style = c.resolve(styles.StatusTitle)
		sub.Dim = c.st.Blink
	}

	bar := c.progress(distanceLabel, true)
	bar.Marker = c.glyphs.Marker

	c.add(f, title, sub, bar, c.status(statusReport, f.Status))
	c.themeExtras(f)
}

// =============================================================================
// GLITCH
// =============================================================================

func (c composer) glitch(f *Frame) {
	f.Primary = util.FormatClock(c.st.Remaining)
	f.Subtitle = "STABILIZATION PROTOCOL: " + dangerLevels.at(c.sev)

	title := c.heading(f.Title, styles.Title)
	if c.st.Glitch {
		title.Text = corrupt(f.Title, c.st.GlitchOffset)
		title.Offset = c.st.GlitchOffset
	}
	title.Dim = c.st.Flicker

	c.add(f, title, c.heading(f.Subtitle, styles.Subtitle))
	c.add(f, TimeDisplay{
		Label:      failureLabel,
		Value:      f.Primary,
		LabelStyle: c.resolve(styles.TimeLabel),
		ValueStyle: c.resolve(styles.Time),
		Dim:        c.st.Blink && c.sev == severity.Critical,
	})
	c.add(f, c.progress(integrityLabel, false))
	c.add(f, c.heading("SYSTEM STATE: "+f.Status, styles.Percentage))

	box := c.status(diagnosticTitle)
	box.Body = Diagnostics{
		Prompt: diagnosticPrompt,
		Lines:  DiagnosticLines(c.in.Theme, c.pct, c.st.Remaining),
		Bullet: c.glyphs.Bullet,
		Style:  c.resolve(styles.Diagnostic),
	}
	c.add(f, box)

	if text, ok := AlertBanner(Glitch, c.in.Theme, c.pct); ok {
		c.add(f, c.banner(text))
	}
	if c.pct <= EmergencyPercent {
		c.add(f, c.banner(emergencyBanner))
	}
	c.themeExtras(f)
}

// corrupt swaps a few letters of s for block glyphs. The choice of letters
// follows seed so a single glitch renders consistently.
func corrupt(s string, seed int) string {
	noise := []rune("█▓▒░#%&")
	if seed < 0 {
		seed = -seed
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	step := 3 + (seed+len(noise))%3
	for i := (seed + len(runes)) % step; i < len(runes); i += step {
		if runes[i] != ' ' {
			runes[i] = noise[(i+seed+len(noise))%len(noise)]
		}
	}
	return string(runes)
}

// =============================================================================
// GAME OVER
// =============================================================================

func (c composer) gameOver(f *Frame) {
	f.Primary = util.FormatPercent(c.pct)
	f.NearDeath = c.pct <= NearDeathPercent
	f.Shake = c.st.Shake

	f.Subtitle = continuePrompt
	if f.NearDeath {
		f.Subtitle = noContinues
	}

	shown := f.Title
	if !c.st.Typed {
		shown = revealed(f.Title, c.st.Revealed)
	}
	title := c.heading(shown, styles.Title)
	title.Dim = c.st.Flicker

	sub := c.heading(f.Subtitle, styles.Subtitle)
	sub.Dim = c.st.Blink

	lives := Lives(c.pct, c.in.TotalLives)
	c.add(f, title, sub, LivesRow{
		Label:      healthLabel,
		Lives:      lives,
		Total:      c.in.TotalLives,
		Glyphs:     c.glyphs,
		Full:       c.resolve(styles.LifeFull),
		Empty:      c.resolve(styles.LifeEmpty),
		LabelStyle: c.resolve(styles.TimeLabel),
	})

	bar := c.progress("", false)
	c.add(f, bar)
	if c.in.Theme == styles.Military {
		c.add(f, c.heading(util.FormatWholePercent(c.pct)+" "+remainingLabel, styles.Percentage))
	}
	c.add(f, c.status(c.sev.Label(), f.Status))
	c.add(f, Footer{Items: []string{lastStandMode, difficulty}, Style: c.resolve(styles.ProgressLabel)})

	if f.NearDeath {
		c.add(f, c.banner(finalWarning))
	}
	c.themeExtras(f)
}

// revealed returns the first n runes of s, padded so the heading keeps its
// width while typing.
func revealed(s string, n int) string {
	runes := []rune(s)
	n = min(max(n, 0), len(runes))
	return string(runes[:n]) + strings.Repeat(" ", len(runes)-n)
}
