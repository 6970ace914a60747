// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"
	"unicode/utf8"

	"github.com/jeranaias/laststand-tui/internal/effects"
	"github.com/jeranaias/laststand-tui/internal/severity"
	"github.com/jeranaias/laststand-tui/internal/ui/styles"
)

const (
	// NearDeathPercent is the game over health at or below which the final
	// warning banner shows.
	NearDeathPercent = 5
	// EmergencyPercent is the glitch integrity at or below which the
	// emergency banner shows.
	EmergencyPercent = 20
)

// ProfileFor returns the effect channels the widget for in runs.
func ProfileFor(in Input) effects.Profile {
	in = in.Normalize()
	k, t := in.Kind, in.Theme
	var p effects.Profile

	switch k {
	case Reaper:
		p.Blink = effects.Split(severity.Critical, time.Duration(0), 500*time.Millisecond)

	case Glitch:
		p.Countdown = true
		p.Blink = effects.Split(severity.Critical, time.Second, 300*time.Millisecond)
		p.Glitch = &effects.GlitchSpec{
			Interval:    500 * time.Millisecond,
			Jitter:      time.Second,
			Probability: effects.Split(severity.Warning, 0.1, 0.3),
			MinActive:   100 * time.Millisecond,
			MaxActive:   300 * time.Millisecond,
			MaxOffset:   3,
		}

	case GameOver:
		p.Blink = effects.Uniform(500 * time.Millisecond)
		steps := utf8.RuneCountInString(TitleFor(k, t))
		if in.Title != "" {
			steps = utf8.RuneCountInString(in.Title)
		}
		typing := 2 * time.Second
		if t == styles.Minimal {
			typing = 1500 * time.Millisecond
		}
		p.Typewriter = &effects.TypewriterSpec{Duration: typing, Steps: steps}
		p.Shake = &effects.ShakeSpec{
			Interval:    2 * time.Second,
			Duration:    500 * time.Millisecond,
			Probability: effects.Tiered[float64]{0, 0, 0.2, 0.4},
		}

	default:
		p.Countdown = true
		p.Blink = effects.Split(severity.Critical, time.Second, 500*time.Millisecond)
	}

	switch t {
	case styles.Retro:
		p.Scanline = true
		p.FlickerThreshold = 0.97
		if k == Timer {
			p.Blink = effects.Uniform(500 * time.Millisecond)
		}
	case styles.Holo:
		p.HoloPulse = true
		if k == Timer {
			p.Blink = effects.Uniform(500 * time.Millisecond)
		}
	case styles.Military:
		p.Clock = true
		if k == Timer || k == Glitch {
			p.Blink = effects.Split(severity.Critical, 800*time.Millisecond, 300*time.Millisecond)
		}
	}
	return p
}
