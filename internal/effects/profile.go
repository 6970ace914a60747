// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"time"

	"github.com/jeranaias/laststand-tui/internal/severity"
)

// Default cadences.
const (
	CountdownPeriod = time.Second
	ScanlinePeriod  = 50 * time.Millisecond
	HoloPulsePeriod = 30 * time.Millisecond
	FlickerPeriod   = 100 * time.Millisecond
	ClockPeriod     = time.Second
)

// Tiered holds one value per severity tier.
type Tiered[T any] [4]T

// At returns the value for s, clamping out-of-range tiers.
func (t Tiered[T]) At(s severity.Severity) T {
	switch {
	case s < severity.Stable:
		s = severity.Stable
	case s > severity.Critical:
		s = severity.Critical
	}
	return t[s]
}

// Uniform returns a Tiered with the same value at every tier.
func Uniform[T any](v T) Tiered[T] {
	return Tiered[T]{v, v, v, v}
}

// Split returns a Tiered holding calm below from and alarm at from or above.
func Split[T any](from severity.Severity, calm, alarm T) Tiered[T] {
	var out Tiered[T]
	for _, s := range severity.All {
		if s.AtLeast(from) {
			out[s] = alarm
		} else {
			out[s] = calm
		}
	}
	return out
}

// GlitchSpec configures the stochastic glitch channel.
type GlitchSpec struct {
	// Interval is the base draw period; Jitter adds a random amount in
	// [0, Jitter) once, when the channel starts.
	Interval time.Duration
	Jitter   time.Duration
	// Probability of a glitch per draw, by tier.
	Probability Tiered[float64]
	// Active duration is drawn in [MinActive, MaxActive).
	MinActive time.Duration
	MaxActive time.Duration
	// MaxOffset bounds the horizontal displacement applied while active.
	MaxOffset int
}

// ShakeSpec configures the shake channel.
type ShakeSpec struct {
	Interval    time.Duration
	Duration    time.Duration
	Probability Tiered[float64]
}

// TypewriterSpec reveals Steps characters evenly over Duration.
type TypewriterSpec struct {
	Duration time.Duration
	Steps    int
}

// Profile declares which channels a widget runs.
type Profile struct {
	Countdown bool
	// Blink period by tier; zero disables blinking at that tier.
	Blink     Tiered[time.Duration]
	Scanline  bool
	HoloPulse bool
	// Flicker draws every FlickerPeriod and is active above the threshold.
	// Zero disables the channel.
	FlickerThreshold float64
	Glitch           *GlitchSpec
	Shake            *ShakeSpec
	Typewriter       *TypewriterSpec
	Clock            bool
}
