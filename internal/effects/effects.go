// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"time"

	"github.com/jeranaias/laststand-tui/internal/severity"
	"github.com/jeranaias/laststand-tui/internal/util"
)

// State is the effect-driven part of a widget. Only channel callbacks
// mutate it.
type State struct {
	Remaining    int    // countdown seconds
	Blink        bool   // dim phase of the blink channel
	Scanline     int    // 0-99
	Phase        int    // holo pulse, 0-99
	Glitch       bool
	GlitchOffset int
	Flicker      bool
	Shake        bool
	Revealed     int    // typewriter characters shown
	Typed        bool   // typewriter finished
	Timestamp    string // HH:MM:SSZ
}

// ClassifyFunc derives the severity tier from the current state.
type ClassifyFunc func(State) severity.Severity

// Effects runs the channels of one Profile on a Scheduler.
type Effects struct {
	s        *Scheduler
	profile  Profile
	state    State
	sev      severity.Severity
	classify ClassifyFunc

	countdown *Timer
	blink     *Timer
	typing    *Timer
}

// Start wires every channel of p onto s. classify is re-evaluated after
// each countdown tick; it may be nil when the tier is driven externally
// through SetSeverity.
func Start(s *Scheduler, p Profile, initial State, classify ClassifyFunc) *Effects {
	e := &Effects{s: s, profile: p, state: initial, classify: classify}
	if classify != nil {
		e.sev = classify(initial)
	}

	if p.Countdown && e.state.Remaining > 0 {
		e.countdown = s.Every("countdown", CountdownPeriod, e.tickCountdown)
	}
	e.scheduleBlink()
	if p.Scanline {
		s.Every("scanline", ScanlinePeriod, func() {
			e.state.Scanline = (e.state.Scanline + 1) % 100
		})
	}
	if p.HoloPulse {
		s.Every("holo-pulse", HoloPulsePeriod, func() {
			e.state.Phase = (e.state.Phase + 1) % 100
		})
	}
	if p.FlickerThreshold > 0 {
		s.Every("flicker", FlickerPeriod, func() {
			e.state.Flicker = s.Rand().Float64() > p.FlickerThreshold
		})
	}
	if g := p.Glitch; g != nil {
		period := g.Interval + Between(s.Rand(), 0, g.Jitter)
		s.Every("glitch", period, e.tickGlitch)
	}
	if sh := p.Shake; sh != nil {
		s.Every("shake", sh.Interval, e.tickShake)
	}
	if tw := p.Typewriter; tw != nil {
		if tw.Steps <= 0 {
			e.state.Typed = true
		} else {
			e.typing = s.Every("typewriter", tw.Duration/time.Duration(tw.Steps), e.tickTypewriter)
		}
	}
	if p.Clock {
		e.state.Timestamp = util.Timestamp(s.WallNow())
		s.Every("clock", ClockPeriod, func() {
			e.state.Timestamp = util.Timestamp(s.WallNow())
		})
	}
	return e
}

// State returns a copy of the current state.
func (e *Effects) State() State { return e.state }

// Severity returns the tier the channels are currently tuned to.
func (e *Effects) Severity() severity.Severity { return e.sev }

// BlinkPeriod returns the active blink period, or zero when not blinking.
func (e *Effects) BlinkPeriod() time.Duration {
	if !e.blink.Active() {
		return 0
	}
	return e.blink.Period()
}

// SetSeverity retunes severity-dependent channels. The blink channel is
// rescheduled immediately when its period changes.
func (e *Effects) SetSeverity(s severity.Severity) {
	if s == e.sev {
		return
	}
	e.sev = s
	e.scheduleBlink()
}

// SetRemaining replaces the countdown value, restarting the countdown if
// it had already stopped at zero.
func (e *Effects) SetRemaining(n int) {
	e.state.Remaining = max(n, 0)
	if e.profile.Countdown && e.state.Remaining > 0 && !e.countdown.Active() {
		e.countdown = e.s.Every("countdown", CountdownPeriod, e.tickCountdown)
	}
	e.reclassify()
}

func (e *Effects) reclassify() {
	if e.classify != nil {
		e.SetSeverity(e.classify(e.state))
	}
}

func (e *Effects) scheduleBlink() {
	period := e.profile.Blink.At(e.sev)
	switch {
	case period <= 0:
		e.blink.Stop()
		e.blink = nil
		e.state.Blink = false
	case e.blink.Active():
		if e.blink.Period() != period {
			e.blink.Reset(period)
		}
	default:
		e.blink = e.s.Every("blink", period, func() {
			e.state.Blink = !e.state.Blink
		})
	}
}

func (e *Effects) tickCountdown() {
	if e.state.Remaining > 0 {
		e.state.Remaining--
	}
	if e.state.Remaining == 0 {
		e.countdown.Stop()
	}
	e.reclassify()
}

func (e *Effects) tickGlitch() {
	g := e.profile.Glitch
	if e.state.Glitch {
		return
	}
	r := e.s.Rand()
	if r.Float64() >= g.Probability.At(e.sev) {
		return
	}
	e.state.Glitch = true
	if g.MaxOffset > 0 {
		e.state.GlitchOffset = int(r.Float64()*float64(2*g.MaxOffset+1)) - g.MaxOffset
	}
	e.s.After("glitch-end", Between(r, g.MinActive, g.MaxActive), func() {
		e.state.Glitch = false
		e.state.GlitchOffset = 0
	})
}

func (e *Effects) tickShake() {
	sh := e.profile.Shake
	if e.state.Shake {
		return
	}
	p := sh.Probability.At(e.sev)
	if p <= 0 || e.s.Rand().Float64() >= p {
		return
	}
	e.state.Shake = true
	e.s.After("shake-end", sh.Duration, func() {
		e.state.Shake = false
	})
}

func (e *Effects) tickTypewriter() {
	tw := e.profile.Typewriter
	e.state.Revealed++
	if e.state.Revealed >= tw.Steps {
		e.state.Revealed = tw.Steps
		e.state.Typed = true
		e.typing.Stop()
	}
}
