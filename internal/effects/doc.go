// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package effects drives the time-based visual toggles of one widget.
//
// # Scheduler
//
// A Scheduler is a single-threaded timer queue running on virtual time.
// Nothing fires on its own: the owner advances the clock (from a Bubble Tea
// tick, or directly in tests) and every due callback runs in deadline order
// on the caller's goroutine. Each widget instance owns exactly one
// Scheduler, and Close cancels every timer it ever created.
//
//	s := effects.New(effects.WithRand(rng))
//	fx := effects.Start(s, profile, effects.State{Remaining: 45}, classify)
//	s.Advance(time.Second) // countdown ticks once
//	s.Close()              // nothing fires after this
//
// # Channels
//
// Effects wires a Profile onto a Scheduler as independent channels:
// countdown, blink, scanline, holo pulse, glitch, flicker, shake,
// typewriter and clock. The blink period follows the severity tier and is
// rescheduled whenever the tier changes.
//
// # Randomness
//
// Stochastic channels draw from an injected Rand so tests can script the
// sequence of draws.
package effects
