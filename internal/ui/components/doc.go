// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components composes last stand widgets from their input and effect
state, and renders them with Lip Gloss.

# Kinds

Four widget families share one composer:

  - Timer (Doom Timer) counts down from a remaining time.
  - Reaper (Reaper Approach) shows a supplied percentage closing in.
  - Glitch (Glitch Effect) counts down while corrupting its own display.
  - GameOver (Game Over) shows health as lives and ends in a final warning.

# Composing

Compose turns an Input and an effects.State into a Frame: the measured
percentage and severity, the formatted readout, and an ordered list of
Parts. Every Part carries the styles.Descriptor it resolved for the frame's
theme and tier, so rendering needs nothing else:

	in := components.Input{Kind: components.Timer, Remaining: 45, MaxTime: 60}
	frame := components.Compose(in, components.InitialState(in))
	view := components.Render(frame, term, 60)

ProfileFor lists the effect channels an input's kind runs in its theme; the widget
package starts them on a scheduler.

# Parts

  - Heading, TimeDisplay, Banner, Footer: single styled lines
  - ProgressBar: bubbles/progress with theme glyphs
  - StatusBox: bordered box with word-wrapped lines
  - LivesRow: full and empty life glyphs
  - Diagnostics: terminal-style log lines
  - Scanline: retro sweep line
*/
package components
