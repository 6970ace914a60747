// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles resolves the look of every widget element for a theme and
// severity tier.
//
// # Themes
//
// Six cosmetic themes are supported: classic, neon, retro, holo, military and
// minimal. A theme carries no behavior beyond the styles it resolves to.
// Unknown theme names fall back to classic.
//
// # Resolution
//
// Resolve(theme, severity, element) returns an immutable Descriptor. The
// lookup is a table keyed by theme and then element; every cell in the
// table is populated, and elements the table does not know fall back to the
// theme's plain text style.
//
//	d := styles.Resolve(styles.Retro, severity.Critical, styles.Time)
//	out := d.Style(term).Render(d.Apply("00:09"))
//
// # Terminal
//
// Terminal wraps a lipgloss renderer and the detected color profile so that
// descriptor colors degrade on 256 and 16 color terminals.
//
// # Color Ramps
//
//   - classic: red shades darkening with danger
//   - neon: cyan when stable, pink through hot red as danger rises
//   - retro: phosphor green, red only when critical
//   - holo: blue interpolated toward red by tier
//   - military: olive green, amber, red
//   - minimal: gray, yellow, orange, red
package styles
