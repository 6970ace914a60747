// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

// =============================================================================
// GLYPH SETS
// =============================================================================

// Glyphs are the characters a theme draws its primitives with.
type Glyphs struct {
	BarFull   rune
	BarEmpty  rune
	LifeFull  string
	LifeEmpty string
	Marker    string // threat position on reversed bars
	Icon      string // status icon
	Bullet    string // diagnostic line prefix
	Scanline  rune
}

var glyphSets = map[Theme]Glyphs{
	Classic:  {BarFull: '█', BarEmpty: '░', LifeFull: "♥", LifeEmpty: "♡", Marker: "☠", Icon: "⚠", Bullet: "•", Scanline: '─'},
	Neon:     {BarFull: '▰', BarEmpty: '▱', LifeFull: "◆", LifeEmpty: "◇", Marker: "◈", Icon: "⚡", Bullet: "»", Scanline: '═'},
	Retro:    {BarFull: '#', BarEmpty: '.', LifeFull: "<3", LifeEmpty: "--", Marker: "X", Icon: "!", Bullet: ">", Scanline: '-'},
	Holo:     {BarFull: '━', BarEmpty: '┄', LifeFull: "●", LifeEmpty: "○", Marker: "◉", Icon: "◬", Bullet: "·", Scanline: '┈'},
	Military: {BarFull: '■', BarEmpty: '□', LifeFull: "▲", LifeEmpty: "△", Marker: "✛", Icon: "⊕", Bullet: "-", Scanline: '─'},
	Minimal:  {BarFull: '─', BarEmpty: ' ', LifeFull: "■", LifeEmpty: "□", Marker: "|", Icon: "·", Bullet: "-", Scanline: ' '},
}

// GlyphsFor returns the glyph set of t, falling back to DefaultTheme.
func GlyphsFor(t Theme) Glyphs {
	if g, ok := glyphSets[t]; ok {
		return g
	}
	return glyphSets[DefaultTheme]
}
