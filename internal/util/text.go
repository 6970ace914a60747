// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the display width of s in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth cuts s to at most width cells, appending "..." when it
// had to cut and there is room for the ellipsis.
func TruncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// Center pads s with spaces on both sides to fill width cells.
// Extra padding goes on the right. Strings wider than width are truncated.
func Center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return TruncateWidth(s, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Spaced inserts n spaces between every rune of s, used for letter-spaced
// titles. n <= 0 returns s unchanged.
func Spaced(s string, n int) string {
	if n <= 0 || s == "" {
		return s
	}
	gap := strings.Repeat(" ", n)
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(runes)*n)
	for i, r := range runes {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Displace shifts s right by offset cells, or left by trimming leading
// runes when offset is negative. Used for jitter effects.
func Displace(s string, offset int) string {
	switch {
	case offset > 0:
		return strings.Repeat(" ", offset) + s
	case offset < 0:
		runes := []rune(s)
		if -offset >= len(runes) {
			return ""
		}
		return string(runes[-offset:])
	}
	return s
}
