// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/laststand-tui/internal/logging"
)

// Theme is a named visual styling scheme.
type Theme int

const (
	Classic Theme = iota
	Neon
	Retro
	Holo
	Military
	Minimal
)

// DefaultTheme is used whenever a theme name cannot be recognized.
const DefaultTheme = Classic

// Themes lists every theme in menu order.
var Themes = []Theme{Classic, Neon, Retro, Holo, Military, Minimal}

// ErrUnknownTheme is returned by LookupTheme for unrecognized names.
var ErrUnknownTheme = errors.New("unknown theme")

var themeNames = map[Theme]string{
	Classic:  "classic",
	Neon:     "neon",
	Retro:    "retro",
	Holo:     "holo",
	Military: "military",
	Minimal:  "minimal",
}

var themeLabels = map[Theme]string{
	Classic:  "Classic",
	Neon:     "Neon",
	Retro:    "Retro",
	Holo:     "Holographic",
	Military: "Military",
	Minimal:  "Minimal",
}

// String returns the config name of the theme.
func (t Theme) String() string {
	if n, ok := themeNames[t]; ok {
		return n
	}
	return themeNames[DefaultTheme]
}

// Label returns the display name used in menus.
func (t Theme) Label() string {
	if l, ok := themeLabels[t]; ok {
		return l
	}
	return themeLabels[DefaultTheme]
}

// Valid reports whether t is one of the defined themes.
func (t Theme) Valid() bool {
	_, ok := themeNames[t]
	return ok
}

// Next returns the theme after t in menu order, wrapping around.
func (t Theme) Next() Theme {
	return Themes[(t.index()+1)%len(Themes)]
}

// Prev returns the theme before t in menu order, wrapping around.
func (t Theme) Prev() Theme {
	return Themes[(t.index()+len(Themes)-1)%len(Themes)]
}

func (t Theme) index() int {
	for i, th := range Themes {
		if th == t {
			return i
		}
	}
	return 0
}

// LookupTheme parses a theme name strictly.
func LookupTheme(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "holographic" {
		key = "holo"
	}
	for t, n := range themeNames {
		if n == key {
			return t, nil
		}
	}
	return DefaultTheme, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// ParseTheme parses a theme name, falling back to DefaultTheme.
func ParseTheme(name string) Theme {
	t, err := LookupTheme(name)
	if err != nil && name != "" {
		logging.Warn("THEME_FALLBACK", "name", name, "theme", t)
	}
	return t
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names are
// rejected so config validation can report them.
func (t *Theme) UnmarshalText(b []byte) error {
	v, err := LookupTheme(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
