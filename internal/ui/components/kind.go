// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/laststand-tui/internal/logging"
	"github.com/jeranaias/laststand-tui/internal/severity"
)

// Kind selects which widget variant is composed.
type Kind int

const (
	Timer Kind = iota
	Reaper
	Glitch
	GameOver
)

// DefaultKind is used whenever a kind name cannot be recognized.
const DefaultKind = Timer

// Kinds lists every kind in menu order.
var Kinds = []Kind{Timer, Reaper, Glitch, GameOver}

// ErrUnknownKind is returned by LookupKind for unrecognized names.
var ErrUnknownKind = errors.New("unknown visualization type")

var kindNames = map[Kind]string{
	Timer:    "timer",
	Reaper:   "reaper",
	Glitch:   "glitch",
	GameOver: "gameover",
}

var kindLabels = map[Kind]string{
	Timer:    "Doom Timer",
	Reaper:   "Reaper Approach",
	Glitch:   "Glitch Effect",
	GameOver: "Game Over",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return kindNames[DefaultKind]
}

// Label returns the display name used in menus.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return kindLabels[DefaultKind]
}

// TimeDriven reports whether the kind counts down from seconds rather than
// showing a supplied percentage.
func (k Kind) TimeDriven() bool {
	return k == Timer || k == Glitch
}

// Next returns the kind after k in menu order, wrapping around.
func (k Kind) Next() Kind {
	for i, v := range Kinds {
		if v == k {
			return Kinds[(i+1)%len(Kinds)]
		}
	}
	return DefaultKind
}

// LookupKind parses a kind name strictly. "game-over" and "game_over" are
// accepted as spellings of gameover.
func LookupKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for k, n := range kindNames {
		if n == key {
			return k, nil
		}
	}
	return DefaultKind, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// ParseKind parses a kind name, falling back to DefaultKind.
func ParseKind(name string) Kind {
	k, err := LookupKind(name)
	if err != nil && name != "" {
		logging.Warn("KIND_FALLBACK", "name", name, "kind", k)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := LookupKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Tables holds the threshold table of each widget family.
type Tables struct {
	Countdown severity.Table
	Reaper    severity.Table
	GameOver  severity.Table
}

// DefaultTables returns copies of the built-in tables.
func DefaultTables() Tables {
	return Tables{
		Countdown: severity.Countdown.Clone(),
		Reaper:    severity.Reaper.Clone(),
		GameOver:  severity.GameOver.Clone(),
	}
}

// For returns the table used by kind k. Empty tables fall back to the
// built-in table of that family.
func (t Tables) For(k Kind) severity.Table {
	switch k {
	case Reaper:
		if len(t.Reaper) > 0 {
			return t.Reaper
		}
		return severity.Reaper
	case GameOver:
		if len(t.GameOver) > 0 {
			return t.GameOver
		}
		return severity.GameOver
	default:
		if len(t.Countdown) > 0 {
			return t.Countdown
		}
		return severity.Countdown
	}
}
