// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package severity classifies a remaining-percentage value into a danger tier.
//
// Widget families use different threshold tables, so classification always
// takes the table as an argument. Tables are ordered lists; the first entry
// whose ceiling contains the (clamped) percentage wins.
package severity

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Severity is a discrete danger tier. Higher values are more dangerous.
type Severity int

const (
	Stable Severity = iota
	Caution
	Warning
	Critical
)

// All lists every tier from least to most dangerous.
var All = []Severity{Stable, Caution, Warning, Critical}

// String returns the lowercase tier name.
func (s Severity) String() string {
	switch s {
	case Caution:
		return "caution"
	case Warning:
		return "warning"
	case Critical:
		return "critical"
	default:
		return "stable"
	}
}

// Label returns the uppercase status label shown in widgets.
func (s Severity) Label() string {
	switch s {
	case Caution:
		return "CAUTION"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	default:
		return "STABLE"
	}
}

// AtLeast reports whether s is as dangerous as other or more.
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}

// Parse converts a tier name to a Severity.
func Parse(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stable":
		return Stable, nil
	case "caution":
		return Caution, nil
	case "warning":
		return Warning, nil
	case "critical":
		return Critical, nil
	}
	return Stable, fmt.Errorf("unknown severity %q", name)
}

// MarshalText implements encoding.TextMarshaler so config files can name tiers.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Threshold maps percentages at or below Max to Tier.
type Threshold struct {
	Max  float64  `toml:"max" json:"max" yaml:"max"`
	Tier Severity `toml:"tier" json:"tier" yaml:"tier"`
}

// Table is an ordered threshold list, tightest ceiling first.
type Table []Threshold

// Built-in tables.
var (
	// Countdown is used by timer and glitch widgets.
	Countdown = Table{{15, Critical}, {30, Warning}, {50, Caution}}
	// Reaper has no caution tier.
	Reaper = Table{{10, Critical}, {25, Warning}}
	// GameOver is the health table; 20 and below is already a warning.
	GameOver = Table{{5, Critical}, {20, Warning}}
)

// ErrInvalidTable is wrapped by every Table.Validate failure.
var ErrInvalidTable = errors.New("invalid threshold table")

// Validate checks that ceilings ascend within [0,100] and tiers descend.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidTable)
	}
	for i, th := range t {
		if math.IsNaN(th.Max) || th.Max < 0 || th.Max > 100 {
			return fmt.Errorf("%w: entry %d max %v outside [0,100]", ErrInvalidTable, i, th.Max)
		}
		if th.Tier < Stable || th.Tier > Critical {
			return fmt.Errorf("%w: entry %d has unknown tier %d", ErrInvalidTable, i, th.Tier)
		}
		if i == 0 {
			continue
		}
		prev := t[i-1]
		if th.Max <= prev.Max {
			return fmt.Errorf("%w: entry %d max %v not above %v", ErrInvalidTable, i, th.Max, prev.Max)
		}
		if th.Tier >= prev.Tier {
			return fmt.Errorf("%w: entry %d tier %s not below %s", ErrInvalidTable, i, th.Tier, prev.Tier)
		}
	}
	return nil
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// Clamp bounds p to [0,100]. NaN is treated as 0.
func Clamp(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Percentage returns remaining as a clamped share of max.
// A non-positive max yields 0 instead of dividing by zero.
func Percentage(remaining, max int) float64 {
	if max <= 0 {
		return 0
	}
	return Clamp(float64(remaining) / float64(max) * 100)
}

// Classify returns the tier for p under t. p is clamped first.
func Classify(p float64, t Table) Severity {
	p = Clamp(p)
	for _, th := range t {
		if p <= th.Max {
			return th.Tier
		}
	}
	return Stable
}
