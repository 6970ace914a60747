// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used by stochastic channels.
type Rand interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// NewRand returns a freshly seeded source.
func NewRand() Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// SeededRand returns a deterministic source for replays and tests.
func SeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence replays a fixed list of draws, cycling when exhausted.
type Sequence struct {
	Values []float64
	next   int
}

// Float64 implements Rand.
func (q *Sequence) Float64() float64 {
	if len(q.Values) == 0 {
		return 0
	}
	v := q.Values[q.next%len(q.Values)]
	q.next++
	return v
}

// Draws returns how many values have been consumed.
func (q *Sequence) Draws() int { return q.next }

// Between returns a duration in [lo, hi) drawn from r.
func Between(r Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(r.Float64()*float64(hi-lo))
}
