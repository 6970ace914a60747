// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// SCHEDULER TESTS
// =============================================================================

func TestScheduler_EveryFiresOnPeriod(t *testing.T) {
	s := New()
	count := 0
	s.Every("tick", 100*time.Millisecond, func() { count++ })

	s.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, count)

	s.Advance(time.Millisecond)
	assert.Equal(t, 1, count)

	s.Advance(time.Second)
	assert.Equal(t, 11, count)
	assert.Equal(t, 1100*time.Millisecond, s.Now())
}

func TestScheduler_AfterFiresOnce(t *testing.T) {
	s := New()
	count := 0
	tm := s.After("once", 250*time.Millisecond, func() { count++ })
	require.True(t, tm.Active())

	s.Advance(time.Second)
	assert.Equal(t, 1, count)
	assert.False(t, tm.Active())
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_DeadlineOrder(t *testing.T) {
	s := New()
	var order []string
	s.After("c", 30*time.Millisecond, func() { order = append(order, "c") })
	s.After("a", 10*time.Millisecond, func() { order = append(order, "a") })
	s.After("b", 20*time.Millisecond, func() { order = append(order, "b") })
	s.After("a2", 10*time.Millisecond, func() { order = append(order, "a2") })

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "a2", "b", "c"}, order)
}

func TestScheduler_CallbackSeesDueTime(t *testing.T) {
	s := New()
	var seen []time.Duration
	s.Every("tick", 300*time.Millisecond, func() { seen = append(seen, s.Now()) })
	s.Advance(time.Second)
	assert.Equal(t, []time.Duration{300 * time.Millisecond, 600 * time.Millisecond, 900 * time.Millisecond}, seen)
}

func TestScheduler_StopInsideCallback(t *testing.T) {
	s := New()
	count := 0
	var tm *Timer
	tm = s.Every("tick", 10*time.Millisecond, func() {
		count++
		if count == 3 {
			tm.Stop()
		}
	})
	s.Advance(time.Second)
	assert.Equal(t, 3, count)
	assert.False(t, tm.Active())
}

func TestScheduler_Reset(t *testing.T) {
	s := New()
	count := 0
	tm := s.Every("blink", 800*time.Millisecond, func() { count++ })

	s.Advance(500 * time.Millisecond)
	tm.Reset(300 * time.Millisecond)
	assert.Equal(t, 300*time.Millisecond, tm.Period())

	next, ok := s.NextDeadline()
	require.True(t, ok)
	assert.Equal(t, 800*time.Millisecond, next)

	s.Advance(600 * time.Millisecond)
	assert.Equal(t, 2, count)
}

func TestScheduler_PeriodFloor(t *testing.T) {
	s := New()
	tm := s.Every("zero", 0, func() {})
	assert.Equal(t, MinPeriod, tm.Period())
}

func TestScheduler_PastTargetIgnored(t *testing.T) {
	s := New()
	s.Advance(time.Second)
	s.AdvanceTo(500 * time.Millisecond)
	assert.Equal(t, time.Second, s.Now())
}

func TestScheduler_WallClock(t *testing.T) {
	epoch := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := New(WithEpoch(epoch))
	count := 0
	s.Every("tick", time.Second, func() { count++ })

	next, ok := s.NextWall()
	require.True(t, ok)
	assert.Equal(t, epoch.Add(time.Second), next)

	s.AdvanceWall(epoch.Add(3500 * time.Millisecond))
	assert.Equal(t, 3, count)
	assert.Equal(t, epoch.Add(3500*time.Millisecond), s.WallNow())
}

// =============================================================================
// DISPOSAL TESTS
// =============================================================================

func TestScheduler_CloseCancelsEverything(t *testing.T) {
	s := New()
	count := 0
	s.Every("a", 10*time.Millisecond, func() { count++ })
	s.Every("b", 20*time.Millisecond, func() { count++ })
	s.After("c", 5*time.Millisecond, func() { count++ })

	s.Close()
	assert.True(t, s.Closed())
	assert.Equal(t, 0, s.Pending())

	s.Advance(time.Minute)
	assert.Equal(t, 0, count)

	_, ok := s.NextDeadline()
	assert.False(t, ok)
}

func TestScheduler_CloseInsideCallback(t *testing.T) {
	s := New()
	count := 0
	s.Every("closer", 10*time.Millisecond, func() {
		count++
		s.Close()
	})
	s.Every("other", 10*time.Millisecond, func() { count++ })

	s.Advance(time.Second)
	assert.Equal(t, 1, count, "no callback may run after Close")
}

func TestScheduler_TimersAfterCloseAreInert(t *testing.T) {
	s := New()
	s.Close()
	s.Close()

	ran := false
	tm := s.Every("late", time.Millisecond, func() { ran = true })
	tm.Reset(time.Millisecond)
	s.Advance(time.Second)

	assert.False(t, ran)
	assert.False(t, tm.Active())
}

// =============================================================================
// RAND TESTS
// =============================================================================

func TestSequence(t *testing.T) {
	q := &Sequence{Values: []float64{0.1, 0.9}}
	assert.Equal(t, 0.1, q.Float64())
	assert.Equal(t, 0.9, q.Float64())
	assert.Equal(t, 0.1, q.Float64())
	assert.Equal(t, 3, q.Draws())
	assert.Equal(t, 0.0, (&Sequence{}).Float64())
}

func TestBetween(t *testing.T) {
	lo, hi := 100*time.Millisecond, 300*time.Millisecond
	assert.Equal(t, lo, Between(&Sequence{Values: []float64{0}}, lo, hi))
	assert.Equal(t, 200*time.Millisecond, Between(&Sequence{Values: []float64{0.5}}, lo, hi))
	assert.Equal(t, lo, Between(&Sequence{Values: []float64{0.5}}, lo, lo))

	r := SeededRand(7)
	for i := 0; i < 100; i++ {
		d := Between(r, lo, hi)
		assert.GreaterOrEqual(t, d, lo)
		assert.Less(t, d, hi)
	}
}

func TestSeededRandDeterministic(t *testing.T) {
	a, b := SeededRand(42), SeededRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
