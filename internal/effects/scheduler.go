// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"container/heap"
	"time"
)

// MinPeriod is the shortest period a repeating timer may have.
const MinPeriod = time.Millisecond

// Timer is a handle to one scheduled callback.
type Timer struct {
	s      *Scheduler
	name   string
	period time.Duration // zero for one-shot timers
	due    time.Duration
	seq    uint64
	index  int // position in the queue, -1 when not queued
	fn     func()
}

// Name returns the channel name the timer was created with.
func (t *Timer) Name() string { return t.name }

// Period returns the repeat period, or zero for a one-shot timer.
func (t *Timer) Period() time.Duration { return t.period }

// Active reports whether the timer will fire again.
func (t *Timer) Active() bool { return t != nil && t.index >= 0 }

// Stop cancels the timer. Stopping twice is a no-op.
func (t *Timer) Stop() {
	if t == nil || t.index < 0 {
		return
	}
	heap.Remove(&t.s.queue, t.index)
}

// Reset changes the period of a repeating timer and restarts it from the
// scheduler's current time. It does nothing once the scheduler is closed.
func (t *Timer) Reset(period time.Duration) {
	if t == nil || t.s.closed {
		return
	}
	t.Stop()
	t.period = max(period, MinPeriod)
	t.s.push(t, t.s.now+t.period)
}

// Scheduler is a virtual-time timer queue owned by one widget instance.
// It is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	epoch  time.Time
	queue  timerQueue
	seq    uint64
	closed bool
	rand   Rand
	fired  uint64
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithRand injects the random source used by stochastic channels.
func WithRand(r Rand) Option {
	return func(s *Scheduler) {
		if r != nil {
			s.rand = r
		}
	}
}

// WithEpoch sets the wall-clock time that virtual time zero maps to.
func WithEpoch(t time.Time) Option {
	return func(s *Scheduler) { s.epoch = t }
}

// New creates an empty scheduler at virtual time zero.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{epoch: time.Now()}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = NewRand()
	}
	return s
}

// Every schedules fn to run every period, first after one period.
func (s *Scheduler) Every(name string, period time.Duration, fn func()) *Timer {
	period = max(period, MinPeriod)
	return s.add(name, period, period, fn)
}

// After schedules fn to run once after delay.
func (s *Scheduler) After(name string, delay time.Duration, fn func()) *Timer {
	return s.add(name, 0, max(delay, 0), fn)
}

func (s *Scheduler) add(name string, period, delay time.Duration, fn func()) *Timer {
	t := &Timer{s: s, name: name, period: period, fn: fn, index: -1}
	if s.closed {
		return t
	}
	s.push(t, s.now+delay)
	return t
}

func (s *Scheduler) push(t *Timer, due time.Duration) {
	s.seq++
	t.seq = s.seq
	t.due = due
	heap.Push(&s.queue, t)
}

// Advance moves virtual time forward by d.
func (s *Scheduler) Advance(d time.Duration) {
	s.AdvanceTo(s.now + d)
}

// AdvanceTo moves virtual time to target, running every callback due on
// the way in deadline order. Times in the past are ignored.
func (s *Scheduler) AdvanceTo(target time.Duration) {
	for !s.closed && len(s.queue) > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		s.now = next.due
		if next.period > 0 {
			s.push(next, next.due+next.period)
		}
		s.fired++
		next.fn()
	}
	if !s.closed && target > s.now {
		s.now = target
	}
}

// AdvanceWall advances to the virtual time matching wall-clock time t.
func (s *Scheduler) AdvanceWall(t time.Time) {
	s.AdvanceTo(t.Sub(s.epoch))
}

// NextDeadline returns the virtual time of the next due timer.
func (s *Scheduler) NextDeadline() (time.Duration, bool) {
	if s.closed || len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}

// NextWall returns the wall-clock time of the next due timer.
func (s *Scheduler) NextWall() (time.Time, bool) {
	d, ok := s.NextDeadline()
	if !ok {
		return time.Time{}, false
	}
	return s.epoch.Add(d), true
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration { return s.now }

// WallNow returns the wall-clock time matching the current virtual time.
func (s *Scheduler) WallNow() time.Time { return s.epoch.Add(s.now) }

// Rand returns the scheduler's random source.
func (s *Scheduler) Rand() Rand { return s.rand }

// Pending returns the number of queued timers.
func (s *Scheduler) Pending() int { return len(s.queue) }

// Fired returns how many callbacks have run.
func (s *Scheduler) Fired() uint64 { return s.fired }

// Close cancels every timer. Callbacks never run after Close returns, and
// timers created afterwards are inert.
func (s *Scheduler) Close() {
	if s.closed {
		return
	}
	s.closed = true
	// Every live timer is queued, so draining the queue disposes of all of
	// them, including the one whose callback may be running right now.
	for len(s.queue) > 0 {
		heap.Pop(&s.queue)
	}
}

// Closed reports whether Close has been called.
func (s *Scheduler) Closed() bool { return s.closed }

// =============================================================================
// TIMER QUEUE
// =============================================================================

// timerQueue is a min-heap on (due, seq).
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
