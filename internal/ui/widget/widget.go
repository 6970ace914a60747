// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package widget runs one composed widget inside a Bubble Tea program.
//
// Each Widget owns a private effects.Scheduler. Only one tea.Tick is in
// flight per widget: it targets the scheduler's next deadline and carries
// the widget ID and a generation number. Rescheduling or unmounting bumps
// the generation, so late ticks are recognised and dropped.
package widget

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/laststand-tui/internal/effects"
	"github.com/jeranaias/laststand-tui/internal/logging"
	"github.com/jeranaias/laststand-tui/internal/severity"
	"github.com/jeranaias/laststand-tui/internal/ui/components"
	"github.com/jeranaias/laststand-tui/internal/ui/styles"
)

// ErrRemountRequired is returned by SetInput when the kind or theme
// changes. Those pick a different effect profile and need a new widget.
var ErrRemountRequired = errors.New("kind or theme change requires remount")

// Phase is the widget lifecycle state.
type Phase int

const (
	Mounting Phase = iota
	Active
	Unmounted
)

func (p Phase) String() string {
	switch p {
	case Mounting:
		return "mounting"
	case Active:
		return "active"
	case Unmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}

// TickMsg wakes a widget when its next effect deadline is reached.
type TickMsg struct {
	ID   uuid.UUID
	Gen  uint64
	Time time.Time
}

// Option configures a Widget.
type Option func(*Widget)

// WithClock replaces time.Now. Tests use it to pin the scheduler epoch.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// WithRand injects the random source for glitch, flicker and shake.
func WithRand(r effects.Rand) Option {
	return func(w *Widget) { w.rand = r }
}

// WithTerminal sets the render target.
func WithTerminal(t *styles.Terminal) Option {
	return func(w *Widget) { w.term = t }
}

// WithWidth fixes the frame width instead of following the layout mode.
func WithWidth(width int) Option {
	return func(w *Widget) { w.width = width }
}

// Widget is a Bubble Tea model for one widget instance.
type Widget struct {
	id    uuid.UUID
	in    components.Input
	phase Phase
	gen   uint64

	sched *effects.Scheduler
	fx    *effects.Effects

	term  *styles.Terminal
	width int
	now   func() time.Time
	rand  effects.Rand
}

// New creates an unmounted widget for in.
func New(in components.Input, opts ...Option) *Widget {
	w := &Widget{
		id:  uuid.New(),
		in:  in.Normalize(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.term == nil {
		w.term = styles.NewTerminal()
	}
	return w
}

// ID returns the instance ID carried by this widget's ticks.
func (w *Widget) ID() uuid.UUID { return w.id }

// Phase returns the lifecycle state.
func (w *Widget) Phase() Phase { return w.phase }

// Input returns the normalized input.
func (w *Widget) Input() components.Input { return w.in }

// Terminal returns the render target.
func (w *Widget) Terminal() *styles.Terminal { return w.term }

// State returns the current effect state.
func (w *Widget) State() effects.State {
	if w.fx == nil {
		return components.InitialState(w.in)
	}
	return w.fx.State()
}

// Severity returns the current tier.
func (w *Widget) Severity() severity.Severity {
	_, s := components.Measure(w.in, w.State())
	return s
}

// BlinkPeriod returns the active blink period, zero when not blinking.
func (w *Widget) BlinkPeriod() time.Duration {
	if w.fx == nil {
		return 0
	}
	return w.fx.BlinkPeriod()
}

// Pending returns the number of live effect timers.
func (w *Widget) Pending() int {
	if w.sched == nil {
		return 0
	}
	return w.sched.Pending()
}

// Init mounts the widget.
func (w *Widget) Init() tea.Cmd {
	return w.Mount()
}

// Mount starts the effect channels and returns the first tick. Mounting
// twice is a no-op, and an unmounted widget never remounts.
func (w *Widget) Mount() tea.Cmd {
	if w.phase != Mounting {
		return nil
	}

	opts := []effects.Option{effects.WithEpoch(w.now())}
	if w.rand != nil {
		opts = append(opts, effects.WithRand(w.rand))
	}
	w.sched = effects.New(opts...)
	w.fx = effects.Start(
		w.sched,
		components.ProfileFor(w.in),
		components.InitialState(w.in),
		w.classify,
	)
	w.phase = Active

	logging.Event("WIDGET_MOUNT",
		"id", w.id,
		"kind", w.in.Kind,
		"theme", w.in.Theme,
		"severity", w.fx.Severity(),
		"timers", w.sched.Pending())
	return w.schedule()
}

// classify reads w.in on every call so SetInput changes take effect.
func (w *Widget) classify(st effects.State) severity.Severity {
	_, s := components.Measure(w.in, st)
	return s
}

// Unmount cancels every effect timer. Ticks already in flight are dropped
// when they arrive.
func (w *Widget) Unmount() {
	if w.phase == Unmounted {
		return
	}
	prev := w.phase
	w.phase = Unmounted
	w.gen++
	if prev != Active {
		return
	}
	w.sched.Close()
	logging.Event("WIDGET_UNMOUNT",
		"id", w.id,
		"kind", w.in.Kind,
		"fired", w.sched.Fired())
}

// SetInput replaces the widget's values. Time-driven widgets restart their
// countdown from the new remaining time when it changes.
func (w *Widget) SetInput(in components.Input) (tea.Cmd, error) {
	in = in.Normalize()
	if in.Kind != w.in.Kind || in.Theme != w.in.Theme {
		return nil, ErrRemountRequired
	}
	prevRemaining := w.in.Remaining
	w.in = in
	if w.phase != Active {
		return nil, nil
	}

	before := w.fx.Severity()
	if in.Kind.TimeDriven() && in.Remaining != prevRemaining {
		w.fx.SetRemaining(in.Remaining)
	} else {
		w.fx.SetSeverity(w.classify(w.fx.State()))
	}
	w.logSeverity(before)
	return w.schedule(), nil
}

// SetRemaining restarts a time-driven widget's countdown from n seconds.
func (w *Widget) SetRemaining(n int) tea.Cmd {
	w.in.Remaining = max(n, 0)
	if w.phase != Active || !w.in.Kind.TimeDriven() {
		return nil
	}
	before := w.fx.Severity()
	w.fx.SetRemaining(w.in.Remaining)
	w.logSeverity(before)
	return w.schedule()
}

// Update handles ticks and resizes.
func (w *Widget) Update(msg tea.Msg) (*Widget, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.ID != w.id || msg.Gen != w.gen || w.phase != Active {
			logging.Debug("WIDGET_TICK_DROPPED",
				"id", msg.ID,
				"gen", msg.Gen,
				"phase", w.phase)
			return w, nil
		}
		before := w.fx.Severity()
		w.sched.AdvanceWall(msg.Time)
		w.logSeverity(before)
		return w, w.schedule()

	case tea.WindowSizeMsg:
		w.term.SetSize(msg.Width, msg.Height)
	}
	return w, nil
}

func (w *Widget) logSeverity(before severity.Severity) {
	if after := w.fx.Severity(); after != before {
		logging.Event("WIDGET_SEVERITY",
			"id", w.id,
			"from", before,
			"to", after)
	}
}

// schedule issues the tick for the next deadline. Any tick issued earlier
// becomes stale.
func (w *Widget) schedule() tea.Cmd {
	w.gen++
	next, ok := w.sched.NextWall()
	if !ok {
		return nil
	}
	d := max(next.Sub(w.now()), 0)
	id, gen := w.id, w.gen
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Gen: gen, Time: t}
	})
}

// Frame composes the current frame.
func (w *Widget) Frame() components.Frame {
	return components.Compose(w.in, w.State())
}

// FrameWidth is the width View renders at.
func (w *Widget) FrameWidth() int {
	if w.width > 0 {
		return w.width
	}
	return w.term.ContentWidth()
}

// View renders the widget. Unmounted widgets render nothing.
func (w *Widget) View() string {
	if w.phase == Unmounted {
		return ""
	}
	return components.Render(w.Frame(), w.term, w.FrameWidth())
}

// Still renders the current frame settled for static output: one-shot
// reveals are complete and transient effects are off.
func (w *Widget) Still() string {
	if w.phase == Unmounted {
		return ""
	}
	st := w.State()
	st.Typed = true
	st.Blink = false
	st.Glitch = false
	st.GlitchOffset = 0
	st.Flicker = false
	st.Shake = false
	return components.Render(components.Compose(w.in, st), w.term, w.FrameWidth())
}

// Gen returns the generation of the tick currently in flight.
func (w *Widget) Gen() uint64 { return w.gen }
