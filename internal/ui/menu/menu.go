// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package menu is the interactive shell around a single widget. It cycles
// themes and visualization types, nudges the widget's input, and applies
// config file reloads. Every theme or type switch unmounts the running
// widget and mounts a fresh one.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/laststand-tui/internal/config"
	"github.com/jeranaias/laststand-tui/internal/logging"
	"github.com/jeranaias/laststand-tui/internal/severity"
	"github.com/jeranaias/laststand-tui/internal/ui/components"
	"github.com/jeranaias/laststand-tui/internal/ui/styles"
	"github.com/jeranaias/laststand-tui/internal/ui/widget"
)

const (
	// TimeStep is how many seconds one adjust key press adds or removes.
	TimeStep = 5
	// PercentStep is how many percentage points one adjust key press moves.
	PercentStep = 5.0
)

// ReloadMsg carries a config file reload into the update loop.
type ReloadMsg config.Reload

type reloadsClosedMsg struct{}

// Option configures a Model.
type Option func(*Model)

// WithTerminal sets the render target for the menu and its widgets.
func WithTerminal(t *styles.Terminal) Option {
	return func(m *Model) { m.term = t }
}

// WithWidgetOptions passes options to every widget the menu mounts.
func WithWidgetOptions(opts ...widget.Option) Option {
	return func(m *Model) { m.widgetOpts = append(m.widgetOpts, opts...) }
}

// WithReloads makes the menu apply every config reload received on ch.
func WithReloads(ch <-chan config.Reload) Option {
	return func(m *Model) { m.reloads = ch }
}

// Model is the menu's Bubble Tea model.
type Model struct {
	keys KeyMap
	help help.Model
	term *styles.Terminal

	in           components.Input
	initial      components.Input
	showSelector bool

	widget     *widget.Widget
	widgetOpts []widget.Option
	reloads    <-chan config.Reload

	notice   string
	quitting bool
}

// New creates a menu showing in. The type selector is only active when
// showSelector is set.
func New(in components.Input, showSelector bool, opts ...Option) *Model {
	m := &Model{
		keys: DefaultKeyMap(),
		help: help.New(),
		in:   in.Normalize(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.term == nil {
		m.term = styles.NewTerminal()
	}
	m.initial = m.in
	m.setSelector(showSelector)
	m.widget = m.newWidget()
	return m
}

// Input returns the input the current widget was mounted with, including
// adjustments.
func (m *Model) Input() components.Input { return m.in }

// Widget returns the mounted widget.
func (m *Model) Widget() *widget.Widget { return m.widget }

// ShowSelector reports whether type switching is enabled.
func (m *Model) ShowSelector() bool { return m.showSelector }

// Notice returns the last status notice.
func (m *Model) Notice() string { return m.notice }

// Quitting reports whether the user asked to quit.
func (m *Model) Quitting() bool { return m.quitting }

func (m *Model) setSelector(on bool) {
	m.showSelector = on
	m.keys.NextType.SetEnabled(on)
}

func (m *Model) newWidget() *widget.Widget {
	opts := append([]widget.Option{widget.WithTerminal(m.term)}, m.widgetOpts...)
	m.keys.adjustHelp(m.in.Kind.TimeDriven())
	return widget.New(m.in, opts...)
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init mounts the first widget and starts listening for reloads.
func (m *Model) Init() tea.Cmd {
	logging.Event("MENU_START",
		"kind", m.in.Kind,
		"theme", m.in.Theme,
		"selector", m.showSelector)
	return tea.Batch(m.widget.Init(), m.waitForReload())
}

// Update handles keys, resizes, widget ticks and config reloads.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.widget, cmd = m.widget.Update(msg)
		return m, cmd

	case widget.TickMsg:
		var cmd tea.Cmd
		m.widget, cmd = m.widget.Update(msg)
		return m, cmd

	case ReloadMsg:
		return m, tea.Batch(m.applyReload(config.Reload(msg)), m.waitForReload())

	case reloadsClosedMsg:
		m.reloads = nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.widget.Unmount()
		m.quitting = true
		logging.Event("MENU_QUIT", "kind", m.in.Kind, "theme", m.in.Theme)
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextTheme):
		m.in.Theme = m.in.Theme.Next()
		return m.remount()

	case key.Matches(msg, m.keys.PrevTheme):
		m.in.Theme = m.in.Theme.Prev()
		return m.remount()

	case key.Matches(msg, m.keys.NextType):
		m.in.Kind = m.in.Kind.Next()
		return m.remount()

	case key.Matches(msg, m.keys.Increase):
		return m.adjust(1)

	case key.Matches(msg, m.keys.Decrease):
		return m.adjust(-1)

	case key.Matches(msg, m.keys.Reset):
		m.in = m.initial
		m.notice = ""
		return m.remount()
	}
	return nil
}

// adjust moves the widget's value one step. Time-driven widgets step from
// the live countdown rather than the value they were mounted with.
func (m *Model) adjust(dir int) tea.Cmd {
	if m.in.Kind.TimeDriven() {
		live := m.widget.State().Remaining
		m.in.Remaining = min(max(live+dir*TimeStep, 0), max(m.in.MaxTime, 0))
		return m.widget.SetRemaining(m.in.Remaining)
	}

	m.in.Percent = severity.Clamp(m.in.Percent + float64(dir)*PercentStep)
	cmd, err := m.widget.SetInput(m.in)
	if err != nil {
		return m.remount()
	}
	return cmd
}

// remount replaces the running widget with one built from m.in.
func (m *Model) remount() tea.Cmd {
	old := m.widget
	old.Unmount()
	m.widget = m.newWidget()
	logging.Event("MENU_SWITCH",
		"from", old.ID(),
		"to", m.widget.ID(),
		"kind", m.in.Kind,
		"theme", m.in.Theme)
	return m.widget.Init()
}

func (m *Model) applyReload(r config.Reload) tea.Cmd {
	if r.Err != nil {
		m.notice = "config reload failed: " + r.Err.Error()
		logging.Warn("MENU_RELOAD_REJECTED", "error", r.Err)
		return nil
	}

	m.in = r.Config.WidgetInput()
	m.initial = m.in
	m.setSelector(r.Config.Display.ShowSelector)
	m.notice = "config reloaded"
	return m.remount()
}

func (m *Model) waitForReload() tea.Cmd {
	ch := m.reloads
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return reloadsClosedMsg{}
		}
		return ReloadMsg(r)
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the selector bar, the widget, and the help line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.widget.View())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.muted().Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) header() string {
	accent := m.term.NewStyle().
		Foreground(lipgloss.Color(styles.AccentColor(m.in.Theme, severity.Stable))).
		Bold(true)

	items := []string{
		m.muted().Render("THEME ") + accent.Render(fmt.Sprintf("‹ %s ›", m.in.Theme.Label())),
	}
	if m.showSelector {
		items = append(items,
			m.muted().Render("TYPE ")+accent.Render(fmt.Sprintf("‹ %s ›", m.in.Kind.Label())))
	}
	return strings.Join(items, "   ")
}

func (m *Model) muted() lipgloss.Style {
	return m.term.NewStyle().Foreground(lipgloss.Color(styles.Gray6))
}
