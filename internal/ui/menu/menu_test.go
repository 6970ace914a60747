// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

import (
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/laststand-tui/internal/config"
	"github.com/jeranaias/laststand-tui/internal/effects"
	"github.com/jeranaias/laststand-tui/internal/ui/components"
	"github.com/jeranaias/laststand-tui/internal/ui/styles"
	"github.com/jeranaias/laststand-tui/internal/ui/widget"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestMenu(in components.Input, selector bool, opts ...Option) *Model {
	base := []Option{
		WithTerminal(styles.NewTerminalWithProfile(io.Discard, termenv.Ascii, true)),
		WithWidgetOptions(
			widget.WithClock(func() time.Time { return epoch }),
			widget.WithRand(effects.SeededRand(3)),
			widget.WithWidth(60),
		),
	}
	m := New(in, selector, append(base, opts...)...)
	m.Init()
	return m
}

func timerInput() components.Input {
	return components.Input{Kind: components.Timer, Theme: styles.Classic, Remaining: 45, MaxTime: 60, Percent: 30}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	require.Same(t, m, next)
	return cmd
}

// =============================================================================
// SWITCHING
// =============================================================================

func TestMenu_ThemeCyclingRemounts(t *testing.T) {
	m := newTestMenu(timerInput(), false)
	first := m.Widget()
	require.Equal(t, widget.Active, first.Phase())

	cmd := send(t, m, runes("t"))
	assert.NotNil(t, cmd)
	assert.Equal(t, styles.Neon, m.Input().Theme)
	assert.Equal(t, widget.Unmounted, first.Phase())
	assert.Equal(t, widget.Active, m.Widget().Phase())
	assert.NotEqual(t, first.ID(), m.Widget().ID())

	send(t, m, runes("T"))
	send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, styles.Minimal, m.Input().Theme, "prev wraps around")
}

func TestMenu_TypeSelectorDisabled(t *testing.T) {
	m := newTestMenu(timerInput(), false)
	id := m.Widget().ID()

	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, cmd)
	assert.Equal(t, components.Timer, m.Input().Kind)
	assert.Equal(t, id, m.Widget().ID())
	assert.NotContains(t, m.View(), "TYPE")
}

func TestMenu_TypeSelectorEnabled(t *testing.T) {
	m := newTestMenu(timerInput(), true)
	assert.Contains(t, m.View(), "Doom Timer")

	send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, components.Reaper, m.Input().Kind)
	assert.Equal(t, components.Reaper, m.Widget().Input().Kind)
	assert.Contains(t, m.View(), "Reaper Approach")

	for range 3 {
		send(t, m, runes("v"))
	}
	assert.Equal(t, components.Timer, m.Input().Kind, "type wraps around")
}

func TestMenu_StaleTickAfterSwitch(t *testing.T) {
	m := newTestMenu(timerInput(), false)
	old := m.Widget()
	stale := widget.TickMsg{ID: old.ID(), Gen: old.Gen(), Time: epoch.Add(5 * time.Second)}

	send(t, m, runes("t"))
	cmd := send(t, m, stale)
	assert.Nil(t, cmd)
	assert.Equal(t, 45, m.Widget().State().Remaining)
	assert.Equal(t, 45, old.State().Remaining)
}

func TestMenu_ForwardsTicks(t *testing.T) {
	m := newTestMenu(timerInput(), false)
	w := m.Widget()

	cmd := send(t, m, widget.TickMsg{ID: w.ID(), Gen: w.Gen(), Time: epoch.Add(time.Second)})
	assert.NotNil(t, cmd)
	assert.Equal(t, 44, w.State().Remaining)
}

// =============================================================================
// ADJUSTMENT
// =============================================================================

func TestMenu_AdjustTime(t *testing.T) {
	m := newTestMenu(timerInput(), false)
	id := m.Widget().ID()

	send(t, m, runes("+"))
	assert.Equal(t, 50, m.Input().Remaining)
	assert.Equal(t, 50, m.Widget().State().Remaining)
	assert.Equal(t, id, m.Widget().ID(), "adjusting keeps the widget mounted")

	for range 5 {
		send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 60, m.Input().Remaining, "capped at max time")

	for range 20 {
		send(t, m, runes("-"))
	}
	assert.Equal(t, 0, m.Input().Remaining)
}

func TestMenu_AdjustStepsFromLiveCountdown(t *testing.T) {
	m := newTestMenu(timerInput(), false)
	w := m.Widget()
	for i := 1; i <= 3; i++ {
		send(t, m, widget.TickMsg{ID: w.ID(), Gen: w.Gen(), Time: epoch.Add(time.Duration(i) * time.Second)})
	}
	require.Equal(t, 42, w.State().Remaining)

	send(t, m, runes("+"))
	assert.Equal(t, 47, w.State().Remaining)
}

func TestMenu_AdjustPercent(t *testing.T) {
	in := components.Input{Kind: components.GameOver, Theme: styles.Retro, Percent: 8}
	m := newTestMenu(in, false)

	send(t, m, runes("-"))
	assert.Equal(t, 3.0, m.Input().Percent)
	assert.True(t, m.Widget().Frame().NearDeath)

	send(t, m, runes("-"))
	assert.Equal(t, 0.0, m.Input().Percent, "clamped at zero")

	send(t, m, runes("+"))
	assert.Equal(t, 5.0, m.Input().Percent)
}

func TestMenu_Reset(t *testing.T) {
	m := newTestMenu(timerInput(), true)
	send(t, m, runes("t"))
	send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	send(t, m, runes("+"))

	send(t, m, runes("r"))
	assert.Equal(t, timerInput().Normalize(), m.Input())
	assert.Equal(t, widget.Active, m.Widget().Phase())
}

// =============================================================================
// RELOAD
// =============================================================================

func TestMenu_ApplyReload(t *testing.T) {
	m := newTestMenu(timerInput(), true)
	old := m.Widget()

	cfg := config.Default()
	cfg.Display.Theme = "military"
	cfg.Display.Type = "glitch"
	cfg.Display.ShowSelector = false
	cfg.Input.TimeRemaining = 20

	send(t, m, ReloadMsg{Config: cfg})
	assert.Equal(t, "config reloaded", m.Notice())
	assert.Equal(t, styles.Military, m.Input().Theme)
	assert.Equal(t, components.Glitch, m.Input().Kind)
	assert.False(t, m.ShowSelector())
	assert.Equal(t, widget.Unmounted, old.Phase())
	assert.Equal(t, 20, m.Widget().State().Remaining)

	// Reset goes back to the reloaded values.
	send(t, m, runes("+"))
	send(t, m, runes("r"))
	assert.Equal(t, 20, m.Input().Remaining)
}

func TestMenu_RejectedReloadKeepsWidget(t *testing.T) {
	m := newTestMenu(timerInput(), false)
	id := m.Widget().ID()

	send(t, m, ReloadMsg{Err: errors.New("input.max_time: must be positive, got -5")})
	assert.Contains(t, m.Notice(), "config reload failed")
	assert.Equal(t, id, m.Widget().ID())
	assert.Contains(t, m.View(), "config reload failed")
}

func TestMenu_WaitForReload(t *testing.T) {
	ch := make(chan config.Reload, 1)
	m := newTestMenu(timerInput(), false, WithReloads(ch))

	ch <- config.Reload{Config: config.Default()}
	msg := m.waitForReload()()
	require.IsType(t, ReloadMsg{}, msg)

	close(ch)
	msg = m.waitForReload()()
	require.IsType(t, reloadsClosedMsg{}, msg)
	send(t, m, msg)
	assert.Nil(t, m.waitForReload())
}

// =============================================================================
// VIEW AND QUIT
// =============================================================================

func TestMenu_View(t *testing.T) {
	m := newTestMenu(timerInput(), false)
	view := m.View()
	assert.Contains(t, view, "THEME")
	assert.Contains(t, view, "Classic")
	assert.Contains(t, view, "00:45")
	assert.Contains(t, view, "quit")

	send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "reset")
}

func TestMenu_AdjustHelpFollowsKind(t *testing.T) {
	m := newTestMenu(components.Input{Kind: components.Reaper, Percent: 40}, false)
	assert.Contains(t, m.View(), "more health")
}

func TestMenu_Quit(t *testing.T) {
	m := newTestMenu(timerInput(), false)
	w := m.Widget()

	cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Equal(t, widget.Unmounted, w.Phase())
	assert.Empty(t, m.View())
}

func TestMenu_WindowSize(t *testing.T) {
	m := newTestMenu(timerInput(), false)
	send(t, m, tea.WindowSizeMsg{Width: 44, Height: 30})
	assert.Equal(t, 44, m.help.Width)
	assert.Equal(t, styles.LayoutNarrow, m.Widget().Terminal().LayoutMode())
}
