// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/laststand-tui/internal/config"
	"github.com/jeranaias/laststand-tui/internal/ui/styles"
)

func parse(t *testing.T, args ...string) (*CLI, string, *bytes.Buffer) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(config.ResetGlobalForTesting)

	var cli CLI
	var buf bytes.Buffer
	cli.Globals.out = &buf
	parser, err := newParser(&cli)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx.Command(), &buf
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(config.ResetGlobalForTesting)

	var cli CLI
	var buf bytes.Buffer
	cli.Globals.out = &buf
	parser, err := newParser(&cli)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	err = ctx.Run()
	return buf.String(), err
}

// =============================================================================
// PARSING
// =============================================================================

func TestShowIsDefaultCommand(t *testing.T) {
	cli, cmd, _ := parse(t, "--theme", "retro", "--time", "20", "-p", "12.5")
	assert.Equal(t, "show", cmd)
	assert.Equal(t, "retro", cli.Show.Theme)
	require.NotNil(t, cli.Show.Time)
	assert.Equal(t, 20, *cli.Show.Time)
	require.NotNil(t, cli.Show.Percent)
	assert.Equal(t, 12.5, *cli.Show.Percent)
	assert.Nil(t, cli.Show.MaxTime, "unset flags stay nil")
	assert.True(t, cli.Show.Watch)
}

func TestShowNegatableFlags(t *testing.T) {
	cli, _, _ := parse(t, "show", "--no-selector", "--no-watch")
	require.NotNil(t, cli.Show.Selector)
	assert.False(t, *cli.Show.Selector)
	assert.False(t, cli.Show.Watch)
}

func TestGlobalFlags(t *testing.T) {
	cli, _, _ := parse(t, "--log-file", "off", "--debug", "version")
	require.NotNil(t, cli.LogFile)
	assert.Equal(t, "off", *cli.LogFile)
	assert.True(t, cli.Debug)
}

func TestShowApply(t *testing.T) {
	cli, _, _ := parse(t, "--type", "gameover", "--lives", "3", "--width", "50")
	cfg := config.Default()
	cli.Show.apply(cfg)

	assert.Equal(t, "gameover", cfg.Display.Type)
	assert.Equal(t, 3, cfg.Input.TotalLives)
	assert.Equal(t, 50, cfg.Display.Width)
	assert.Equal(t, "classic", cfg.Display.Theme, "flags not given keep config values")
	assert.Equal(t, 45, cfg.Input.TimeRemaining)
}

func TestGlobalsLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  theme: neon\n"), 0600))

	cli, _, _ := parse(t, "--config", path, "--log-file", "OFF", "--debug")
	cfg, err := cli.Globals.load()
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Display.Theme)
	assert.Empty(t, cfg.Log.Path)
	assert.True(t, cfg.Log.Debug)
	assert.Same(t, cfg, config.Global())

	cli, _, _ = parse(t, "--config", filepath.Join(dir, "missing.toml"))
	_, err = cli.Globals.load()
	assert.Error(t, err)
}

// =============================================================================
// COMMANDS
// =============================================================================

func TestShowOnce(t *testing.T) {
	out, err := run(t, "--once", "--log-file", "off", "--theme", "military", "--width", "60")
	require.NoError(t, err)
	assert.Contains(t, strings.ReplaceAll(out, " ", ""), "00:45")
}

func TestShowFallsBackOnUnknownNames(t *testing.T) {
	out, err := run(t, "--once", "--log-file", "off", "--theme", "plaid", "--type", "hourglass", "--width", "40")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	squashed := strings.ReplaceAll(out, " ", "")
	assert.Contains(t, squashed, "LASTSTAND", "classic timer title")
	assert.Contains(t, squashed, "00:45")
}

func TestShowRejectsInvalidFlags(t *testing.T) {
	_, err := run(t, "--once", "--log-file", "off", "--percent", "140")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input.percent_remaining")

	_, err = run(t, "--once", "--log-file", "off", "--width", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.width")
}

func TestGlobalsLoadKeepsValidFileFields(t *testing.T) {
	cli, _, _ := parse(t, "--log-file", "off")
	home := os.Getenv("HOME")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".laststand"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".laststand", "config.toml"),
		[]byte("[display]\ntheme = \"retro\"\n"), 0600))
	t.Setenv("LASTSTAND_TYPE", "nope")

	cfg, err := cli.Globals.load()
	require.NoError(t, err)
	assert.Equal(t, "retro", cfg.Display.Theme)
	assert.Equal(t, "timer", cfg.Display.Type)
}

func TestRenderOnce(t *testing.T) {
	cfg := config.Default()
	cfg.Display.Type = "gameover"
	cfg.Input.PercentRemaining = 4
	cfg.Display.Width = 60

	term := styles.NewTerminalWithProfile(io.Discard, termenv.Ascii, true)
	out := strings.ReplaceAll(renderOnce(cfg, term), " ", "")
	assert.Contains(t, out, "FINALWARNING")
	assert.Contains(t, out, "GAMEOVER")
}

func TestRenderOnceTypesTitle(t *testing.T) {
	cfg := config.Default()
	cfg.Display.Type = "gameover"
	cfg.Input.PercentRemaining = 50
	cfg.Display.Width = 50

	term := styles.NewTerminalWithProfile(io.Discard, termenv.Ascii, true)
	out := strings.ReplaceAll(renderOnce(cfg, term), " ", "")
	assert.Contains(t, out, "GAMEOVER")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laststand.yaml")

	out, err := run(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Display.Theme)

	_, err = run(t, "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "config", "init", "--force", path)
	assert.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "config", "show", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"display"`)

	out, err = run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[display]")
}

func TestConfigPath(t *testing.T) {
	out, err := run(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(".laststand", "config.toml"))
	assert.Contains(t, out, filepath.Join(".laststand", "config.json"))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "laststand version dev")
}
