// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		kv    []any
		want  string
	}{
		{"bare", LevelInfo, nil, "WIDGET_MOUNT"},
		{"info", LevelInfo, []any{"id", "abc", "kind", "timer"}, "WIDGET_MOUNT | id=abc kind=timer"},
		{"warn", LevelWarn, []any{"theme", "plaid"}, "WIDGET_MOUNT | level=warn theme=plaid"},
		{"missing value", LevelInfo, []any{"id"}, "WIDGET_MOUNT | id=(missing)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.level, "WIDGET_MOUNT", tt.kv...))
		})
	}
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags, prevPrefix := log.Writer(), log.Flags(), log.Prefix()
	log.SetOutput(&buf)
	log.SetFlags(0)
	log.SetPrefix("")
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		log.SetPrefix(prevPrefix)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLog(t)

	SetLevel(LevelInfo)
	Debug("TICK", "n", 1)
	assert.Empty(t, buf.String())

	Event("MOUNT", "n", 1)
	assert.Contains(t, buf.String(), "MOUNT | n=1")

	buf.Reset()
	SetLevel(LevelDebug)
	Debug("TICK", "n", 2)
	assert.Contains(t, buf.String(), "TICK | level=debug n=2")

	buf.Reset()
	SetLevel(LevelError)
	Warn("SKIPPED")
	assert.Empty(t, buf.String())
	Error("FAILED", "err", "boom")
	assert.Contains(t, buf.String(), "FAILED | level=error err=boom")
}

func TestSetLevelUnknownFallsBackToInfo(t *testing.T) {
	captureLog(t)
	SetLevel(Level("LOUD"))
	assert.Equal(t, LevelInfo, CurrentLevel())
	assert.False(t, Enabled(LevelDebug))
	assert.True(t, Enabled(LevelWarn))
}

func TestSetupWritesToFile(t *testing.T) {
	captureLog(t)
	path := filepath.Join(t.TempDir(), "logs", "laststand.log")

	closer, err := Setup(path, true)
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, CurrentLevel())

	Event("STARTUP", "version", "test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), Prefix)
	assert.Contains(t, string(data), "STARTUP | version=test")
}

func TestSetupEmptyPathDiscards(t *testing.T) {
	captureLog(t)
	closer, err := Setup("", false)
	require.NoError(t, err)
	Event("IGNORED")
	assert.NoError(t, closer.Close())
}
