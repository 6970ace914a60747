// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging routes the standard logger to a file while the terminal UI
// owns stdout, and formats records as "EVENT | key=value ...".
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelPriority = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

var (
	mu       sync.RWMutex
	minLevel = LevelInfo
)

// Prefix is written in front of every record by Setup.
const Prefix = "laststand "

// DefaultPath returns ~/.laststand/laststand.log, or "" if the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".laststand", "laststand.log")
}

// Setup points the standard logger at path. An empty path discards all
// output. The returned closer must be closed on exit.
func Setup(path string, debug bool) (io.Closer, error) {
	if debug {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelInfo)
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, Prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) {
	if _, ok := levelPriority[l]; !ok {
		l = LevelInfo
	}
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

// CurrentLevel returns the minimum level that is written.
func CurrentLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return minLevel
}

// Enabled reports whether records at l are written.
func Enabled(l Level) bool {
	return levelPriority[l] >= levelPriority[CurrentLevel()]
}

// Event logs an info record.
func Event(name string, kv ...any) { write(LevelInfo, name, kv) }

// Debug logs a debug record. Dropped unless debug logging is on.
func Debug(name string, kv ...any) { write(LevelDebug, name, kv) }

// Warn logs a warning record.
func Warn(name string, kv ...any) { write(LevelWarn, name, kv) }

// Error logs an error record.
func Error(name string, kv ...any) { write(LevelError, name, kv) }

func write(l Level, name string, kv []any) {
	if !Enabled(l) {
		return
	}
	log.Print(Format(l, name, kv...))
}

// Format builds a record line. Keys and values alternate in kv; a trailing
// key without a value is written as key=(missing).
func Format(l Level, name string, kv ...any) string {
	var b strings.Builder
	b.WriteString(name)
	if l != LevelInfo {
		b.WriteString(" | level=")
		b.WriteString(strings.ToLower(string(l)))
	}
	for i := 0; i < len(kv); i += 2 {
		if i == 0 && l == LevelInfo {
			b.WriteString(" | ")
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v=", kv[i])
		if i+1 < len(kv) {
			fmt.Fprintf(&b, "%v", kv[i+1])
		} else {
			b.WriteString("(missing)")
		}
	}
	return b.String()
}
