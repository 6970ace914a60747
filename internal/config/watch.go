// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jeranaias/laststand-tui/internal/logging"
)

// WatchDebounce is how long a config file must be quiet before it is
// reloaded. Editors often write a file in several steps.
const WatchDebounce = 150 * time.Millisecond

// Reload is the outcome of reloading a watched config file.
type Reload struct {
	Config *Config
	Err    error
}

// Watch reloads path whenever it changes and sends the result on the
// returned channel. The parent directory is watched so that editors which
// replace the file by rename are seen too. The channel is closed once ctx
// is done.
func Watch(ctx context.Context, path string) (<-chan Reload, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Reload, 1)
	go watchLoop(ctx, w, abs, out)
	logging.Event("CONFIG_WATCH", "path", abs)
	return out, nil
}

func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, out chan<- Reload) {
	defer close(out)
	defer w.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(WatchDebounce)
			} else {
				timer.Reset(WatchDebounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logging.Warn("CONFIG_WATCH_ERROR", "path", path, "error", err)

		case <-fire:
			fire = nil
			cfg, err := LoadFromPath(path)
			if err != nil {
				logging.Warn("CONFIG_RELOAD_FAILED", "path", path, "error", err)
			} else {
				logging.Event("CONFIG_RELOADED", "path", path, "theme", cfg.Display.Theme, "type", cfg.Display.Type)
			}
			select {
			case out <- Reload{Config: cfg, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}
