// laststand - themeable last stand countdown widgets for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	xterm "golang.org/x/term"

	"github.com/jeranaias/laststand-tui/internal/config"
	"github.com/jeranaias/laststand-tui/internal/logging"
	"github.com/jeranaias/laststand-tui/internal/ui/menu"
	"github.com/jeranaias/laststand-tui/internal/ui/styles"
	"github.com/jeranaias/laststand-tui/internal/ui/widget"
)

// Version information (set at build time)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	// .env values feed the LASTSTAND_* overrides.
	_ = godotenv.Load()

	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Run shows the widget, either interactively or as a single frame.
func (s *ShowCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	s.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	closer, err := logging.Setup(cfg.Log.Path, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()
	logging.Event("STARTUP",
		"version", version,
		"config", cfg.Source(),
		"once", s.Once)

	if s.Once {
		term := styles.NewTerminal()
		if cols, rows, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil {
			term.SetSize(cols, rows)
		}
		_, err := fmt.Fprintln(g.stdout(), renderOnce(cfg, term))
		return err
	}
	return runInteractive(cfg, s.Watch)
}

// renderOnce mounts a widget, renders its settled first frame, and
// unmounts it.
func renderOnce(cfg *config.Config, term *styles.Terminal) string {
	opts := []widget.Option{widget.WithTerminal(term)}
	if cfg.Display.Width > 0 {
		opts = append(opts, widget.WithWidth(cfg.Display.Width))
	}
	w := widget.New(cfg.WidgetInput(), opts...)
	w.Mount()
	defer w.Unmount()
	return w.Still()
}

func runInteractive(cfg *config.Config, watch bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opts []menu.Option
	if cfg.Display.Width > 0 {
		opts = append(opts, menu.WithWidgetOptions(widget.WithWidth(cfg.Display.Width)))
	}
	if watch && cfg.Source() != "" {
		reloads, err := config.Watch(ctx, cfg.Source())
		if err != nil {
			logging.Warn("CONFIG_WATCH_FAILED", "path", cfg.Source(), "error", err)
		} else {
			opts = append(opts, menu.WithReloads(reloads))
		}
	}

	m := menu.New(cfg.WidgetInput(), cfg.Display.ShowSelector, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	logging.Event("SHUTDOWN")
	return nil
}

// Run writes a default config file.
func (c *ConfigInitCmd) Run(g *Globals) error {
	path := c.Path
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	if !c.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}
	if err := config.Save(config.Default(), path); err != nil {
		return err
	}
	fmt.Fprintf(g.stdout(), "Wrote %s\n", path)
	return nil
}

// Run prints the effective configuration.
func (c *ConfigShowCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	format := config.FormatTOML
	switch c.Format {
	case "yaml":
		format = config.FormatYAML
	case "json":
		format = config.FormatJSON
	}
	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = g.stdout().Write(data)
	return err
}

// Run lists the config search path, marking files that exist.
func (c *ConfigPathCmd) Run(g *Globals) error {
	paths, err := config.Candidates()
	if err != nil {
		return err
	}
	out := g.stdout()
	if g.ConfigFile != "" {
		paths = append([]string{g.ConfigFile}, paths...)
	}
	for _, p := range paths {
		mark := " "
		if _, err := os.Stat(p); err == nil {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %s\n", mark, p)
	}
	return nil
}

// Run prints the version.
func (VersionCmd) Run(g *Globals) error {
	return printVersion(g.stdout())
}

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "laststand version %s (commit: %s, built: %s)\n", version, gitCommit, buildDate)
	return err
}
