// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jeranaias/laststand-tui/internal/config"
	"github.com/jeranaias/laststand-tui/internal/ui/components"
	"github.com/jeranaias/laststand-tui/internal/ui/styles"
)

// CLI defines the command-line interface.
type CLI struct {
	Globals

	Show    ShowCmd    `cmd:"" default:"withargs" help:"Show a last stand widget (default)"`
	Config  ConfigCmd  `cmd:"" help:"Manage the configuration file"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// Globals are flags shared by every command.
type Globals struct {
	ConfigFile string  `name:"config" short:"c" type:"path" placeholder:"PATH" help:"Config file (TOML, YAML or JSON)"`
	LogFile    *string `name:"log-file" placeholder:"PATH" help:"Log file path, \"off\" disables logging"`
	Debug      bool    `help:"Enable debug logging"`

	out io.Writer
}

func (g *Globals) stdout() io.Writer {
	if g.out == nil {
		return os.Stdout
	}
	return g.out
}

// load reads the config named by --config, or searches the default
// locations. Invalid fields of a default config fall back one by one; a
// default config that cannot be read at all is reported and replaced by
// defaults. A broken explicit config is an error.
func (g *Globals) load() (*config.Config, error) {
	var cfg *config.Config
	if g.ConfigFile != "" {
		var err error
		cfg, err = config.LoadFromPath(g.ConfigFile)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		cfg, err = config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = config.Default()
			cfg.ApplyEnvOverrides()
			for _, e := range cfg.Repair() {
				fmt.Fprintf(os.Stderr, "Warning: %v (using default)\n", e)
			}
		}
	}

	if g.LogFile != nil {
		path := *g.LogFile
		if strings.EqualFold(path, "off") {
			path = ""
		}
		cfg.Log.Path = path
	}
	if g.Debug {
		cfg.Log.Debug = true
	}
	config.SetGlobal(cfg)
	return cfg, nil
}

// ShowCmd runs the interactive widget menu.
type ShowCmd struct {
	Theme    string   `short:"t" placeholder:"NAME" help:"Theme: ${themes}"`
	Type     string   `name:"type" short:"k" placeholder:"NAME" help:"Visualization type: ${kinds}"`
	Time     *int     `placeholder:"SECONDS" help:"Seconds remaining (timer, glitch)"`
	MaxTime  *int     `name:"max-time" placeholder:"SECONDS" help:"Seconds the countdown started from"`
	Percent  *float64 `short:"p" placeholder:"0-100" help:"Percent remaining (reaper, gameover)"`
	Lives    *int     `placeholder:"N" help:"Lives on the game over screen"`
	Width    *int     `placeholder:"COLUMNS" help:"Frame width, 0 follows the terminal"`
	Selector *bool    `negatable:"" help:"Allow switching the visualization type"`
	Once     bool     `help:"Print a single frame and exit"`
	Watch    bool     `default:"true" negatable:"" help:"Reload the config file when it changes"`
}

// apply overlays the flags that were given onto cfg.
func (s *ShowCmd) apply(cfg *config.Config) {
	if s.Theme != "" {
		cfg.Display.Theme = s.Theme
	}
	if s.Type != "" {
		cfg.Display.Type = s.Type
	}
	if s.Time != nil {
		cfg.Input.TimeRemaining = *s.Time
	}
	if s.MaxTime != nil {
		cfg.Input.MaxTime = *s.MaxTime
	}
	if s.Percent != nil {
		cfg.Input.PercentRemaining = *s.Percent
	}
	if s.Lives != nil {
		cfg.Input.TotalLives = *s.Lives
	}
	if s.Width != nil {
		cfg.Display.Width = *s.Width
	}
	if s.Selector != nil {
		cfg.Display.ShowSelector = *s.Selector
	}
}

// ConfigCmd groups the config subcommands.
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a default config file"`
	Show ConfigShowCmd `cmd:"" help:"Print the effective configuration"`
	Path ConfigPathCmd `cmd:"" help:"List the config file search path"`
}

// ConfigInitCmd writes a default config file.
type ConfigInitCmd struct {
	Path  string `arg:"" optional:"" type:"path" help:"Destination (default ~/.laststand/config.toml)"`
	Force bool   `short:"f" help:"Overwrite an existing file"`
}

// ConfigShowCmd prints the effective configuration.
type ConfigShowCmd struct {
	Format string `short:"F" enum:"toml,yaml,json" default:"toml" help:"Output format: ${enum}"`
}

// ConfigPathCmd lists the files Load searches.
type ConfigPathCmd struct{}

// VersionCmd shows version information.
type VersionCmd struct{}

// kongVars returns variables interpolated into help text.
func kongVars() kong.Vars {
	themes := make([]string, len(styles.Themes))
	for i, t := range styles.Themes {
		themes[i] = t.String()
	}
	kinds := make([]string, len(components.Kinds))
	for i, k := range components.Kinds {
		kinds[i] = k.String()
	}
	return kong.Vars{
		"version": version,
		"themes":  strings.Join(themes, ", "),
		"kinds":   strings.Join(kinds, ", "),
	}
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("laststand"),
		kong.Description("Themeable last stand countdown widgets for the terminal."),
		kong.UsageOnError(),
		kongVars(),
		kong.Bind(&cli.Globals),
	)
}
