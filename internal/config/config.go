// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/laststand-tui/internal/logging"
	"github.com/jeranaias/laststand-tui/internal/severity"
	"github.com/jeranaias/laststand-tui/internal/ui/components"
	"github.com/jeranaias/laststand-tui/internal/ui/styles"
	"github.com/jeranaias/laststand-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// CurrentVersion is written to new config files.
const CurrentVersion = "1"

// MaxLives bounds input.total_lives.
const MaxLives = 20

// Config represents the complete laststand configuration.
type Config struct {
	Version string `toml:"version" json:"version" yaml:"version"`

	Display    DisplayConfig    `toml:"display" json:"display" yaml:"display"`
	Input      InputConfig      `toml:"input" json:"input" yaml:"input"`
	Thresholds ThresholdsConfig `toml:"thresholds" json:"thresholds" yaml:"thresholds"`
	Log        LogConfig        `toml:"log" json:"log" yaml:"log"`

	// source is the file the config was read from, empty for defaults.
	source string
}

// DisplayConfig selects what is shown.
type DisplayConfig struct {
	Theme        string `toml:"theme" json:"theme" yaml:"theme"`
	Type         string `toml:"type" json:"type" yaml:"type"`
	ShowSelector bool   `toml:"show_selector" json:"show_selector" yaml:"show_selector"`
	// Width fixes the frame width. Zero follows the terminal.
	Width int `toml:"width" json:"width" yaml:"width"`
}

// InputConfig holds the values the widget starts from.
type InputConfig struct {
	TimeRemaining    int     `toml:"time_remaining" json:"time_remaining" yaml:"time_remaining"`
	MaxTime          int     `toml:"max_time" json:"max_time" yaml:"max_time"`
	PercentRemaining float64 `toml:"percent_remaining" json:"percent_remaining" yaml:"percent_remaining"`
	TotalLives       int     `toml:"total_lives" json:"total_lives" yaml:"total_lives"`
}

// ThresholdsConfig overrides the severity tables per widget family.
type ThresholdsConfig struct {
	Countdown severity.Table `toml:"countdown" json:"countdown" yaml:"countdown"`
	Reaper    severity.Table `toml:"reaper" json:"reaper" yaml:"reaper"`
	GameOver  severity.Table `toml:"gameover" json:"gameover" yaml:"gameover"`
}

// LogConfig controls the log file. An empty path disables logging.
type LogConfig struct {
	Path  string `toml:"path" json:"path" yaml:"path"`
	Debug bool   `toml:"debug" json:"debug" yaml:"debug"`
}

// Default returns a Config with the stock values.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Display: DisplayConfig{
			Theme:        styles.DefaultTheme.String(),
			Type:         components.DefaultKind.String(),
			ShowSelector: true,
		},
		Input: InputConfig{
			TimeRemaining:    45,
			MaxTime:          60,
			PercentRemaining: 30,
			TotalLives:       components.DefaultTotalLives,
		},
		Thresholds: ThresholdsConfig{
			Countdown: severity.Countdown.Clone(),
			Reaper:    severity.Reaper.Clone(),
			GameOver:  severity.GameOver.Clone(),
		},
		Log: LogConfig{
			Path: logging.DefaultPath(),
		},
	}
}

// Source returns the file this config was loaded from, or "".
func (c *Config) Source() string { return c.source }

// WidgetInput converts the config into widget input. Unknown theme and type
// names fall back to the defaults.
func (c *Config) WidgetInput() components.Input {
	return components.Input{
		Kind:       components.ParseKind(c.Display.Type),
		Theme:      styles.ParseTheme(c.Display.Theme),
		Remaining:  c.Input.TimeRemaining,
		MaxTime:    c.Input.MaxTime,
		Percent:    c.Input.PercentRemaining,
		TotalLives: c.Input.TotalLives,
		Tables: components.Tables{
			Countdown: c.Thresholds.Countdown,
			Reaper:    c.Thresholds.Reaper,
			GameOver:  c.Thresholds.GameOver,
		},
	}.Normalize()
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the laststand configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".laststand"), nil
}

// Candidates returns the config files Load tries, in order.
func Candidates() ([]string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.json"),
	}, nil
}

// DefaultPath returns the path of the TOML config file.
func DefaultPath() (string, error) {
	paths, err := Candidates()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// Format is a config file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "toml"
	}
}

// FormatOf picks the encoding from the file extension. Anything that is not
// .json, .yaml or .yml is read as TOML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads the first config file found in ConfigDir, or returns defaults
// when there is none. Environment overrides are applied last. Invalid
// fields are reset to their defaults and logged; only unreadable or
// undecodable files are errors.
func Load() (*Config, error) {
	paths, err := Candidates()
	if err == nil {
		for _, path := range paths {
			if _, statErr := os.Stat(path); statErr == nil {
				return loadRepaired(path)
			}
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	repair(cfg)
	return cfg, nil
}

// loadRepaired reads path like LoadFromPath, but invalid fields fall back
// to their defaults instead of failing the whole file.
func loadRepaired(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Decode(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	cfg.source = path
	cfg.ApplyEnvOverrides()
	repair(cfg)
	return cfg, nil
}

func repair(cfg *Config) {
	fillDefaults(cfg)
	for _, e := range cfg.Repair() {
		logging.Warn("CONFIG_FIELD_RESET", "field", e.Field, "error", e.Message)
	}
}

// LoadFromPath loads configuration from a specific file. Keys missing from
// the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Decode(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	cfg.source = path

	cfg.ApplyEnvOverrides()
	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses data on top of the defaults without validating it.
func Decode(data []byte, f Format) (*Config, error) {
	cfg := Default()
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f, err)
	}
	return cfg, nil
}

func finish(cfg *Config) error {
	fillDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// fillDefaults fills in zero values that have no meaning of their own.
// log.path is left alone since empty disables logging.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	// Display. Unknown names fall back to the default theme and type.
	if strings.TrimSpace(cfg.Display.Theme) == "" {
		cfg.Display.Theme = defaults.Display.Theme
	} else if _, err := styles.LookupTheme(cfg.Display.Theme); err != nil {
		cfg.Display.Theme = styles.ParseTheme(cfg.Display.Theme).String()
	}
	if strings.TrimSpace(cfg.Display.Type) == "" {
		cfg.Display.Type = defaults.Display.Type
	} else if _, err := components.LookupKind(cfg.Display.Type); err != nil {
		cfg.Display.Type = components.ParseKind(cfg.Display.Type).String()
	}

	// Input
	if cfg.Input.MaxTime == 0 {
		cfg.Input.MaxTime = defaults.Input.MaxTime
	}
	if cfg.Input.TotalLives == 0 {
		cfg.Input.TotalLives = defaults.Input.TotalLives
	}

	// Thresholds
	if len(cfg.Thresholds.Countdown) == 0 {
		cfg.Thresholds.Countdown = defaults.Thresholds.Countdown
	}
	if len(cfg.Thresholds.Reaper) == 0 {
		cfg.Thresholds.Reaper = defaults.Thresholds.Reaper
	}
	if len(cfg.Thresholds.GameOver) == 0 {
		cfg.Thresholds.GameOver = defaults.Thresholds.GameOver
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Encode renders cfg in format f.
func Encode(cfg *Config, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		fmt.Fprintln(&buf, "# laststand configuration file")
		fmt.Fprintln(&buf, "# Generated by laststand - edit with care")
		fmt.Fprintln(&buf)
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// Save writes cfg to path atomically with 0600 permissions. The encoding
// follows the file extension.
func Save(cfg *Config, path string) error {
	data, err := Encode(cfg, FormatOf(path))
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field and returns ValidateErrors listing all
// problems, or nil. Theme and type names are not checked: unknown names
// fall back to the defaults when the widget input is built.
func (c *Config) Validate() error {
	if errs := c.check(false); len(errs) > 0 {
		return errs
	}
	return nil
}

// Repair resets every invalid field to its default and returns the
// problems it fixed. Valid fields are kept.
func (c *Config) Repair() ValidateErrors {
	return c.check(true)
}

func (c *Config) check(repair bool) ValidateErrors {
	defaults := Default()
	var errs ValidateErrors
	bad := func(field, format string, args ...any) bool {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
		return repair
	}

	if c.Display.Width != 0 && c.Display.Width < components.MinWidth &&
		bad("display.width", "must be 0 or at least %d, got %d", components.MinWidth, c.Display.Width) {
		c.Display.Width = defaults.Display.Width
	}

	if c.Input.TimeRemaining < 0 &&
		bad("input.time_remaining", "must not be negative, got %d", c.Input.TimeRemaining) {
		c.Input.TimeRemaining = defaults.Input.TimeRemaining
	}
	if c.Input.MaxTime <= 0 &&
		bad("input.max_time", "must be positive, got %d", c.Input.MaxTime) {
		c.Input.MaxTime = defaults.Input.MaxTime
	}
	if p := c.Input.PercentRemaining; (math.IsNaN(p) || p < 0 || p > 100) &&
		bad("input.percent_remaining", "must be between 0 and 100, got %v", p) {
		c.Input.PercentRemaining = defaults.Input.PercentRemaining
	}
	if (c.Input.TotalLives < 1 || c.Input.TotalLives > MaxLives) &&
		bad("input.total_lives", "must be between 1 and %d, got %d", MaxLives, c.Input.TotalLives) {
		c.Input.TotalLives = defaults.Input.TotalLives
	}

	tables := []struct {
		field    string
		table    *severity.Table
		fallback severity.Table
	}{
		{"thresholds.countdown", &c.Thresholds.Countdown, defaults.Thresholds.Countdown},
		{"thresholds.reaper", &c.Thresholds.Reaper, defaults.Thresholds.Reaper},
		{"thresholds.gameover", &c.Thresholds.GameOver, defaults.Thresholds.GameOver},
	}
	for _, tt := range tables {
		if err := tt.table.Validate(); err != nil && bad(tt.field, "%v", err) {
			*tt.table = tt.fallback
		}
	}
	return errs
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides.
//
//   - LASTSTAND_THEME: overrides display.theme
//   - LASTSTAND_TYPE: overrides display.type
//   - LASTSTAND_TIME: overrides input.time_remaining
//   - LASTSTAND_MAX_TIME: overrides input.max_time
//   - LASTSTAND_PERCENT: overrides input.percent_remaining
//   - LASTSTAND_LOG: overrides log.path ("off" disables logging)
//   - LASTSTAND_DEBUG: overrides log.debug
//
// Numbers that fail to parse are logged and ignored.
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("LASTSTAND_THEME"); theme != "" {
		c.Display.Theme = theme
	}
	if typ := os.Getenv("LASTSTAND_TYPE"); typ != "" {
		c.Display.Type = typ
	}
	envInt("LASTSTAND_TIME", &c.Input.TimeRemaining)
	envInt("LASTSTAND_MAX_TIME", &c.Input.MaxTime)
	if v := os.Getenv("LASTSTAND_PERCENT"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			c.Input.PercentRemaining = p
		} else {
			logging.Warn("CONFIG_ENV_IGNORED", "var", "LASTSTAND_PERCENT", "value", v)
		}
	}
	if path, ok := os.LookupEnv("LASTSTAND_LOG"); ok {
		if strings.EqualFold(path, "off") {
			path = ""
		}
		c.Log.Path = path
	}
	if debug := os.Getenv("LASTSTAND_DEBUG"); debug != "" {
		c.Log.Debug = debug == "1" || strings.ToLower(debug) == "true"
	}
}

func envInt(name string, dst *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logging.Warn("CONFIG_ENV_IGNORED", "var", name, "value", v)
		return
	}
	*dst = n
}

// =============================================================================
// COPY AND DEBUG
// =============================================================================

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Thresholds.Countdown = c.Thresholds.Countdown.Clone()
	clone.Thresholds.Reaper = c.Thresholds.Reaper.Clone()
	clone.Thresholds.GameOver = c.Thresholds.GameOver.Clone()
	return &clone
}

// String returns the config as indented JSON for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			logging.Warn("CONFIG_LOAD_FAILED", "error", err, "fallback", "defaults")
			cfg = Default()
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
