// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for laststand.
//
// Files may be TOML, YAML or JSON; the extension picks the decoder. Values
// missing from a file keep their defaults.
//
// # Configuration Precedence
//
//   - Command line flags (applied by main)
//   - Environment variables (LASTSTAND_*), optionally from a .env file
//   - ~/.laststand/config.toml, config.yaml or config.json
//   - Built-in defaults
//
// # Example
//
//	[display]
//	theme = "retro"
//	type = "glitch"
//
//	[input]
//	time_remaining = 30
//	max_time = 90
//
//	[[thresholds.countdown]]
//	max = 10
//	tier = "critical"
//
// # Live Reload
//
// Watch follows a config file and emits a Reload after each change, which
// the menu applies to the running widget.
package config
