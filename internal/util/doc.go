// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util holds small helpers shared by the widget packages.
//
// # Time Formatting
//
//   - FormatClock: seconds as "MM:SS"
//   - FormatMission: seconds as "T-MM:SS"
//   - Timestamp: wall clock as "HH:MM:SSZ"
//   - FormatPercent: "NN.N%"
//
// # Text Layout
//
// Width-aware helpers built on go-runewidth so that box-drawing glyphs and
// wide runes line up inside bordered widgets.
//
// # Files
//
// WriteFileAtomic writes through a temp file and rename so a crash never
// leaves a half-written config behind.
package util
