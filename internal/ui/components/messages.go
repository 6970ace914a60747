// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/jeranaias/laststand-tui/internal/severity"
	"github.com/jeranaias/laststand-tui/internal/ui/styles"
)

// =============================================================================
// TITLES
// =============================================================================

var titles = map[Kind]map[styles.Theme]string{
	Timer: {
		styles.Classic:  "LAST STAND",
		styles.Neon:     "COUNTDOWN",
		styles.Retro:    "SYSTEM COUNTDOWN",
		styles.Holo:     "SYSTEM TIMER",
		styles.Military: "TACTICAL COUNTDOWN",
		styles.Minimal:  "COUNTDOWN",
	},
	Reaper: {
		styles.Classic:  "THE REAPER APPROACHES",
		styles.Neon:     "ENTITY PROXIMITY ALERT",
		styles.Retro:    "HOSTILE DETECTED",
		styles.Holo:     "PROXIMITY WARNING",
		styles.Military: "THREAT ASSESSMENT",
		styles.Minimal:  "PROXIMITY ALERT",
	},
	Glitch: {
		styles.Classic:  "SYSTEM FAILURE",
		styles.Neon:     "SYSTEM CORRUPTION",
		styles.Retro:    "CRITICAL ERROR",
		styles.Holo:     "SYSTEM INTEGRITY BREACH",
		styles.Military: "SYSTEM MALFUNCTION",
		styles.Minimal:  "SYSTEM ERROR",
	},
}

// TitleFor returns the heading of kind k in theme t.
func TitleFor(k Kind, t styles.Theme) string {
	if k == GameOver {
		return gameOverTitle
	}
	byTheme, ok := titles[k]
	if !ok {
		byTheme = titles[DefaultKind]
	}
	if s, ok := byTheme[t]; ok {
		return s
	}
	return byTheme[styles.DefaultTheme]
}

// =============================================================================
// STATUS MESSAGES
// =============================================================================

// Tiered message tables, indexed by severity.
type messageTable [4]string

func (m messageTable) at(s severity.Severity) string {
	if s < severity.Stable || s > severity.Critical {
		s = severity.Stable
	}
	return m[s]
}

var statusMessages = map[Kind]messageTable{
	Timer: {
		"SYSTEM OPERATING WITHIN NORMAL PARAMETERS",
		"CAUTION: PERFORMANCE DEGRADATION DETECTED",
		"WARNING: SYSTEM STABILITY COMPROMISED",
		"CRITICAL SYSTEM FAILURE IMMINENT",
	},
	// The reaper table has no caution tier.
	Reaper: {
		"Threat detected at safe distance. Continuous monitoring in effect.",
		"Threat detected at safe distance. Continuous monitoring in effect.",
		"Threat approaching at accelerated pace. Defensive options limited.",
		"Threat has breached outer perimeter. Final defensive measures engaged.",
	},
	Glitch: {
		"DEGRADING",
		"UNSTABLE",
		"FAILING RAPIDLY",
		"IMMINENT COLLAPSE",
	},
	GameOver: {
		"PREPARE FOR FINAL STAND",
		"PREPARE FOR FINAL STAND",
		"SYSTEM FAILURE DETECTED",
		"CRITICAL FAILURE IMMINENT",
	},
}

// StatusMessage returns the status line of kind k at tier s.
func StatusMessage(k Kind, s severity.Severity) string {
	m, ok := statusMessages[k]
	if !ok {
		m = statusMessages[DefaultKind]
	}
	return m.at(s)
}

var reaperSubtitles = messageTable{
	"THREAT DETECTED",
	"THREAT DETECTED",
	"DANGER IMMINENT",
	"IMMINENT DEMISE",
}

// Glitch severity reads as a stabilization level.
var dangerLevels = messageTable{"STABLE", "MODERATE", "SEVERE", "CRITICAL"}

// diagnosticLog is a glitch variant's diagnostic copy. The original
// variants switch lines on their own percentage cuts rather than the
// severity table, so each log carries its cuts.
type diagnosticLog struct {
	Critical float64 // at or below: Lines[2]
	Warning  float64 // at or below: Lines[1]
	Lines    [3][]string
	// Tail is appended in the alarm bands; "{t}" becomes the remaining
	// seconds.
	Tail [3]string
}

func (d diagnosticLog) band(p float64) int {
	switch {
	case p <= d.Critical:
		return 2
	case p <= d.Warning:
		return 1
	}
	return 0
}

var baseDiagnostics = diagnosticLog{
	Critical: 15,
	Warning:  30,
	Lines: [3][]string{
		{
			"ALERT: Performance degradation detected",
			"WARNING: Unexpected behavior in subsystems",
			"RUNNING DIAGNOSTICS",
		},
		{
			"WARNING: System stability compromised",
			"ERROR: Resource allocation failure",
			"INITIATING RECOVERY PROCEDURES",
		},
		{
			"CRITICAL ERROR: Memory corruption detected in core systems",
			"FAILURE: Data integrity check failed",
			"EMERGENCY PROTOCOLS ACTIVATED",
		},
	},
}

var diagnosticLogs = map[styles.Theme]diagnosticLog{
	styles.Classic: {
		Critical: 20,
		Warning:  40,
		Lines:    baseDiagnostics.Lines,
	},
	styles.Retro: {
		Critical: 20,
		Warning:  40,
		Lines: [3][]string{
			{
				"ALERT: PERFORMANCE_DEGRADATION",
				"ERR_CODE: 0x8007000E - OUT_OF_MEMORY",
				"RUNNING_DIAGNOSTICS...",
			},
			{
				"WARNING: SYSTEM_INSTABILITY",
				"ERR_CODE: 0x80070057 - INVALID_PARAM",
				"ATTEMPTING_SYSTEM_RECOVERY...",
			},
			{
				"CRITICAL_FAILURE: MEMORY_CORRUPTION_DETECTED",
				"ERR_CODE: 0xC0000374 - HEAP_CORRUPTION",
				"INITIATING_EMERGENCY_PROTOCOLS...",
			},
		},
	},
	styles.Military: {
		Critical: 15,
		Warning:  30,
		Lines: [3][]string{
			{
				"[INFO] Unexpected behavior detected in 3 subsystems",
				"[INFO] Diagnostic scan in progress - 47% complete",
				"[STATUS] Containment procedures active",
			},
			{
				"[WARNING] System resource allocation failure in module DEFENSE.SYS",
				"[WARNING] System stability declining - defensive measures initiated",
				"[RECOMMENDED] System isolation and diagnostic reboot required",
			},
			{
				"[ERROR] Multiple memory violations detected in sectors 0xC4-0xE2",
				"[CRITICAL] Data corruption spreading at an accelerated rate",
				"[ACTION REQUIRED] Immediate isolation protocol implementation advised",
			},
		},
	},
	styles.Minimal: {
		Critical: 15,
		Warning:  30,
		Lines: [3][]string{
			{"INFO: System running at reduced capacity", "Monitoring system parameters..."},
			{"WARNING: Unstable signal detected", "Running diagnostic protocols..."},
			{"ERROR: Memory corruption detected at 0x483A", "Attempting system recovery..."},
		},
		Tail: [3]string{
			"",
			"WARNING: System degradation accelerating",
			"CRITICAL: Failure imminent in T-minus {t}s",
		},
	},
}

// DiagnosticLines returns the glitch diagnostic log of theme t at
// percentage p with remaining seconds left.
func DiagnosticLines(t styles.Theme, p float64, remaining int) []string {
	d, ok := diagnosticLogs[t]
	if !ok {
		d = baseDiagnostics
	}
	b := d.band(severity.Clamp(p))
	lines := append([]string(nil), d.Lines[b]...)
	if tail := d.Tail[b]; tail != "" {
		lines = append(lines, strings.ReplaceAll(tail, "{t}", strconv.Itoa(max(remaining, 0))))
	}
	return lines
}

// =============================================================================
// FIXED COPY
// =============================================================================

const (
	timeLabel        = "TIME REMAINING"
	integrityLabel   = "SYSTEM INTEGRITY"
	systemStatus     = "SYSTEM STATUS"
	distanceLabel    = "DISTANCE TRACKER"
	statusReport     = "STATUS REPORT"
	diagnosticTitle  = "DIAGNOSTIC LOG"
	diagnosticPrompt = "$ sys.check --verbose"
	failureLabel     = "TIME TO FAILURE"
	emergencyBanner  = "EMERGENCY PROTOCOLS ACTIVATED"
	gameOverTitle    = "GAME OVER"
	continuePrompt   = "INSERT COIN TO CONTINUE"
	noContinues      = "NO CONTINUES REMAINING"
	healthLabel      = "HEALTH REMAINING"
	finalWarning     = "FINAL WARNING: SYSTEM TERMINATION"
	lastStandMode    = "LAST STAND MODE"
	difficulty       = "DIFFICULTY: EXTREME"
	zuluLabel        = "ZULU"
	remainingLabel   = "REMAINING"
)

// =============================================================================
// ALERT BANNERS
// =============================================================================

// alertBanner is extra copy a variant shows once its percentage falls to
// Show, switching to Alarm at or below AlarmAt.
type alertBanner struct {
	Show    float64
	AlarmAt float64
	Warn    string
	Alarm   string
}

func (b alertBanner) text(p float64) (string, bool) {
	switch {
	case b.Alarm != "" && p <= b.AlarmAt:
		return b.Alarm, true
	case p <= b.Show:
		return b.Warn, true
	}
	return "", false
}

type variant struct {
	kind  Kind
	theme styles.Theme
}

var alertBanners = map[variant]alertBanner{
	{Timer, styles.Classic}: {Show: 20, Warn: "CRITICAL SITUATION - PREPARE FOR FINAL STAND"},
	{Timer, styles.Retro}: {Show: 30, AlarmAt: 15, Warn: "CAUTION: LOW TIME", Alarm: "CRITICAL WARNING"},
	{Timer, styles.Holo}: {
		Show:    30,
		AlarmAt: 15,
		Warn:    "WARNING: SYSTEM STABILITY COMPROMISED",
		Alarm:   "CRITICAL SYSTEM FAILURE IMMINENT",
	},
	{Timer, styles.Military}:  {Show: 30, AlarmAt: 15, Warn: "WARNING ALERT", Alarm: "CRITICAL ALERT"},
	{Timer, styles.Minimal}:   {Show: 15, Warn: "SYSTEM FAILURE IMMINENT"},
	{Glitch, styles.Retro}:    {Show: 30, AlarmAt: 15, Warn: "DATA CORRUPTION DETECTED", Alarm: "CRITICAL MEMORY VIOLATION"},
	{Glitch, styles.Military}: {Show: 30, AlarmAt: 15, Warn: "WARNING ALERT", Alarm: "CRITICAL ALERT"},
	{Glitch, styles.Minimal}:  {Show: 15, Warn: "EMERGENCY PROTOCOLS INITIATED"},
}

// AlertBanner returns the extra banner kind k shows in theme t at
// percentage p, if any.
func AlertBanner(k Kind, t styles.Theme, p float64) (string, bool) {
	b, ok := alertBanners[variant{k, t}]
	if !ok {
		return "", false
	}
	return b.text(severity.Clamp(p))
}
