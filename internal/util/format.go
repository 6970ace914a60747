// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatClock renders seconds as zero-padded "MM:SS". Minutes are not
// wrapped, so 3600 seconds is "60:00". Negative input renders as "00:00".
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatMission renders seconds as a mission countdown, "T-MM:SS".
func FormatMission(seconds int) string {
	return "T-" + FormatClock(seconds)
}

// Timestamp renders t in UTC as "HH:MM:SSZ".
func Timestamp(t time.Time) string {
	return t.UTC().Format("15:04:05") + "Z"
}

// FormatPercent renders p with one decimal place, "NN.N%".
func FormatPercent(p float64) string {
	if math.IsNaN(p) {
		p = 0
	}
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// FormatWholePercent renders p rounded to an integer, "NN%".
func FormatWholePercent(p float64) string {
	if math.IsNaN(p) {
		p = 0
	}
	return strconv.Itoa(int(math.Round(p))) + "%"
}
