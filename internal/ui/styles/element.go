// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

// Element identifies a renderable part of a widget.
type Element int

const (
	Text Element = iota
	Title
	Subtitle
	Time
	TimeLabel
	ProgressFill
	ProgressTrack
	ProgressLabel
	Percentage
	StatusBox
	StatusTitle
	StatusText
	Icon
	LifeFull
	LifeEmpty
	Banner
	Diagnostic
	Scanline
	Container

	numElements
)

// Elements lists every defined element.
var Elements = func() []Element {
	out := make([]Element, numElements)
	for i := range out {
		out[i] = Element(i)
	}
	return out
}()

var elementNames = [numElements]string{
	Text:          "text",
	Title:         "title",
	Subtitle:      "subtitle",
	Time:          "time",
	TimeLabel:     "time-label",
	ProgressFill:  "progress-fill",
	ProgressTrack: "progress-track",
	ProgressLabel: "progress-label",
	Percentage:    "percentage",
	StatusBox:     "status-box",
	StatusTitle:   "status-title",
	StatusText:    "status-text",
	Icon:          "icon",
	LifeFull:      "life-full",
	LifeEmpty:     "life-empty",
	Banner:        "banner",
	Diagnostic:    "diagnostic",
	Scanline:      "scanline",
	Container:     "container",
}

func (e Element) String() string {
	if e < 0 || e >= numElements {
		return "unknown"
	}
	return elementNames[e]
}
