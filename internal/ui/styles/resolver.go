// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/jeranaias/laststand-tui/internal/severity"

// styleFunc produces the descriptor of one element for a severity tier.
type styleFunc func(severity.Severity) Descriptor

// themeSpec maps every element to its style function.
type themeSpec [numElements]styleFunc

var specs = map[Theme]*themeSpec{
	Classic:  classicSpec(),
	Neon:     neonSpec(),
	Retro:    retroSpec(),
	Holo:     holoSpec(),
	Military: militarySpec(),
	Minimal:  minimalSpec(),
}

// Resolve returns the descriptor for element e of theme t at severity s.
// Unknown themes resolve as DefaultTheme and unknown elements as Text.
func Resolve(t Theme, s severity.Severity, e Element) Descriptor {
	spec, ok := specs[t]
	if !ok {
		spec = specs[DefaultTheme]
	}
	if e < 0 || e >= numElements || spec[e] == nil {
		return spec[Text](s)
	}
	return spec[e](s)
}

// =============================================================================
// BASE SPEC
// =============================================================================

func baseSpec(p palette) *themeSpec {
	glow := func(s severity.Severity) Color {
		if p.glow {
			return p.accent(s)
		}
		return ""
	}
	frame := func(s severity.Severity) Color {
		if p.frame != "" && s != severity.Critical {
			return p.frame
		}
		return p.accent(s)
	}

	return &themeSpec{
		Text: func(severity.Severity) Descriptor {
			return Descriptor{Foreground: p.text, Font: p.font, Size: SizeMedium, Opacity: p.opacity}
		},
		Title: func(s severity.Severity) Descriptor {
			return Descriptor{
				Foreground: p.accent(s), Glow: glow(s), Font: p.font, Size: SizeLarge,
				Bold: true, Uppercase: p.uppercase, Spacing: p.spacing,
			}
		},
		Subtitle: func(severity.Severity) Descriptor {
			return Descriptor{
				Foreground: p.muted, Font: p.font, Size: SizeMedium,
				Italic: p.font == FontSans, Uppercase: p.uppercase, Opacity: p.opacity,
			}
		},
		Time: func(s severity.Severity) Descriptor {
			return Descriptor{Foreground: p.accent(s), Glow: glow(s), Font: p.font, Size: SizeXLarge, Bold: true}
		},
		TimeLabel: func(severity.Severity) Descriptor {
			return Descriptor{Foreground: p.muted, Font: p.font, Size: SizeSmall, Uppercase: true}
		},
		ProgressFill: func(s severity.Severity) Descriptor {
			return Descriptor{Foreground: p.accent(s), Glow: glow(s)}
		},
		ProgressTrack: func(severity.Severity) Descriptor {
			return Descriptor{Foreground: p.track}
		},
		ProgressLabel: func(severity.Severity) Descriptor {
			return Descriptor{Foreground: p.muted, Font: p.font, Size: SizeSmall}
		},
		Percentage: func(s severity.Severity) Descriptor {
			d := Descriptor{Foreground: p.muted, Font: p.font, Size: SizeSmall, Bold: true}
			if s == severity.Critical {
				d.Foreground = p.accent(s)
			}
			return d
		},
		StatusBox: func(s severity.Severity) Descriptor {
			return Descriptor{Border: p.border, BorderColor: frame(s), Glow: glow(s)}
		},
		StatusTitle: func(s severity.Severity) Descriptor {
			return Descriptor{
				Foreground: p.accent(s), Font: p.font, Size: SizeMedium,
				Bold: true, Uppercase: true, Spacing: p.spacing,
			}
		},
		StatusText: func(severity.Severity) Descriptor {
			return Descriptor{Foreground: p.text, Font: p.font, Size: SizeSmall, Opacity: p.opacity}
		},
		Icon: func(s severity.Severity) Descriptor {
			return Descriptor{Foreground: p.accent(s), Bold: true}
		},
		LifeFull: func(s severity.Severity) Descriptor {
			return Descriptor{Foreground: p.life, Glow: glow(s), Bold: true}
		},
		LifeEmpty: func(severity.Severity) Descriptor {
			return Descriptor{Foreground: p.track, Faint: true}
		},
		Banner: func(severity.Severity) Descriptor {
			alarm := p.ramp[severity.Critical]
			return Descriptor{
				Foreground: alarm, Background: p.surface, Border: p.border, BorderColor: alarm,
				Glow: glow(severity.Critical), Font: p.font, Bold: true, Uppercase: true,
			}
		},
		Diagnostic: func(s severity.Severity) Descriptor {
			return Descriptor{Foreground: p.muted, Font: FontMono, Size: SizeSmall, Faint: s == severity.Stable}
		},
		Scanline: func(severity.Severity) Descriptor {
			return Descriptor{Foreground: p.track, Faint: true}
		},
		Container: func(s severity.Severity) Descriptor {
			return Descriptor{Border: p.border, BorderColor: frame(s), Glow: glow(s)}
		},
	}
}

// =============================================================================
// THEME SPECS
// =============================================================================

func classicSpec() *themeSpec {
	spec := baseSpec(classicPalette)
	spec[Banner] = func(severity.Severity) Descriptor {
		return Descriptor{
			Foreground: White, Background: classicPalette.ramp[severity.Critical],
			Border: BorderRounded, BorderColor: classicPalette.ramp[severity.Critical],
			Bold: true, Uppercase: true,
		}
	}
	return spec
}

func neonSpec() *themeSpec {
	spec := baseSpec(neonPalette)
	// Neon titles glow in the calm color and only shift once things are dire.
	spec[Title] = func(s severity.Severity) Descriptor {
		c := neonPalette.ramp[severity.Stable]
		if s.AtLeast(severity.Warning) {
			c = neonPalette.accent(s)
		}
		return Descriptor{
			Foreground: c, Glow: c, Font: FontDisplay, Size: SizeLarge,
			Bold: true, Uppercase: true, Spacing: neonPalette.spacing,
		}
	}
	return spec
}

func retroSpec() *themeSpec {
	spec := baseSpec(retroPalette)
	spec[Scanline] = func(severity.Severity) Descriptor {
		return Descriptor{Foreground: retroPalette.text, Faint: true}
	}
	spec[Diagnostic] = func(severity.Severity) Descriptor {
		return Descriptor{Foreground: retroPalette.text, Font: FontMono, Size: SizeSmall}
	}
	spec[ProgressTrack] = func(severity.Severity) Descriptor {
		return Descriptor{Foreground: retroPalette.track, Background: retroPalette.surface}
	}
	return spec
}

func holoSpec() *themeSpec {
	spec := baseSpec(holoPalette)
	spec[Diagnostic] = func(s severity.Severity) Descriptor {
		return Descriptor{Foreground: holoPalette.accent(s), Font: FontMono, Size: SizeSmall, Opacity: 0.6}
	}
	spec[Scanline] = func(s severity.Severity) Descriptor {
		return Descriptor{Foreground: holoPalette.accent(s), Faint: true, Opacity: 0.4}
	}
	return spec
}

func militarySpec() *themeSpec {
	spec := baseSpec(militaryPalette)
	// Stencil band: dark text on the tier color.
	spec[StatusTitle] = func(s severity.Severity) Descriptor {
		return Descriptor{
			Foreground: militaryPalette.surface, Background: militaryPalette.accent(s),
			Font: FontMono, Bold: true, Uppercase: true, Spacing: militaryPalette.spacing,
		}
	}
	spec[Diagnostic] = func(severity.Severity) Descriptor {
		return Descriptor{Foreground: militaryPalette.ramp[severity.Stable], Font: FontMono, Size: SizeSmall}
	}
	return spec
}

func minimalSpec() *themeSpec {
	spec := baseSpec(minimalPalette)
	spec[Title] = func(severity.Severity) Descriptor {
		return Descriptor{Foreground: minimalPalette.text, Size: SizeMedium}
	}
	spec[Banner] = func(severity.Severity) Descriptor {
		return Descriptor{Foreground: minimalPalette.ramp[severity.Critical], Underline: true}
	}
	return spec
}
