// Package components provides styled controls that derive their
// appearance from the ambient theme.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/theme"
)

// Text field constants, applied regardless of theme.
const (
	textFieldFillOpacity       = 0.125
	textFieldBorderWeight      = 2
	textFieldPaddingVertical   = 1
	textFieldPaddingHorizontal = 2
)

// TextFieldStyle selects the text field variant. The zero value is the
// filled variant; Outlined swaps the neutral fill for a border.
type TextFieldStyle struct {
	Outlined bool
}

// TextFieldState is the ambient state a text field resolves against.
type TextFieldState struct {
	Scheme  theme.ColorScheme
	Enabled bool
	Focused bool
}

// TextFieldAppearance is the resolved paint for one render pass.
// NoColor fields mean the terminal default shows through.
type TextFieldAppearance struct {
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor

	ShowBorder   bool
	BorderColor  lipgloss.TerminalColor
	BorderWeight int
	Border       lipgloss.Border

	PaddingVertical   int
	PaddingHorizontal int
}

// Resolve computes the appearance for a theme and state. It is a pure
// function re-evaluated every render; every input combination has a
// defined output.
func (s TextFieldStyle) Resolve(t theme.Theme, state TextFieldState) TextFieldAppearance {
	ap := TextFieldAppearance{
		Background:        lipgloss.NoColor{},
		Foreground:        lipgloss.NoColor{},
		BorderColor:       lipgloss.NoColor{},
		PaddingVertical:   textFieldPaddingVertical,
		PaddingHorizontal: textFieldPaddingHorizontal,
	}

	if s.Outlined {
		ap.ShowBorder = true
		ap.BorderWeight = textFieldBorderWeight
		ap.Border = borderShape(t.CornerRadius)
		if state.Enabled {
			ap.BorderColor = theme.ResolveColor(t.Palette.Primary.Main, state.Scheme)
		} else {
			ap.BorderColor = theme.ResolveColor(t.Palette.Disabled.Content, state.Scheme)
		}
	} else {
		// Scheme-adaptive neutral fill: a 12.5% white overlay on dark
		// backgrounds, 12.5% black on light ones. Independent of the
		// semantic palette.
		overlay := lipgloss.Color("#000000")
		if state.Scheme == theme.SchemeDark {
			overlay = lipgloss.Color("#FFFFFF")
		}
		base := theme.ResolveColor(t.Palette.Background.Main, state.Scheme)
		ap.Background = theme.Overlay(base, overlay, textFieldFillOpacity)
	}

	if !state.Enabled {
		ap.Foreground = theme.ResolveColor(t.Palette.Disabled.Content, state.Scheme)
	}

	return ap
}

// borderShape maps the theme corner radius onto border glyphs: any
// radius above zero rounds the corners.
func borderShape(cornerRadius int) lipgloss.Border {
	if cornerRadius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}
