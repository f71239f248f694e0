package theme

import "github.com/charmbracelet/lipgloss"

// ColorPair pairs a main color with the content color drawn on top of
// it. Both fields are always populated; there are no partial pairs.
type ColorPair struct {
	Main    lipgloss.TerminalColor
	Content lipgloss.TerminalColor
}

// Palette maps the six semantic color roles to their pairs. The role
// set is fixed; new roles require a type change, not runtime mutation.
type Palette struct {
	Primary    ColorPair
	Secondary  ColorPair
	Danger     ColorPair
	Surface    ColorPair
	Background ColorPair
	Disabled   ColorPair
}

// Bundled default colors. Each adapts to the terminal background, so a
// role resolves differently under light and dark schemes.
var (
	ColorPrimary           = lipgloss.AdaptiveColor{Light: "#5B8DEF", Dark: "#7AA2F7"}
	ColorPrimaryContent    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B0F14"}
	ColorSecondary         = lipgloss.AdaptiveColor{Light: "#6E7891", Dark: "#8B9AAE"}
	ColorSecondaryContent  = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B0F14"}
	ColorDanger            = lipgloss.AdaptiveColor{Light: "#D93025", Dark: "#F85149"}
	ColorDangerContent     = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B0F14"}
	ColorSurface           = lipgloss.AdaptiveColor{Light: "#F2F4F8", Dark: "#121821"}
	ColorSurfaceContent    = lipgloss.AdaptiveColor{Light: "#1C2430", Dark: "#E6EDF3"}
	ColorBackground        = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B0F14"}
	ColorBackgroundContent = lipgloss.AdaptiveColor{Light: "#1C2430", Dark: "#E6EDF3"}
	ColorDisabled          = lipgloss.AdaptiveColor{Light: "#E3E6EB", Dark: "#223043"}
	ColorDisabledContent   = lipgloss.AdaptiveColor{Light: "#9AA3B2", Dark: "#556A80"}
)

// DefaultPalette returns the palette built from the bundled defaults.
func DefaultPalette() Palette {
	return Palette{
		Primary:    ColorPair{Main: ColorPrimary, Content: ColorPrimaryContent},
		Secondary:  ColorPair{Main: ColorSecondary, Content: ColorSecondaryContent},
		Danger:     ColorPair{Main: ColorDanger, Content: ColorDangerContent},
		Surface:    ColorPair{Main: ColorSurface, Content: ColorSurfaceContent},
		Background: ColorPair{Main: ColorBackground, Content: ColorBackgroundContent},
		Disabled:   ColorPair{Main: ColorDisabled, Content: ColorDisabledContent},
	}
}

// Roles returns the palette's pairs keyed by role name, in a stable
// order. Useful for preview and listing output.
func (p Palette) Roles() []struct {
	Name string
	Pair ColorPair
} {
	return []struct {
		Name string
		Pair ColorPair
	}{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"danger", p.Danger},
		{"surface", p.Surface},
		{"background", p.Background},
		{"disabled", p.Disabled},
	}
}
