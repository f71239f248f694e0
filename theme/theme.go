// Package theme provides the design-system object for swatch: a color
// palette, a font set, and shape constants, plus the ambient mechanism
// that carries a theme from an ancestor view to its descendants.
//
// Theme values are plain data. Deriving a variant is copy-and-reassign:
//
//	t := theme.Default()
//	t.Palette.Primary.Main = lipgloss.Color("#FF5FD2")
//
// Nothing here validates or fails; every constructor is total.
package theme

// DefaultCornerRadius is the corner radius carried by Default().
// A radius above zero selects rounded border corners.
const DefaultCornerRadius = 4

// Theme bundles a palette, typography, and shape constants. It is a
// value type: copy it to derive variants, do not share a mutable
// instance across subtrees.
type Theme struct {
	Palette      Palette
	Typography   FontSet
	CornerRadius int
}

// Default returns the fully populated default theme.
func Default() Theme {
	return Theme{
		Palette:      DefaultPalette(),
		Typography:   DefaultFontSet(),
		CornerRadius: DefaultCornerRadius,
	}
}
