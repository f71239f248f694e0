package theme

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorScheme is the terminal background class a theme resolves
// against.
type ColorScheme int

const (
	SchemeLight ColorScheme = iota
	SchemeDark
)

// String returns "light" or "dark".
func (s ColorScheme) String() string {
	if s == SchemeDark {
		return "dark"
	}
	return "light"
}

var (
	schemeOnce     sync.Once
	detectedScheme ColorScheme
)

// DetectScheme probes the terminal background once and returns the
// matching scheme. Subsequent calls return the memoized result.
func DetectScheme() ColorScheme {
	schemeOnce.Do(func() {
		if lipgloss.HasDarkBackground() {
			detectedScheme = SchemeDark
		}
	})
	return detectedScheme
}

// ResolveColor collapses an adaptive color to the concrete color for
// the given scheme. Non-adaptive colors pass through unchanged.
func ResolveColor(c lipgloss.TerminalColor, scheme ColorScheme) lipgloss.TerminalColor {
	switch v := c.(type) {
	case lipgloss.AdaptiveColor:
		if scheme == SchemeDark {
			return lipgloss.Color(v.Dark)
		}
		return lipgloss.Color(v.Light)
	case lipgloss.CompleteAdaptiveColor:
		if scheme == SchemeDark {
			return v.Dark
		}
		return v.Light
	default:
		return c
	}
}

// Resolve collapses both halves of a pair for the given scheme.
func (p ColorPair) Resolve(scheme ColorScheme) ColorPair {
	return ColorPair{
		Main:    ResolveColor(p.Main, scheme),
		Content: ResolveColor(p.Content, scheme),
	}
}

// Overlay composites top over base at the given opacity and returns
// the flattened color. Terminal cells have no alpha channel, so the
// blend happens up front in RGB space. Both colors must carry hex
// values; anything else returns base unchanged.
func Overlay(base, top lipgloss.TerminalColor, opacity float64) lipgloss.TerminalColor {
	baseHex, ok := hexValue(base)
	if !ok {
		return base
	}
	topHex, ok := hexValue(top)
	if !ok {
		return base
	}
	b, err := colorful.Hex(baseHex)
	if err != nil {
		return base
	}
	t, err := colorful.Hex(topHex)
	if err != nil {
		return base
	}
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return lipgloss.Color(b.BlendRgb(t, opacity).Hex())
}

func hexValue(c lipgloss.TerminalColor) (string, bool) {
	v, ok := c.(lipgloss.Color)
	if !ok || !strings.HasPrefix(string(v), "#") {
		return "", false
	}
	return string(v), true
}
