package theme

import (
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// The registry maps theme names to values so applications can declare
// named variants once at startup and select them by name later.
// Builtins register during init; applications add their own with
// Register before rendering starts.

var registry = struct {
	sync.RWMutex
	themes map[string]Theme
}{themes: make(map[string]Theme)}

// Register binds name to t, replacing any previous binding.
func Register(name string, t Theme) {
	registry.Lock()
	defer registry.Unlock()
	registry.themes[name] = t
}

// Lookup returns the theme registered under name.
func Lookup(name string) (Theme, bool) {
	registry.RLock()
	defer registry.RUnlock()
	t, ok := registry.themes[name]
	return t, ok
}

// Names returns the registered theme names in sorted order.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.themes))
	for name := range registry.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HighContrast returns a variant of the default theme that favors
// visibility on low-contrast terminals: pure black/white backgrounds
// and saturated role colors.
func HighContrast() Theme {
	t := Default()
	t.Palette.Primary = ColorPair{
		Main:    lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#00A2FF"},
		Content: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"},
	}
	t.Palette.Secondary = ColorPair{
		Main:    lipgloss.AdaptiveColor{Light: "#404040", Dark: "#C0C0C0"},
		Content: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"},
	}
	t.Palette.Danger = ColorPair{
		Main:    lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF4040"},
		Content: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"},
	}
	t.Palette.Surface = ColorPair{
		Main:    lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#0A0A0A"},
		Content: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	}
	t.Palette.Background = ColorPair{
		Main:    lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"},
		Content: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	}
	t.Palette.Disabled = ColorPair{
		Main:    lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"},
		Content: lipgloss.AdaptiveColor{Light: "#707070", Dark: "#909090"},
	}
	return t
}

func init() {
	Register("default", Default())
	Register("high-contrast", HighContrast())
}
