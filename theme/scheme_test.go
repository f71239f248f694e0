package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColor(t *testing.T) {
	adaptive := lipgloss.AdaptiveColor{Light: "#111111", Dark: "#EEEEEE"}

	assert.Equal(t, lipgloss.Color("#111111"), ResolveColor(adaptive, SchemeLight))
	assert.Equal(t, lipgloss.Color("#EEEEEE"), ResolveColor(adaptive, SchemeDark))

	plain := lipgloss.Color("#ABCDEF")
	assert.Equal(t, plain, ResolveColor(plain, SchemeLight))
	assert.Equal(t, lipgloss.NoColor{}, ResolveColor(lipgloss.NoColor{}, SchemeDark))
}

func TestColorPairResolve(t *testing.T) {
	pair := ColorPair{
		Main:    lipgloss.AdaptiveColor{Light: "#101010", Dark: "#F0F0F0"},
		Content: lipgloss.Color("#333333"),
	}
	resolved := pair.Resolve(SchemeDark)

	assert.Equal(t, lipgloss.Color("#F0F0F0"), resolved.Main)
	assert.Equal(t, lipgloss.Color("#333333"), resolved.Content)
}

func TestOverlay(t *testing.T) {
	t.Run("black over white at one eighth", func(t *testing.T) {
		got := Overlay(lipgloss.Color("#FFFFFF"), lipgloss.Color("#000000"), 0.125)
		require.Equal(t, lipgloss.Color("#dfdfdf"), got)
	})

	t.Run("white over black at one eighth", func(t *testing.T) {
		got := Overlay(lipgloss.Color("#000000"), lipgloss.Color("#FFFFFF"), 0.125)
		require.Equal(t, lipgloss.Color("#202020"), got)
	})

	t.Run("zero opacity keeps base", func(t *testing.T) {
		got := Overlay(lipgloss.Color("#336699"), lipgloss.Color("#FFFFFF"), 0)
		require.Equal(t, lipgloss.Color("#336699"), got)
	})

	t.Run("full opacity yields top", func(t *testing.T) {
		got := Overlay(lipgloss.Color("#336699"), lipgloss.Color("#FFFFFF"), 1)
		require.Equal(t, lipgloss.Color("#ffffff"), got)
	})

	t.Run("opacity clamps to the unit interval", func(t *testing.T) {
		got := Overlay(lipgloss.Color("#336699"), lipgloss.Color("#FFFFFF"), 2.5)
		require.Equal(t, lipgloss.Color("#ffffff"), got)
	})

	t.Run("non-hex base passes through", func(t *testing.T) {
		base := lipgloss.Color("212")
		require.Equal(t, base, Overlay(base, lipgloss.Color("#000000"), 0.125))
	})

	t.Run("no-color base passes through", func(t *testing.T) {
		base := lipgloss.NoColor{}
		require.Equal(t, lipgloss.TerminalColor(base), Overlay(base, lipgloss.Color("#000000"), 0.125))
	})
}

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "light", SchemeLight.String())
	assert.Equal(t, "dark", SchemeDark.String())
}
