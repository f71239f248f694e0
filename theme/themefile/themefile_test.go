package themefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/theme"
)

func writeThemeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := writeThemeFile(t, "theme.yaml", `
corner_radius: 6
palette:
  primary:
    main: { light: "#123456", dark: "#654321" }
    content: { value: "#FFFFFF" }
  danger:
    main: { value: "#CC0000" }
`)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, got.CornerRadius)
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#123456", Dark: "#654321"}, got.Palette.Primary.Main)
	assert.Equal(t, lipgloss.Color("#FFFFFF"), got.Palette.Primary.Content)
	assert.Equal(t, lipgloss.Color("#CC0000"), got.Palette.Danger.Main)

	// Everything not named keeps its default.
	def := theme.Default()
	assert.Equal(t, def.Palette.Danger.Content, got.Palette.Danger.Content)
	assert.Equal(t, def.Palette.Surface, got.Palette.Surface)
	assert.Equal(t, def.Typography, got.Typography)
}

func TestLoadOverCustomBase(t *testing.T) {
	base := theme.HighContrast()
	path := writeThemeFile(t, "theme.yaml", `
palette:
  secondary:
    main: { value: "#808080" }
`)

	got, err := LoadOver(base, path)
	require.NoError(t, err)

	assert.Equal(t, lipgloss.Color("#808080"), got.Palette.Secondary.Main)
	assert.Equal(t, base.Palette.Primary, got.Palette.Primary)
	assert.Equal(t, base.CornerRadius, got.CornerRadius)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read theme file")
}

func TestApplySkipsUnknownRoles(t *testing.T) {
	file := File{
		Palette: map[string]PairSpec{
			"primary":  {Main: ColorSpec{Value: "#101010"}},
			"tertiary": {Main: ColorSpec{Value: "#202020"}},
		},
	}

	got := Apply(theme.Default(), file)

	assert.Equal(t, lipgloss.Color("#101010"), got.Palette.Primary.Main)
	// The unknown role changes nothing else.
	def := theme.Default()
	def.Palette.Primary.Main = lipgloss.Color("#101010")
	assert.Equal(t, def, got)
}

func TestApplyRoleNamesAreCaseInsensitive(t *testing.T) {
	file := File{
		Palette: map[string]PairSpec{
			"Disabled": {Content: ColorSpec{Value: "#404040"}},
		},
	}

	got := Apply(theme.Default(), file)
	assert.Equal(t, lipgloss.Color("#404040"), got.Palette.Disabled.Content)
}

func TestColorSpecPrecedence(t *testing.T) {
	// A light/dark pair wins over a single value.
	spec := ColorSpec{Value: "#111111", Light: "#222222", Dark: "#333333"}
	c, ok := spec.color()
	require.True(t, ok)
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#222222", Dark: "#333333"}, c)

	_, ok = ColorSpec{}.color()
	assert.False(t, ok)
}
