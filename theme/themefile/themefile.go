// Package themefile loads theme overrides from a config file.
//
// A theme file adjusts the default theme rather than defining one from
// scratch: palette roles and the corner radius may be overridden,
// everything else keeps its default. Colors are given either as a
// single value or as a light/dark pair:
//
//	corner_radius: 6
//	palette:
//	  primary:
//	    main: { light: "#5B8DEF", dark: "#7AA2F7" }
//	    content: { value: "#FFFFFF" }
package themefile

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/opencode-ai/swatch/internal/logging"
	"github.com/opencode-ai/swatch/theme"
)

// File is the decoded shape of a theme file.
type File struct {
	CornerRadius *int                `mapstructure:"corner_radius"`
	Palette      map[string]PairSpec `mapstructure:"palette"`
}

// PairSpec overrides one palette role.
type PairSpec struct {
	Main    ColorSpec `mapstructure:"main"`
	Content ColorSpec `mapstructure:"content"`
}

// ColorSpec is one color in a theme file: either a single value or a
// light/dark pair. An empty spec leaves the base color untouched.
type ColorSpec struct {
	Value string `mapstructure:"value"`
	Light string `mapstructure:"light"`
	Dark  string `mapstructure:"dark"`
}

func (c ColorSpec) color() (lipgloss.TerminalColor, bool) {
	switch {
	case c.Light != "" && c.Dark != "":
		return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}, true
	case c.Value != "":
		return lipgloss.Color(c.Value), true
	default:
		return nil, false
	}
}

// Load reads path and returns the default theme with the file's
// overrides applied. The format is inferred from the file extension
// (yaml, toml, or json).
func Load(path string) (theme.Theme, error) {
	return LoadOver(theme.Default(), path)
}

// LoadOver reads path and applies its overrides on top of base.
func LoadOver(base theme.Theme, path string) (theme.Theme, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return base, fmt.Errorf("read theme file %s: %w", path, err)
	}

	var file File
	if err := v.Unmarshal(&file); err != nil {
		return base, fmt.Errorf("parse theme file %s: %w", path, err)
	}

	return Apply(base, file), nil
}

// Apply returns base with the file's overrides applied. Unknown
// palette roles are logged and skipped; they are not an error.
func Apply(base theme.Theme, file File) theme.Theme {
	logger := logging.Component("themefile")

	result := base
	if file.CornerRadius != nil {
		result.CornerRadius = *file.CornerRadius
	}
	for role, spec := range file.Palette {
		pair, ok := rolePair(&result.Palette, role)
		if !ok {
			logger.Warn().Str("role", role).Msg("unknown palette role, skipping")
			continue
		}
		if c, ok := spec.Main.color(); ok {
			pair.Main = c
		}
		if c, ok := spec.Content.color(); ok {
			pair.Content = c
		}
	}
	return result
}

func rolePair(p *theme.Palette, role string) (*theme.ColorPair, bool) {
	switch strings.ToLower(role) {
	case "primary":
		return &p.Primary, true
	case "secondary":
		return &p.Secondary, true
	case "danger":
		return &p.Danger, true
	case "surface":
		return &p.Surface, true
	case "background":
		return &p.Background, true
	case "disabled":
		return &p.Disabled, true
	default:
		return nil, false
	}
}
