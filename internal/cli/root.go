// Package cli implements the swatch command line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/logging"
	"github.com/opencode-ai/swatch/theme"
	"github.com/opencode-ai/swatch/theme/themefile"
)

var (
	flagTheme   string
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "swatch",
	Short:        "Preview and demo swatch themes",
	Long:         "Swatch is a theming library for Bubble Tea TUIs. This tool lists, previews, and demos its themes.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(os.Stderr, flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "registered theme name")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "theme override file (yaml, toml, or json)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// selectedTheme resolves the --theme and --config flags into a theme.
func selectedTheme() (theme.Theme, error) {
	t, ok := theme.Lookup(flagTheme)
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme %q (registered: %s)", flagTheme, strings.Join(theme.Names(), ", "))
	}
	if flagConfig == "" {
		return t, nil
	}
	return themefile.LoadOver(t, flagConfig)
}
