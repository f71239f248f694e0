package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/theme"
)

func init() {
	rootCmd.AddCommand(themesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List registered themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		scheme := theme.DetectScheme()

		headers := []string{"NAME", "CORNER", "PRIMARY", "BACKGROUND", "DISABLED"}
		var rows [][]string
		for _, name := range theme.Names() {
			t, _ := theme.Lookup(name)
			rows = append(rows, []string{
				name,
				strconv.Itoa(t.CornerRadius),
				formatPair(t.Palette.Primary, scheme),
				formatPair(t.Palette.Background, scheme),
				formatPair(t.Palette.Disabled, scheme),
			})
		}
		return writeTable(cmd.OutOrStdout(), headers, rows)
	},
}
