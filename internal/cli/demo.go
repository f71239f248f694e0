package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/swatch/internal/demo"
)

var demoOutlined bool

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVar(&demoOutlined, "outlined", false, "render fields in the outlined variant")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive theme demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hasTTY() {
			return errors.New("demo requires an interactive terminal")
		}
		t, err := selectedTheme()
		if err != nil {
			return err
		}
		return demo.Run(demo.Config{
			Theme:     t,
			ThemeName: flagTheme,
			Outlined:  demoOutlined,
		})
	},
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
