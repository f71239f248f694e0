package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/components"
	"github.com/opencode-ai/swatch/theme"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a static swatch sheet for a theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := selectedTheme()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderPreview(t))
		return nil
	},
}

// renderPreview lays out palette swatches and the text field states
// for the detected scheme.
func renderPreview(t theme.Theme) string {
	scheme := theme.DetectScheme()
	scope := theme.NewScope().With(t)

	var b strings.Builder

	header := t.Typography.Header.Apply(lipgloss.NewStyle())
	b.WriteString(header.Render(fmt.Sprintf("Palette (%s scheme)", scheme)))
	b.WriteString("\n")
	for _, role := range t.Palette.Roles() {
		pair := role.Pair.Resolve(scheme)
		chip := lipgloss.NewStyle().
			Background(pair.Main).
			Foreground(pair.Content).
			Padding(0, 1).
			Render(fmt.Sprintf("%-10s", role.Name))
		b.WriteString(fmt.Sprintf("%s  %s\n", chip, formatPair(role.Pair, scheme)))
	}

	b.WriteString("\n")
	b.WriteString(header.Render("Text fields"))
	b.WriteString("\n")
	for _, state := range []struct {
		label    string
		outlined bool
		enabled  bool
	}{
		{"filled", false, true},
		{"outlined", true, true},
		{"outlined disabled", true, false},
	} {
		field := components.NewTextField(scope)
		field.Style = components.TextFieldStyle{Outlined: state.outlined}
		field.SetValue(state.label)
		field.SetWidth(24)
		field.SetEnabled(state.enabled)
		b.WriteString(field.View())
		b.WriteString("\n")
	}

	return b.String()
}
