package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/theme"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', 0)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// formatPair renders a color pair as "main on content" hex values for
// the given scheme.
func formatPair(pair theme.ColorPair, scheme theme.ColorScheme) string {
	resolved := pair.Resolve(scheme)
	return fmt.Sprintf("%s / %s", colorLabel(resolved.Main), colorLabel(resolved.Content))
}

func colorLabel(c lipgloss.TerminalColor) string {
	if v, ok := c.(lipgloss.Color); ok {
		return string(v)
	}
	return "default"
}
