// Package demo implements the interactive swatch showcase TUI.
package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/components"
	"github.com/opencode-ai/swatch/internal/logging"
	"github.com/opencode-ai/swatch/theme"
)

// Config selects what the demo renders.
type Config struct {
	// Theme is bound to the demo's root scope.
	Theme theme.Theme
	// ThemeName labels the header.
	ThemeName string
	// Outlined renders the focusable fields in the outlined variant.
	Outlined bool
}

// Run launches the demo program.
func Run(cfg Config) error {
	logger := logging.Component("demo")
	logger.Debug().Str("theme", cfg.ThemeName).Msg("starting demo")
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

const (
	minWidth  = 48
	minHeight = 14
)

// Field indices. The nested field reads from an inner scope binding
// the high-contrast theme, demonstrating that an inner binding
// shadows the root one.
const (
	fieldName = iota
	fieldEmail
	fieldDisabled
	fieldNested
	fieldCount
)

type model struct {
	width  int
	height int

	cfg    Config
	scheme theme.ColorScheme
	scope  *theme.Scope

	fields [fieldCount]components.TextField
	focus  int
}

func newModel(cfg Config) model {
	root := theme.NewScope().With(cfg.Theme)
	nested := root.With(theme.HighContrast())

	m := model{
		cfg:    cfg,
		scheme: theme.DetectScheme(),
		scope:  root,
		focus:  fieldName,
	}

	style := components.TextFieldStyle{Outlined: cfg.Outlined}

	name := components.NewTextField(root)
	name.Style = style
	name.SetPlaceholder("Name")
	name.SetWidth(28)
	m.fields[fieldName] = name

	email := components.NewTextField(root)
	email.Style = style
	email.SetPlaceholder("Email")
	email.SetWidth(28)
	m.fields[fieldEmail] = email

	disabled := components.NewTextField(root)
	disabled.Style = components.TextFieldStyle{Outlined: true}
	disabled.SetValue("Disabled field")
	disabled.SetWidth(28)
	disabled.SetEnabled(false)
	m.fields[fieldDisabled] = disabled

	inner := components.NewTextField(nested)
	inner.Style = components.TextFieldStyle{Outlined: true}
	inner.SetPlaceholder("Nested scope (high-contrast)")
	inner.SetWidth(28)
	m.fields[fieldNested] = inner

	m.fields[m.focus].Focus()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m.moveFocus(1)
		case "shift+tab":
			return m.moveFocus(-1)
		case "ctrl+d":
			return m.toggleEnabled()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

// moveFocus advances focus past disabled fields, wrapping around.
func (m model) moveFocus(step int) (tea.Model, tea.Cmd) {
	m.fields[m.focus].Blur()

	next := m.focus
	for i := 0; i < fieldCount; i++ {
		next = (next + step + fieldCount) % fieldCount
		if m.fields[next].Enabled() {
			break
		}
	}
	m.focus = next

	field := m.fields[m.focus]
	cmd := field.Focus()
	m.fields[m.focus] = field
	return m, cmd
}

// toggleEnabled flips the focused field between enabled and disabled
// so the disabled resolution is visible live.
func (m model) toggleEnabled() (tea.Model, tea.Cmd) {
	field := m.fields[m.focus]
	field.SetEnabled(!field.Enabled())
	m.fields[m.focus] = field
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	t := m.scope.Theme()
	title := t.Typography.Title.Apply(
		lipgloss.NewStyle().Foreground(theme.ResolveColor(t.Palette.Primary.Main, m.scheme)),
	)
	muted := lipgloss.NewStyle().Foreground(theme.ResolveColor(t.Palette.Secondary.Main, m.scheme))

	lines := []string{
		title.Render(fmt.Sprintf("swatch demo — %s", m.cfg.ThemeName)),
		"",
	}
	for i := range m.fields {
		lines = append(lines, m.fields[i].View())
	}
	lines = append(lines, "", muted.Render("tab/shift+tab focus | ctrl+d toggle enabled | esc quit"))

	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) smallViewLines() []string {
	return []string{
		fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height),
		fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight),
		"Press esc to quit.",
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
