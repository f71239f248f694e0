package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/theme"
)

// TextField is a themed text input. It wraps bubbles/textinput and
// resolves its frame, border, and text colors from the ambient theme
// on every render. It follows the bubbletea Update/View contract and
// composes into any parent model.
type TextField struct {
	// Style selects the visual variant. Safe to change between
	// renders; appearance is recomputed each pass.
	Style TextFieldStyle

	input   textinput.Model
	scope   *theme.Scope
	scheme  theme.ColorScheme
	enabled bool
}

// NewTextField returns an enabled text field reading its theme from
// scope. A nil scope resolves to the default theme.
func NewTextField(scope *theme.Scope) TextField {
	input := textinput.New()
	input.Prompt = ""
	return TextField{
		input:   input,
		scope:   scope,
		scheme:  theme.DetectScheme(),
		enabled: true,
	}
}

// SetScheme overrides the detected color scheme. Mainly for tests and
// previews rendering both variants side by side.
func (f *TextField) SetScheme(scheme theme.ColorScheme) {
	f.scheme = scheme
}

// SetScope rebinds the field to a different subtree scope.
func (f *TextField) SetScope(scope *theme.Scope) {
	f.scope = scope
}

// SetEnabled toggles the enabled state. Disabled fields drop key input
// and render with the theme's disabled colors.
func (f *TextField) SetEnabled(enabled bool) {
	f.enabled = enabled
	if !enabled {
		f.input.Blur()
	}
}

// Enabled reports whether the field accepts input.
func (f TextField) Enabled() bool { return f.enabled }

// Focus gives the field keyboard focus and starts cursor blinking.
// Disabled fields refuse focus.
func (f *TextField) Focus() tea.Cmd {
	if !f.enabled {
		return nil
	}
	cmd := f.input.Focus()
	return tea.Batch(cmd, textinput.Blink)
}

// Blur removes keyboard focus.
func (f *TextField) Blur() { f.input.Blur() }

// Focused reports whether the field has keyboard focus.
func (f TextField) Focused() bool { return f.input.Focused() }

// Value returns the current input text.
func (f TextField) Value() string { return f.input.Value() }

// SetValue replaces the current input text.
func (f *TextField) SetValue(value string) { f.input.SetValue(value) }

// SetPlaceholder sets the placeholder text shown while empty.
func (f *TextField) SetPlaceholder(placeholder string) {
	f.input.Placeholder = placeholder
}

// SetWidth sets the input width in cells, excluding padding and
// border.
func (f *TextField) SetWidth(width int) { f.input.Width = width }

// Update handles a bubbletea message. Key input is dropped while the
// field is disabled; everything else passes through to the inner
// input.
func (f TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	if _, isKey := msg.(tea.KeyMsg); isKey && !f.enabled {
		return f, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the field with its appearance resolved from the
// ambient theme and current state.
func (f TextField) View() string {
	t := f.scope.Theme()
	ap := f.Style.Resolve(t, TextFieldState{
		Scheme:  f.scheme,
		Enabled: f.enabled,
		Focused: f.input.Focused(),
	})

	input := f.input
	text := lipgloss.NewStyle().Foreground(ap.Foreground)
	input.TextStyle = text
	input.PlaceholderStyle = text.Copy().Faint(true)
	input.Cursor.Style = lipgloss.NewStyle().Foreground(theme.ResolveColor(t.Palette.Primary.Main, f.scheme))

	frame := lipgloss.NewStyle().
		Padding(ap.PaddingVertical, ap.PaddingHorizontal)
	if ap.ShowBorder {
		frame = frame.
			BorderStyle(ap.Border).
			BorderForeground(ap.BorderColor)
	}
	if _, transparent := ap.Background.(lipgloss.NoColor); !transparent {
		frame = frame.Background(ap.Background)
	}

	return frame.Render(input.View())
}
