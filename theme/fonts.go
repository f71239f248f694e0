package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// FontStyle describes terminal typography for one text role. Terminals
// have no font faces, so the descriptor is the set of text attributes
// applied to a run of text.
type FontStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
	Faint     bool
}

// Apply layers the font attributes onto a lipgloss style.
func (f FontStyle) Apply(s lipgloss.Style) lipgloss.Style {
	return s.Bold(f.Bold).Italic(f.Italic).Underline(f.Underline).Faint(f.Faint)
}

// FontSet maps the five semantic text roles to font styles.
type FontSet struct {
	Title     FontStyle
	Header    FontStyle
	Subheader FontStyle
	Body      FontStyle
	Button    FontStyle
}

var (
	subheaderOnce   sync.Once
	subheaderStyled bool
)

// subheaderDefault picks the subheader style once per process. The
// faint+italic variant renders poorly on terminals without a color
// profile, so those fall back to the plain bold style.
func subheaderDefault() FontStyle {
	subheaderOnce.Do(func() {
		subheaderStyled = lipgloss.ColorProfile() != termenv.Ascii
	})
	if subheaderStyled {
		return FontStyle{Italic: true, Faint: true}
	}
	return FontStyle{Bold: true}
}

// DefaultFontSet returns the font set built from the bundled defaults.
func DefaultFontSet() FontSet {
	return FontSet{
		Title:     FontStyle{Bold: true, Underline: true},
		Header:    FontStyle{Bold: true},
		Subheader: subheaderDefault(),
		Body:      FontStyle{},
		Button:    FontStyle{Bold: true},
	}
}

// Roles returns the set's styles keyed by role name, in a stable order.
func (f FontSet) Roles() []struct {
	Name  string
	Style FontStyle
} {
	return []struct {
		Name  string
		Style FontStyle
	}{
		{"title", f.Title},
		{"header", f.Header},
		{"subheader", f.Subheader},
		{"body", f.Body},
		{"button", f.Button},
	}
}
