// Package styles derives lipgloss styles from an extended palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/internal/color"
	"github.com/opencode-ai/swatch/internal/palette"
)

// Styles contains lipgloss styles derived from the effective palette.
type Styles struct {
	Palette palette.Extended
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Label   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Cell    lipgloss.Style
	Focus   lipgloss.Style
}

// CellWidth is the rendered width of one swatch, border excluded.
const CellWidth = 20

// BuildStyles converts palette roles into lipgloss styles.
func BuildStyles(p palette.Extended) Styles {
	bg := p.Get(palette.Role{Usage: palette.Background, Variant: palette.Base})
	strong := p.Get(palette.Role{Usage: palette.Background, Variant: palette.Strong})
	primary := p.Get(palette.Role{Usage: palette.Primary, Variant: palette.Base})
	primaryStrong := p.Get(palette.Role{Usage: palette.Primary, Variant: palette.Strong})
	success := p.Get(palette.Role{Usage: palette.Success, Variant: palette.Base})
	danger := p.Get(palette.Role{Usage: palette.Danger, Variant: palette.Base})

	return Styles{
		Palette: p,
		Title:   lipgloss.NewStyle().Foreground(Color(primary.Color)).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(Color(bg.Text)),
		Muted:   lipgloss.NewStyle().Foreground(Color(strong.Color)),
		Accent:  lipgloss.NewStyle().Foreground(Color(primary.Color)),
		Label:   lipgloss.NewStyle().Width(12).Bold(true),
		Success: lipgloss.NewStyle().Foreground(Color(success.Color)),
		Error:   lipgloss.NewStyle().Foreground(Color(danger.Color)),
		Cell:    lipgloss.NewStyle().Width(CellWidth).Padding(0, 1).Border(lipgloss.HiddenBorder()),
		Focus:   lipgloss.NewStyle().Width(CellWidth).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(Color(primaryStrong.Color)),
	}
}

// Swatch returns the style for a role's cell.
func (s Styles) Swatch(role palette.Role, focused bool) lipgloss.Style {
	pair := s.Palette.Get(role)
	base := s.Cell
	if focused {
		base = s.Focus
	}
	return base.
		Background(Color(pair.Color)).
		Foreground(Color(pair.Text))
}

// Color converts a palette color for lipgloss.
func Color(c color.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
