// Package tui provides the terminal user interface for daygrid.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nvaldez/daygrid/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	// Header
	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style

	// Hour ruler column
	RulerStyle     lipgloss.Style
	RulerTickStyle lipgloss.Style

	// Day column
	GapStyle lipgloss.Style

	// Footer
	HelpStyle        lipgloss.Style
	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style

	// Modal
	ModalStyle            lipgloss.Style
	ModalTitleStyle       lipgloss.Style
	ModalLabelStyle       lipgloss.Style
	ModalValueStyle       lipgloss.Style
	ModalFocusStyle       lipgloss.Style
	ModalHintStyle        lipgloss.Style
	ModalPlaceholderStyle lipgloss.Style
	ModalInputTextStyle   lipgloss.Style
	ModalInputCursorStyle lipgloss.Style
	ConfirmStyle          lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{
		palette:          p,
		colorBg:          p.Bg,
		colorBgHighlight: p.BgHighlight,
		colorBgSelection: p.BgSelection,
		colorFg:          p.Fg,
		colorFgMuted:     p.FgMuted,
		colorAccent:      p.Accent,
		colorWarning:     p.Warning,
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	s.HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Bg).
		Padding(0, 1)

	s.RulerStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	s.RulerTickStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Faint(true)

	s.GapStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Accent)

	s.StatusErrorStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Modal.Border).
		Background(p.Modal.Bg).
		Padding(1, 2)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Modal.Bg).
		Bold(true)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Muted).
		Background(p.Modal.Bg)

	s.ModalValueStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Text).
		Background(p.Modal.Bg)

	s.ModalFocusStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Highlight).
		Background(p.Modal.Bg).
		Bold(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Muted).
		Background(p.Modal.Bg).
		Faint(true)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Muted).
		Background(p.Modal.Bg)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Text).
		Background(p.Modal.Bg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Highlight).
		Background(p.Modal.Bg)

	s.ConfirmStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Background(p.Modal.Bg).
		Bold(true)

	return s
}

// BlockStyle returns the style for a block body given its category color.
func (s *Styles) BlockStyle(categoryHex string, selected bool) lipgloss.Style {
	colors := s.palette.Block(categoryHex)
	bg := colors.Bg
	if selected {
		bg = colors.BgSelected
	}
	style := lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(bg)
	if selected {
		style = style.Bold(true)
	}
	return style
}
