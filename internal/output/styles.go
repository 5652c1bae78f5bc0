package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette, shared with the rest of the CLI.
const (
	ColorLime     = "154" // Primary accent
	ColorLimeDim  = "106" // Secondary accent
	ColorWhite    = "255" // Headers
	ColorGray     = "245" // Labels, numbers
	ColorDarkGray = "238" // Borders
	ColorAmber    = "214" // Warnings
	ColorRed      = "203" // Errors
)

// Styles holds the table and status styles.
type Styles struct {
	Header lipgloss.Style
	Term   lipgloss.Style
	Phrase lipgloss.Style
	Number lipgloss.Style
	Dim    lipgloss.Style
	Border lipgloss.Style
	Title  lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns coloured styles bound to the renderer of w.
func DefaultStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Header: r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)).Padding(0, 1),
		Term:   r.NewStyle().Foreground(lipgloss.Color(ColorLime)).Padding(0, 1),
		Phrase: r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)).Padding(0, 1),
		Number: r.NewStyle().Foreground(lipgloss.Color(ColorGray)).Padding(0, 1),
		Dim:    r.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)).Padding(0, 1),
		Border: r.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLimeDim)),

		Success: r.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Warning: r.NewStyle().Foreground(lipgloss.Color(ColorAmber)),
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
	}
}

// NoColorStyles returns unstyled components with the same padding.
func NoColorStyles() Styles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Header: cell,
		Term:   cell,
		Phrase: cell,
		Number: cell,
		Dim:    cell,
		Border: lipgloss.NewStyle(),
		Title:  lipgloss.NewStyle(),

		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(w io.Writer, noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles(w)
}
