package output

import "github.com/charmbracelet/lipgloss"

// Styles is the set of lipgloss styles commands render with. Severity
// styles line up with the verification severities; StatusSuccess and
// StatusFailed carry their glyphs so they render directly.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Hint    lipgloss.Style
	Success lipgloss.Style

	// FilePath highlights configuration file paths.
	FilePath lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

// DefaultStyles returns the colored style set used on a terminal.
func DefaultStyles() Styles {
	return Styles{
		Header1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),

		FilePath: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),

		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).SetString("✓"),
		StatusFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).SetString("✗"),
	}
}

// PlainStyles returns an unstyled set for non-TTY output. Status glyphs
// survive without color.
func PlainStyles() Styles {
	return Styles{
		Header1: lipgloss.NewStyle(),
		Header2: lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),

		Error:   lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Info:    lipgloss.NewStyle(),
		Hint:    lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),

		FilePath: lipgloss.NewStyle(),

		StatusSuccess: lipgloss.NewStyle().SetString("✓"),
		StatusFailed:  lipgloss.NewStyle().SetString("✗"),
	}
}
