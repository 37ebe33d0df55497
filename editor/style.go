package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Header lipgloss.Style
	Footer lipgloss.Style

	Text    lipgloss.Style
	Control lipgloss.Style
	Cursor  lipgloss.Style
}

func DefaultStyle() Style {
	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("4"))
	return Style{
		Header:  bar,
		Footer:  bar.Bold(true),
		Text:    lipgloss.NewStyle(),
		Control: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:  lipgloss.NewStyle().Reverse(true),
	}
}
