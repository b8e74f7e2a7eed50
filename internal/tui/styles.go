package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title    lipgloss.Style
	Input    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	List     lipgloss.Style
}

func DefaultStyles() *Styles {
	var (
		primary = lipgloss.Color("#7C3AED")
		muted   = lipgloss.Color("#6C7086")
		errC    = lipgloss.Color("#F38BA8")
		border  = lipgloss.Color("#45475A")
	)

	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Input:    lipgloss.NewStyle().Padding(0, 1),
		Item:     lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(primary).SetString(">"),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Error:    lipgloss.NewStyle().Foreground(errC),
		List: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
	}
}
