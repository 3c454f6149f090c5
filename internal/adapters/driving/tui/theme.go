package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the TUI.
type Styles struct {
	Title     lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default TUI styling.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 2),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
