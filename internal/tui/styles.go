package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent      = lipgloss.Color("#2196F3")
	destructive = lipgloss.Color("#e53935")
	muted       = lipgloss.Color("#8a8f98")
	success     = lipgloss.Color("#8BC34A")
)

// Styles holds the lipgloss styles used by the model.
type Styles struct {
	Title    lipgloss.Style
	Input    lipgloss.Style
	Focused  lipgloss.Style
	ErrorRow lipgloss.Style
	Alert    lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		ErrorRow: lipgloss.NewStyle().
			Foreground(destructive).
			Border(lipgloss.NormalBorder()).
			BorderForeground(destructive).
			Padding(0, 1),
		Alert:  lipgloss.NewStyle().Bold(true).Foreground(destructive),
		Status: lipgloss.NewStyle().Foreground(success),
		Help:   lipgloss.NewStyle().Foreground(muted),
	}
}
