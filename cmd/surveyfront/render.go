package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kailas-cloud/surveyfront/internal/view"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Padding(0, 1)
	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
)

// renderRows draws the results table. An error row has no per-column cells,
// so it is drawn as a single red line spanning the table.
func renderRows(rows []view.Row) string {
	for _, r := range rows {
		if r.IsFailure() {
			return renderFailure(r.Cells[0].Text)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(view.Headers[:]...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		cells := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			cells[i] = c.Text
		}
		t.Row(cells...)
	}
	return t.String()
}

func renderFailure(msg string) string {
	header := strings.Join(view.Headers[:], " | ")
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Render(headerStyle.Render(header) + "\n" + errorStyle.Render(msg))
}
