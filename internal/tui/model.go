// Package tui is the interactive terminal front-end: a survey ID input, the
// results table and an export action, driven by the same flows as the web page.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	exportuc "github.com/kailas-cloud/surveyfront/internal/usecase/export"
	lookupuc "github.com/kailas-cloud/surveyfront/internal/usecase/lookup"
	"github.com/kailas-cloud/surveyfront/internal/view"
)

// focusArea is the widget receiving key presses.
type focusArea int

const (
	focusInput focusArea = iota
	focusTable
)

const helpText = "enter: search • tab: switch focus • e: export selected • esc: dismiss • q: quit"

// lookupDoneMsg reports the end of one lookup flow.
type lookupDoneMsg struct{ err error }

// exportDoneMsg reports the end of one export flow.
type exportDoneMsg struct {
	location string
	err      error
}

// Model is the bubbletea model of the terminal UI.
type Model struct {
	ctx    context.Context
	lookup *lookupuc.Service
	export *exportuc.Service
	sink   exportuc.Sink
	st     *view.State

	input   textinput.Model
	spinner spinner.Model
	table   table.Model
	rows    []view.Row
	focus   focusArea
	pending int
	status  string

	width  int
	styles Styles
}

// New creates the model. ctx bounds every backend call started from the UI.
func New(ctx context.Context, lookup *lookupuc.Service, export *exportuc.Service, sink exportuc.Sink) Model {
	ti := textinput.New()
	ti.Placeholder = "Survey ID"
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	cols := make([]table.Column, view.ColumnCount)
	widths := [view.ColumnCount]int{30, 30, 12, len(view.ExportLabel)}
	for i, h := range view.Headers {
		cols[i] = table.Column{Title: h, Width: widths[i]}
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithHeight(12),
		table.WithFocused(false),
	)

	return Model{
		ctx:     ctx,
		lookup:  lookup,
		export:  export,
		sink:    sink,
		st:      view.New(nil),
		input:   ti,
		spinner: sp,
		table:   t,
		focus:   focusInput,
		styles:  DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case lookupDoneMsg:
		m.pending--
		m.syncRows()
		if msg.err == nil {
			m.status = fmt.Sprintf("%d row(s)", len(m.rows))
		} else {
			m.status = ""
		}
		return m, nil

	case exportDoneMsg:
		m.pending--
		if msg.err == nil {
			m.status = "Saved " + msg.location
		} else {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.toggleFocus()
		return m, nil
	case "esc":
		m.st.DismissAlert()
		m.status = ""
		return m, nil
	}

	if m.focus == focusInput {
		if msg.Type == tea.KeyEnter {
			return m.startLookup()
		}
		return m.updateFocused(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "e", "enter":
		return m.startExport()
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusTable
		m.input.Blur()
		m.table.Focus()
		return
	}
	m.focus = focusInput
	m.table.Blur()
	m.input.Focus()
}

// startLookup dispatches a lookup for the input exactly as typed. Earlier
// lookups are not cancelled; the table shows whichever response arrives last.
// Rows of the previous result are dropped right away so they cannot be
// exported while the new lookup is pending.
func (m Model) startLookup() (tea.Model, tea.Cmd) {
	query := m.input.Value()
	m.st.SetInput(query)
	m.st.DismissAlert()
	m.status = ""
	m.pending++
	m.rows = nil
	m.table.SetRows(nil)

	ctx, lookup, st := m.ctx, m.lookup, m.st
	run := func() tea.Msg {
		return lookupDoneMsg{err: lookup.Run(ctx, st, query)}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

// startExport runs the export action of the selected row.
func (m Model) startExport() (tea.Model, tea.Cmd) {
	i := m.table.Cursor()
	if _, failed := m.failure(); failed || i < 0 || i >= len(m.rows) {
		return m, nil
	}
	row := m.rows[i]
	m.st.DismissAlert()
	m.status = "Exporting..."
	m.pending++

	ctx, export, st, sink := m.ctx, m.export, m.st, m.sink
	run := func() tea.Msg {
		loc, err := export.Activate(ctx, st, row, sink)
		return exportDoneMsg{location: loc, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

// syncRows copies the shared table into the bubbles table. A failure row has
// no table representation; View renders it as a full-width error line.
func (m *Model) syncRows() {
	m.rows = m.st.Table.Rows()
	trows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		if r.IsFailure() {
			continue
		}
		cells := make(table.Row, len(r.Cells))
		for i, c := range r.Cells {
			cells[i] = c.Text
		}
		trows = append(trows, cells)
	}
	m.table.SetRows(trows)
	m.table.SetCursor(0)
}

func (m Model) busy() bool {
	return m.pending > 0 || m.st.Loading.Visible()
}

func (m Model) failure() (string, bool) {
	for _, r := range m.rows {
		if r.IsFailure() {
			return r.Cells[0].Text, true
		}
	}
	return "", false
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Survey lookup"))
	b.WriteString("\n")

	inputStyle := m.styles.Input
	if m.focus == focusInput {
		inputStyle = m.styles.Focused
	}
	line := inputStyle.Render(m.input.View())
	if m.busy() {
		line = lipgloss.JoinHorizontal(lipgloss.Center, line, " ", m.spinner.View(), " Loading...")
	}
	b.WriteString(line)
	b.WriteString("\n\n")

	if msg, ok := m.failure(); ok {
		b.WriteString(m.styles.ErrorRow.Width(m.tableWidth()).Render(msg))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n\n")

	switch {
	case m.st.LastAlert() != "":
		b.WriteString(m.styles.Alert.Render(m.st.LastAlert()))
	case m.status != "":
		b.WriteString(m.styles.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

func (m Model) tableWidth() int {
	w := 0
	for _, c := range m.table.Columns() {
		w += c.Width + 2
	}
	if m.width > 0 && m.width < w {
		return m.width
	}
	return w
}

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
