package view

import (
	"sync"

	"github.com/kailas-cloud/surveyfront/internal/domain/survey"
)

// ColumnCount is the number of table columns: title, path, state, action.
const ColumnCount = 4

// Headers are the column titles.
var Headers = [ColumnCount]string{"Name", "Path", "Status", "Action"}

// Cell is one rendered table cell.
type Cell struct {
	Text    string
	ColSpan int
	Error   bool
}

// Row is one rendered table row.
type Row struct {
	Cells  []Cell
	Record survey.Record

	// ExportID is parsed at render time; ExportErr is reported when the
	// row's export action is activated.
	ExportID  string
	ExportErr error

	failure bool
}

// RecordRow renders a record into four cells.
func RecordRow(r survey.Record) Row {
	c := r.Cells()
	id, err := r.ExportID()
	return Row{
		Cells: []Cell{
			{Text: c[0], ColSpan: 1},
			{Text: c[1], ColSpan: 1},
			{Text: c[2], ColSpan: 1},
			{Text: ExportLabel, ColSpan: 1},
		},
		Record:    r,
		ExportID:  id,
		ExportErr: err,
	}
}

// FailureRow renders a single full-width error cell.
func FailureRow(msg string) Row {
	return Row{
		Cells:   []Cell{{Text: msg, ColSpan: ColumnCount, Error: true}},
		failure: true,
	}
}

// IsFailure reports whether the row is an error row without an export action.
func (r Row) IsFailure() bool { return r.failure }

// Table is the results table. Rows are only ever replaced wholesale.
type Table struct {
	mu   sync.Mutex
	rows []Row
}

// Clear removes all rows.
func (t *Table) Clear() {
	t.Replace(nil)
}

// Replace swaps in a new row set.
func (t *Table) Replace(rows []Row) {
	t.mu.Lock()
	t.rows = rows
	t.mu.Unlock()
}

// Rows returns a copy of the current rows.
func (t *Table) Rows() []Row {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}
