// Package view holds the explicit UI state shared by the browser page, the
// terminal UI and the CLI: the query input, the loading indicator, the results
// table and the alert line.
package view

import (
	"sync"

	"github.com/kailas-cloud/surveyfront/internal/domain/survey"
)

// User-facing texts.
const (
	ExportLabel = "Export word document survey draft"
	SearchAlert = "An error occurred while searching. Please try again."
	ExportAlert = "An error occurred while exporting. Please try again."
)

// Alerter receives user-facing alerts.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc adapts a function to the Alerter interface.
type AlertFunc func(msg string)

// Alert implements Alerter.
func (f AlertFunc) Alert(msg string) { f(msg) }

// State is the UI state passed explicitly into each flow.
// It is safe for concurrent use.
type State struct {
	Loading *Loading
	Table   *Table

	mu      sync.Mutex
	input   string
	alert   string
	alerter Alerter
}

// New creates an empty state. alerter may be nil.
func New(alerter Alerter) *State {
	return &State{
		Loading: &Loading{},
		Table:   &Table{},
		alerter: alerter,
	}
}

// SetInput replaces the query text.
func (s *State) SetInput(v string) {
	s.mu.Lock()
	s.input = v
	s.mu.Unlock()
}

// Input returns the query text.
func (s *State) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Alert records msg as the current alert and forwards it to the alerter.
func (s *State) Alert(msg string) {
	s.mu.Lock()
	s.alert = msg
	a := s.alerter
	s.mu.Unlock()

	if a != nil {
		a.Alert(msg)
	}
}

// LastAlert returns the most recent alert, "" if none.
func (s *State) LastAlert() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alert
}

// DismissAlert clears the current alert.
func (s *State) DismissAlert() {
	s.mu.Lock()
	s.alert = ""
	s.mu.Unlock()
}

// Render replaces the whole table with the rows for res.
func (s *State) Render(res survey.LookupResult) {
	if !res.IsList() {
		s.Table.Replace([]Row{FailureRow(res.Failure())})
		return
	}
	recs := res.Records()
	rows := make([]Row, len(recs))
	for i, r := range recs {
		rows[i] = RecordRow(r)
	}
	s.Table.Replace(rows)
}

// Loading is a loading indicator shared by overlapping flows.
// It is visible while at least one flow is pending.
type Loading struct {
	mu      sync.Mutex
	pending int
}

// Show marks one more flow as pending.
func (l *Loading) Show() {
	l.mu.Lock()
	l.pending++
	l.mu.Unlock()
}

// Hide marks one pending flow as done.
func (l *Loading) Hide() {
	l.mu.Lock()
	if l.pending > 0 {
		l.pending--
	}
	l.mu.Unlock()
}

// Visible reports whether the indicator is shown.
func (l *Loading) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending > 0
}
