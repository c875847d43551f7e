package lookup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/kailas-cloud/surveyfront/internal/domain/survey"
	"github.com/kailas-cloud/surveyfront/internal/view"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- Mocks ---

type mockLooker struct {
	fn func(ctx context.Context, query string) (survey.LookupResult, error)
}

func (m *mockLooker) Lookup(ctx context.Context, query string) (survey.LookupResult, error) {
	return m.fn(ctx, query)
}

func records(n int) []survey.Record {
	out := make([]survey.Record, n)
	for i := range out {
		out[i] = survey.NewRecord("t", "selfserve/2227/s", "live")
	}
	return out
}

// --- Tests ---

func TestRun_ListRendersRows(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		st := view.New(nil)
		svc := New(&mockLooker{fn: func(_ context.Context, _ string) (survey.LookupResult, error) {
			return survey.NewListResult(records(n)), nil
		}}, nil)

		if err := svc.Run(context.Background(), st, "s"); err != nil {
			t.Fatalf("n=%d: Run: %v", n, err)
		}
		rows := st.Table.Rows()
		if len(rows) != n {
			t.Errorf("n=%d: rows = %d", n, len(rows))
		}
		for i, r := range rows {
			if len(r.Cells) != view.ColumnCount {
				t.Errorf("n=%d row %d: cells = %d", n, i, len(r.Cells))
			}
		}
		if st.Loading.Visible() {
			t.Errorf("n=%d: loading still visible", n)
		}
	}
}

func TestRun_LoadingVisibleDuringCall(t *testing.T) {
	st := view.New(nil)
	var visible bool
	svc := New(&mockLooker{fn: func(_ context.Context, _ string) (survey.LookupResult, error) {
		visible = st.Loading.Visible()
		return survey.NewListResult(nil), nil
	}}, nil)

	if err := svc.Run(context.Background(), st, "s"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !visible {
		t.Error("loading should be visible while the backend call is pending")
	}
	if st.Loading.Visible() {
		t.Error("loading should be hidden after completion")
	}
}

func TestRun_ClearsTableBeforeCall(t *testing.T) {
	st := view.New(nil)
	st.Render(survey.NewListResult(records(3)))

	var during int
	svc := New(&mockLooker{fn: func(_ context.Context, _ string) (survey.LookupResult, error) {
		during = len(st.Table.Rows())
		return survey.NewListResult(records(1)), nil
	}}, nil)

	if err := svc.Run(context.Background(), st, "s"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if during != 0 {
		t.Errorf("table had %d rows during the call, want 0", during)
	}
	if len(st.Table.Rows()) != 1 {
		t.Errorf("rows = %d, want 1", len(st.Table.Rows()))
	}
}

func TestRun_FailureRow(t *testing.T) {
	st := view.New(nil)
	svc := New(&mockLooker{fn: func(_ context.Context, _ string) (survey.LookupResult, error) {
		return survey.NewFailureResult("Survey ID s not found."), nil
	}}, nil)

	if err := svc.Run(context.Background(), st, "s"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	rows := st.Table.Rows()
	if len(rows) != 1 || len(rows[0].Cells) != 1 {
		t.Fatalf("rows = %+v", rows)
	}
	c := rows[0].Cells[0]
	if c.ColSpan != view.ColumnCount || !c.Error || c.Text != "Survey ID s not found." {
		t.Errorf("failure cell = %+v", c)
	}
	if st.LastAlert() != "" {
		t.Errorf("semantic failure must not alert, got %q", st.LastAlert())
	}
}

func TestRun_TransportErrorAlerts(t *testing.T) {
	var alerts []string
	st := view.New(view.AlertFunc(func(msg string) { alerts = append(alerts, msg) }))
	st.Render(survey.NewListResult(records(2)))

	boom := errors.New("connection refused")
	svc := New(&mockLooker{fn: func(_ context.Context, _ string) (survey.LookupResult, error) {
		return survey.LookupResult{}, boom
	}}, nil)

	err := svc.Run(context.Background(), st, "s")
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if len(alerts) != 1 || alerts[0] != view.SearchAlert {
		t.Errorf("alerts = %v", alerts)
	}
	if st.Loading.Visible() {
		t.Error("loading should be hidden after failure")
	}
	if len(st.Table.Rows()) != 0 {
		t.Errorf("table should stay cleared after failure, rows = %d", len(st.Table.Rows()))
	}
}

func TestRunInput_UsesStateInput(t *testing.T) {
	st := view.New(nil)
	st.SetInput("240101")

	var got string
	svc := New(&mockLooker{fn: func(_ context.Context, q string) (survey.LookupResult, error) {
		got = q
		return survey.NewListResult(nil), nil
	}}, nil)

	if err := svc.RunInput(context.Background(), st); err != nil {
		t.Fatalf("RunInput: %v", err)
	}
	if got != "240101" {
		t.Errorf("query = %q", got)
	}
}

func TestRun_EmptyQueryIsSent(t *testing.T) {
	called := false
	svc := New(&mockLooker{fn: func(_ context.Context, q string) (survey.LookupResult, error) {
		called = q == ""
		return survey.NewFailureResult(""), nil
	}}, nil)

	if err := svc.Run(context.Background(), view.New(nil), ""); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !called {
		t.Error("empty query should reach the backend")
	}
}

// Two overlapping lookups: the response that resolves last owns the table,
// whatever the issue order.
func TestRun_LastResolvedWins(t *testing.T) {
	st := view.New(nil)
	release := map[string]chan struct{}{
		"first":  make(chan struct{}),
		"second": make(chan struct{}),
	}
	started := make(chan string, 2)

	svc := New(&mockLooker{fn: func(_ context.Context, q string) (survey.LookupResult, error) {
		started <- q
		<-release[q]
		n := 1
		if q == "first" {
			n = 3
		}
		return survey.NewListResult(records(n)), nil
	}}, nil)

	var wg sync.WaitGroup
	for _, q := range []string{"first", "second"} {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			_ = svc.Run(context.Background(), st, q)
		}(q)
	}
	<-started
	<-started

	if !st.Loading.Visible() {
		t.Error("loading should be visible while lookups are pending")
	}

	// The later-issued lookup resolves first; the earlier one resolves last.
	close(release["second"])
	waitFor(t, func() bool { return len(st.Table.Rows()) == 1 })
	if !st.Loading.Visible() {
		t.Error("loading should stay visible while the first lookup is pending")
	}
	close(release["first"])
	wg.Wait()

	if len(st.Table.Rows()) != 3 {
		t.Errorf("rows = %d, want 3 (last resolved response)", len(st.Table.Rows()))
	}
	if st.Loading.Visible() {
		t.Error("loading should be hidden once both lookups finished")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}
