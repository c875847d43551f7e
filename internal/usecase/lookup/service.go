// Package lookup runs the lookup flow: query the backend and render the
// results table.
package lookup

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/surveyfront/internal/logger"
	"github.com/kailas-cloud/surveyfront/internal/metrics"
	"github.com/kailas-cloud/surveyfront/internal/view"
)

// Service renders lookup results into a UI state.
type Service struct {
	backend Looker
	logger  *zap.Logger
}

// New creates a lookup service. A request-scoped logger in the context takes
// precedence over logger; logger may be nil.
func New(backend Looker, logger *zap.Logger) *Service {
	return &Service{backend: backend, logger: logger}
}

// Run looks up query and renders the outcome into st.
//
// The table is cleared first and replaced wholesale once the backend answers,
// so overlapping runs leave the table with the last response to arrive.
// Transport failures are alerted and returned; a non-list response is rendered
// as an error row and is not an error. The loading indicator is hidden on
// every exit path.
func (s *Service) Run(ctx context.Context, st *view.State, query string) error {
	log := s.log(ctx).With(zap.String("survey_id", query))

	st.Loading.Show()
	metrics.LookupsInFlight.Inc()
	defer func() {
		metrics.LookupsInFlight.Dec()
		st.Loading.Hide()
	}()
	st.Table.Clear()

	res, err := s.backend.Lookup(ctx, query)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues(metrics.LookupTransportError).Inc()
		log.Error("lookup failed", zap.Error(err))
		st.Alert(view.SearchAlert)
		return fmt.Errorf("lookup %q: %w", query, err)
	}

	st.Render(res)

	if res.IsList() {
		metrics.LookupsTotal.WithLabelValues(metrics.LookupList).Inc()
		metrics.LookupRows.Observe(float64(len(res.Records())))
		log.Debug("lookup rendered", zap.Int("rows", len(res.Records())))
	} else {
		metrics.LookupsTotal.WithLabelValues(metrics.LookupFailure).Inc()
		log.Info("lookup returned an error response", zap.String("message", res.Failure()))
	}
	return nil
}

// RunInput looks up the query currently held in st.
func (s *Service) RunInput(ctx context.Context, st *view.State) error {
	return s.Run(ctx, st, st.Input())
}

func (s *Service) log(ctx context.Context) *zap.Logger {
	return logpkg.FromContextOr(ctx, s.logger)
}
