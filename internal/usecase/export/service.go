// Package export runs the export flow: fetch a survey document and hand it to
// a download sink.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/surveyfront/internal/domain/survey"
	logpkg "github.com/kailas-cloud/surveyfront/internal/logger"
	"github.com/kailas-cloud/surveyfront/internal/metrics"
	"github.com/kailas-cloud/surveyfront/internal/view"
)

// ErrNotExportable signals an activation on a row without an export action.
var ErrNotExportable = errors.New("row has no export action")

// Service exports surveys through a sink.
type Service struct {
	backend Exporter
	logger  *zap.Logger
}

// New creates an export service. logger may be nil.
func New(backend Exporter, logger *zap.Logger) *Service {
	return &Service{backend: backend, logger: logger}
}

// Activate runs the export action of a rendered row. Rows whose path could not
// be parsed fail here, through the same alert path as a failed export.
func (s *Service) Activate(ctx context.Context, st *view.State, row view.Row, sink Sink) (string, error) {
	if row.IsFailure() {
		return "", s.fail(ctx, st, metrics.ExportBadRow, "", ErrNotExportable)
	}
	if row.ExportErr != nil {
		return "", s.fail(ctx, st, metrics.ExportBadRow, row.Record.Path(), row.ExportErr)
	}
	return s.Run(ctx, st, row.ExportID, sink)
}

// Run fetches the document for id and saves it through sink as
// survey_<id>.docx. The artifact body is closed as soon as the sink returns,
// whatever the outcome.
func (s *Service) Run(ctx context.Context, st *view.State, id string, sink Sink) (string, error) {
	a, err := s.backend.Export(ctx, id)
	if err != nil {
		return "", s.fail(ctx, st, metrics.ExportFetchErr, id, err)
	}
	a.Filename = survey.Filename(id)

	body := a.Body
	if body == nil {
		body = io.NopCloser(strings.NewReader(""))
	}
	defer func() { _ = body.Close() }()
	cr := &countingReader{r: body}
	a.Body = io.NopCloser(cr)

	loc, err := sink.Save(ctx, a)
	metrics.ExportBytesTotal.Add(float64(cr.n))
	if err != nil {
		return "", s.fail(ctx, st, metrics.ExportSaveError, id, err)
	}

	metrics.ExportsTotal.WithLabelValues(metrics.ExportOK).Inc()
	s.log(ctx).Info("survey exported",
		zap.String("survey_id", id),
		zap.String("filename", a.Filename),
		zap.String("location", loc),
		zap.Int64("bytes", cr.n),
	)
	return loc, nil
}

func (s *Service) fail(ctx context.Context, st *view.State, outcome, id string, err error) error {
	metrics.ExportsTotal.WithLabelValues(outcome).Inc()
	s.log(ctx).Error("export failed", zap.String("survey_id", id), zap.Error(err))
	if st != nil {
		st.Alert(view.ExportAlert)
	}
	if id == "" {
		return fmt.Errorf("export: %w", err)
	}
	return fmt.Errorf("export %q: %w", id, err)
}

func (s *Service) log(ctx context.Context) *zap.Logger {
	return logpkg.FromContextOr(ctx, s.logger)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err //nolint:wrapcheck // passthrough reader
}
