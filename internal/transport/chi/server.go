// Package chi serves the browser front-end: a server-rendered lookup page,
// export downloads, health and metrics.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/surveyfront/internal/domain/survey"
	exportuc "github.com/kailas-cloud/surveyfront/internal/usecase/export"
	healthuc "github.com/kailas-cloud/surveyfront/internal/usecase/health"
	lookupuc "github.com/kailas-cloud/surveyfront/internal/usecase/lookup"
	"github.com/kailas-cloud/surveyfront/internal/view"
)

const (
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	maxFormBytes    = 64 << 10
)

// Server is the browser front-end.
type Server struct {
	lookup *lookupuc.Service
	export *exportuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates the browser front-end server.
func NewServer(
	lookup *lookupuc.Service,
	export *exportuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		lookup: lookup,
		export: export,
		health: health,
		logger: logger,
	}
}

// Register mounts the front-end routes on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.Index)
	r.Post("/lookup", s.Lookup)
	r.Post("/export", s.Export)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Index handles GET /.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	st := view.New(nil)
	st.SetInput(r.URL.Query().Get("survey_id"))
	s.renderPage(w, http.StatusOK, st)
}

// Lookup handles POST /lookup. Both the list and the error-row outcome are
// 200 pages; a transport failure renders the alert with 502.
func (s *Server) Lookup(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	st := view.New(nil)
	st.SetInput(r.PostFormValue("survey_id"))

	status := http.StatusOK
	if err := s.lookup.RunInput(r.Context(), st); err != nil {
		status = http.StatusBadGateway
	}
	s.renderPage(w, status, st)
}

// Export handles POST /export. The form carries either survey_id or the
// row's raw path; the path is parsed here so malformed rows fail with the
// export alert instead of a broken download.
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	st := view.New(nil)
	sink := &responseSink{w: w}

	var err error
	if id := r.PostFormValue("survey_id"); id != "" {
		_, err = s.export.Run(r.Context(), st, id, sink)
	} else {
		row := view.RecordRow(survey.NewRecord("", r.PostFormValue("path"), ""))
		_, err = s.export.Activate(r.Context(), st, row, sink)
	}
	if err == nil {
		return
	}
	if sink.started {
		// Headers are gone; the browser sees a truncated download.
		return
	}

	status := http.StatusBadGateway
	if errors.Is(err, survey.ErrMissingPath) || errors.Is(err, survey.ErrMalformedPath) {
		status = http.StatusBadRequest
	}
	s.renderPage(w, status, st)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

type healthResponse struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}
	return nil
}

// responseSink streams an artifact to the browser as an attachment.
type responseSink struct {
	w       http.ResponseWriter
	started bool
}

// Save implements export.Sink.
func (s *responseSink) Save(_ context.Context, a survey.Artifact) (string, error) {
	ct := a.ContentType
	if ct == "" {
		ct = docxContentType
	}

	h := s.w.Header()
	h.Set("Content-Type", ct)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename}))
	h.Set("Cache-Control", "no-store")
	if a.Size >= 0 {
		h.Set("Content-Length", strconv.FormatInt(a.Size, 10))
	}
	s.w.WriteHeader(http.StatusOK)
	s.started = true

	if _, err := io.Copy(s.w, a.Body); err != nil {
		return "", fmt.Errorf("stream %s: %w", a.Filename, err)
	}
	return "attachment:" + a.Filename, nil
}
