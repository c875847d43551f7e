package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the backend is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	backend   BackendPinger
	downloads DirChecker
}

// New creates a Service. downloads can be nil.
func New(backend BackendPinger, downloads DirChecker) *Service {
	return &Service{backend: backend, downloads: downloads}
}

// Check runs health checks against all components. Without the backend
// nothing works, so a backend failure is Unhealthy; anything else is Degraded.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	status := Healthy
	if err := s.backend.Ping(ctx); err != nil {
		checks["backend"] = CheckError
		status = Unhealthy
	} else {
		checks["backend"] = CheckOK
	}

	if s.downloads != nil {
		if err := s.downloads.Check(ctx); err != nil {
			checks["downloads"] = CheckError
			if status == Healthy {
				status = Degraded
			}
		} else {
			checks["downloads"] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks}
}
