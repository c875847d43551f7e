package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockBackend struct {
	err error
}

func (m *mockBackend) Ping(_ context.Context) error { return m.err }

type mockDir struct {
	err error
}

func (m *mockDir) Check(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockBackend{}, &mockDir{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["backend"] != CheckOK {
		t.Errorf("expected backend %q, got %q", CheckOK, r.Checks["backend"])
	}
	if r.Checks["downloads"] != CheckOK {
		t.Errorf("expected downloads %q, got %q", CheckOK, r.Checks["downloads"])
	}
}

func TestCheck_BackendDown(t *testing.T) {
	svc := New(&mockBackend{err: errors.New("conn refused")}, &mockDir{})
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["backend"] != CheckError {
		t.Errorf("expected backend %q, got %q", CheckError, r.Checks["backend"])
	}
}

func TestCheck_DownloadsError(t *testing.T) {
	svc := New(&mockBackend{}, &mockDir{err: errors.New("read-only")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["downloads"] != CheckError {
		t.Errorf("expected downloads %q, got %q", CheckError, r.Checks["downloads"])
	}
}

func TestCheck_BothFail(t *testing.T) {
	svc := New(&mockBackend{err: errors.New("down")}, &mockDir{err: errors.New("ro")})
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
}

func TestCheck_NoDownloads(t *testing.T) {
	svc := New(&mockBackend{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["downloads"]; ok {
		t.Error("downloads check should be absent when not configured")
	}
}
