package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockContentCounter struct {
	n   int64
	err error
}

func (m *mockContentCounter) CountAll(_ context.Context) (int64, error) { return m.n, m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockContentCounter{n: 42})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
	if r.Checks["content"] != CheckOK {
		t.Errorf("expected content %q, got %q", CheckOK, r.Checks["content"])
	}
}

func TestCheck_DBError(t *testing.T) {
	svc := New(&mockDBPinger{err: errors.New("conn refused")}, &mockContentCounter{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
	if r.Checks["content"] != CheckOK {
		t.Errorf("expected content %q, got %q", CheckOK, r.Checks["content"])
	}
}

func TestCheck_ContentError(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockContentCounter{err: errors.New("no such table")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
	if r.Checks["content"] != CheckError {
		t.Errorf("expected content %q, got %q", CheckError, r.Checks["content"])
	}
}

func TestCheck_NoContentCounter(t *testing.T) {
	svc := New(&mockDBPinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["content"]; ok {
		t.Error("content check should be absent when counter is nil")
	}
}
