package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/LJTian/RiskRadar/internal/collector"
)

type stubSource struct {
	name string
	fail bool

	mu    sync.Mutex
	calls int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) FetchLatest(_ context.Context) ([]collector.Item, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.fail {
		return nil, errors.New("upstream down")
	}
	return []collector.Item{{ID: s.name + ":1", Source: s.name, Severity: 4}}, nil
}

func (s *stubSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestRunOnceFetchesAllSourcesAndSurvivesFailures(t *testing.T) {
	ok := &stubSource{name: "ok-source"}
	bad := &stubSource{name: "bad-source", fail: true}

	s, err := New("", []collector.Source{ok, bad})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// 坏源只记日志，不影响本轮其它源
	s.RunOnce()

	if ok.callCount() != 1 {
		t.Fatalf("ok source calls = %d, want 1", ok.callCount())
	}
	if bad.callCount() != 1 {
		t.Fatalf("bad source calls = %d, want 1", bad.callCount())
	}
}

func TestNewRejectsInvalidCronSpec(t *testing.T) {
	if _, err := New("definitely not cron", nil); err == nil {
		t.Fatalf("expected error for invalid cron spec")
	}
}
