package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

const govukSampleDoc = `{
	"title": "South Africa travel advice",
	"base_path": "/foreign-travel-advice/south-africa",
	"public_updated_at": "2026-02-01T10:00:00Z",
	"details": {
		"summary": "<p>General advice body</p>",
		"change_description": "Updated information on protests in Cape Town",
		"latest_update": {"published": "2026-02-20T09:30:00Z"}
	}
}`

func TestGovUKAdviceFetchLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/content/foreign-travel-advice/south-africa" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, govukSampleDoc)
	}))
	defer srv.Close()

	g := NewGovUKAdvice("south-africa")
	g.BaseURL = srv.URL

	items, err := g.FetchLatest(context.Background())
	if err != nil {
		t.Fatalf("FetchLatest error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly 1 item, got %d", len(items))
	}

	it := items[0]
	if it.ID != "government-advice:south-africa" {
		t.Fatalf("ID = %q", it.ID)
	}
	if it.Source != "government-advice" {
		t.Fatalf("Source = %q", it.Source)
	}
	// latest_update.published 优先于 public_updated_at
	if it.TS != "2026-02-20T09:30:00Z" {
		t.Fatalf("TS = %q", it.TS)
	}
	if it.Summary != "Updated information on protests in Cape Town" {
		t.Fatalf("Summary = %q", it.Summary)
	}
	if it.Severity != 3 {
		t.Fatalf("Severity = %d, want 3", it.Severity)
	}
	if len(it.Links) != 1 || it.Links[0] != srv.URL+"/foreign-travel-advice/south-africa" {
		t.Fatalf("Links = %v", it.Links)
	}
}

func TestGovUKAdviceFallbackChains(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(at))
	defer SetClock(nil)

	// latest_update 缺失时退回 public_updated_at，change_description 缺失时退回 summary
	partial := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"public_updated_at":"2026-01-15T08:00:00Z","details":{"summary":"Summary text"}}`)
	}))
	defer partial.Close()

	g := NewGovUKAdvice("south-africa")
	g.BaseURL = partial.URL

	items, err := g.FetchLatest(context.Background())
	if err != nil {
		t.Fatalf("FetchLatest error: %v", err)
	}
	if items[0].TS != "2026-01-15T08:00:00Z" {
		t.Fatalf("TS = %q, want public_updated_at fallback", items[0].TS)
	}
	if items[0].Summary != "Summary text" {
		t.Fatalf("Summary = %q, want details.summary fallback", items[0].Summary)
	}

	// 全空文档：时间退回当前时间，摘要退回占位文案
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer empty.Close()

	g.BaseURL = empty.URL
	items, err = g.FetchLatest(context.Background())
	if err != nil {
		t.Fatalf("FetchLatest error: %v", err)
	}
	it := items[0]
	if it.TS != "2026-03-01T12:00:00Z" {
		t.Fatalf("TS = %q, want injected now", it.TS)
	}
	if it.Summary != "Travel advice updated" {
		t.Fatalf("Summary = %q, want placeholder", it.Summary)
	}
	if len(it.Links) != 0 {
		t.Fatalf("Links = %v, want empty", it.Links)
	}
}

func TestGovUKAdviceUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGovUKAdvice("south-africa")
	g.BaseURL = srv.URL

	if _, err := g.FetchLatest(context.Background()); err == nil {
		t.Fatalf("expected error for 500 upstream")
	}
}
