// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/simple-poll/cliparse"
	"github.com/danielhkuo/simple-poll/models"
	"github.com/danielhkuo/simple-poll/render"
	"github.com/danielhkuo/simple-poll/store"
)

// TestQuestion is the question of the store returned by NewTestStore
const TestQuestion = "Where should we eat?"

// NewTestStore returns a store with options A, B and C and no votes
func NewTestStore() *store.Store {
	return store.New(TestQuestion, []models.Option{
		{Name: "A", Location: "https://maps.google.com/@19.4326,-99.1332,17z"},
		{Name: "B"},
		{Name: "C"},
	})
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		Env:          cliparse.EnvDev,
		SecretKey:    "test-secret",
		DatabaseType: "sqlite",
	}
}

// NewTestRenderer returns a dev renderer (no minification)
func NewTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()

	r, err := render.New(cliparse.EnvDev)
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}
	return r
}

// MakeFormRequest creates a URL-encoded form request
func MakeFormRequest(method, path string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 to location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusFound)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %q", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// MemoryAudit keeps audit events in memory.
// Set Err to make every Record and Recent call fail.
type MemoryAudit struct {
	mu     sync.Mutex
	events []models.Event
	Err    error
}

func (m *MemoryAudit) Record(ctx context.Context, ev models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.events = append(m.events, ev)
	return nil
}

// Recent returns up to limit events, newest first
func (m *MemoryAudit) Recent(ctx context.Context, limit int) ([]models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]models.Event, 0, limit)
	for i := len(m.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.events[i])
	}
	return out, nil
}

// Events returns every recorded event in insertion order
func (m *MemoryAudit) Events() []models.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Event, len(m.events))
	copy(out, m.events)
	return out
}

// RefreshCounter counts Refresh calls
type RefreshCounter struct {
	n atomic.Int32
}

func (c *RefreshCounter) Refresh() {
	c.n.Add(1)
}

func (c *RefreshCounter) Count() int {
	return int(c.n.Load())
}
