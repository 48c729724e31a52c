package webapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestGetJSONRetriesRateLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient("test", server.Client(), nil)

	var payload struct {
		OK bool `json:"ok"`
	}
	if err := client.GetJSON(context.Background(), server.URL, &payload); err != nil {
		t.Fatalf("GetJSON error: %v", err)
	}

	if !payload.OK {
		t.Fatal("expected decoded payload")
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", calls.Load())
	}
}

func TestGetJSONTerminalStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test", server.Client(), nil)

	var payload any
	if err := client.GetJSON(context.Background(), server.URL, &payload); err == nil {
		t.Fatal("expected error for terminal status")
	}

	if calls.Load() != 1 {
		t.Fatalf("non-rate-limit statuses must not be retried, got %d calls", calls.Load())
	}
}

func TestGetJSONBadPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient("test", server.Client(), nil)

	var payload map[string]any
	if err := client.GetJSON(context.Background(), server.URL, &payload); err == nil {
		t.Fatal("expected decode error")
	}
}
