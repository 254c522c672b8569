package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostFallbackFirstSuccess(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	value, err := client.PostFallback(context.Background(), []string{"a/", "b/"}, map[string]any{"x": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := value.(map[string]any); body["ok"] != true {
		t.Fatalf("unexpected body %v", value)
	}
	if len(paths) != 1 || paths[0] != "/a/" {
		t.Fatalf("expected a single attempt on /a/, got %v", paths)
	}
}

func TestPostFallbackSecondCandidateWins(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/kpis/5/update-value/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"id": 5, "current_value": 42}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	value, err := client.PostFallback(context.Background(),
		[]string{"kpis/5/update-value/", "kpis/5/update_value/"},
		map[string]any{"current_value": 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := value.(map[string]any)
	if body["current_value"] != float64(42) {
		t.Fatalf("unexpected body %v", body)
	}
	if len(paths) != 2 {
		t.Fatalf("expected two attempts, got %v", paths)
	}
}

func TestPostFallbackReturnsLastError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/b/" {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"detail": "conflict on b"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "missing"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.PostFallback(context.Background(), []string{"a/", "b/"}, nil)
	var httpErr *Error
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if httpErr.Status != http.StatusConflict {
		t.Fatalf("expected the last failure, got status %d", httpErr.Status)
	}
	if httpErr.Message != "conflict on b" {
		t.Fatalf("unexpected message %q", httpErr.Message)
	}
}

func TestPostFallbackEmptyCandidates(t *testing.T) {
	client := NewClient("http://localhost:0", nil)
	_, err := client.PostFallback(context.Background(), nil, nil)
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestPostFallbackStopsOnCancellation(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.NotFound(w, r)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, nil)
	_, err := client.PostFallback(ctx, []string{"a/", "b/", "c/"}, nil)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if attempts != 0 {
		t.Fatalf("expected no attempts after cancellation, got %d", attempts)
	}
}
