// Package fakeapi is an in-memory stand-in for the performance
// backend, used by the client tests. It speaks the same URL scheme
// and DRF-style error bodies. Action routes are registered under a
// single deliberately chosen alias each (kebab-case or snake_case) so
// fallback dispatch gets exercised against realistic 404s.
package fakeapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	Router chi.Router

	mu          sync.Mutex
	nextID      int64
	stores      map[string]map[int64]map[string]any
	requests    []string
	failPaths   []string
	requireAuth bool
}

func New() *Server {
	s := &Server{
		nextID: 100,
		stores: map[string]map[int64]map[string]any{},
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(middleware.StripSlashes)
	r.Use(s.gate)
	s.routes(r)
	s.Router = r
	return s
}

// RequireAuth makes every endpoint demand a bearer token.
func (s *Server) RequireAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requireAuth = true
}

// FailPath forces 500 responses for any request whose path starts
// with prefix, so settled-fetch behavior can be tested per slot.
func (s *Server) FailPath(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failPaths = append(s.failPaths, prefix)
}

// Requests returns the "<METHOD> <path>" log since the last reset.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// Seed inserts an item into a named store and returns its id.
// Resource names: cycles, reviews, self_assessments, manager_reviews,
// peer_feedback, goals, milestones, kpis, categories, comments,
// progress_updates.
func (s *Server) Seed(resource string, fields map[string]any) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.insertLocked(resource, fields)
	return item["id"].(int64)
}

// Item returns a stored item for assertions, nil when absent.
func (s *Server) Item(resource string, id int64) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.storeLocked(resource)[id]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		requireAuth := s.requireAuth
		failPaths := s.failPaths
		s.mu.Unlock()

		for _, prefix := range failPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
		}
		if requireAuth {
			header := r.Header.Get("Authorization")
			parts := strings.Split(header, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
				writeError(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) storeLocked(name string) map[int64]map[string]any {
	store, ok := s.stores[name]
	if !ok {
		store = map[int64]map[string]any{}
		s.stores[name] = store
	}
	return store
}

func (s *Server) insertLocked(name string, fields map[string]any) map[string]any {
	s.nextID++
	item := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		item[k] = v
	}
	item["id"] = s.nextID
	s.storeLocked(name)[s.nextID] = item
	return item
}

func (s *Server) listLocked(name string) []map[string]any {
	store := s.storeLocked(name)
	ids := make([]int64, 0, len(store))
	for id := range store {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	items := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		items = append(items, store[id])
	}
	return items
}

func itemID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func decodeBody(r *http.Request) (map[string]any, error) {
	defer r.Body.Close()
	fields := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

func writeFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusBadRequest, fields)
}

// asID tolerates ids decoded as float64 from JSON bodies.
func asID(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		id, _ := v.Int64()
		return id
	default:
		return 0
	}
}

func asFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
