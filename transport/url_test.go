package transport

import "testing"

func TestJoinURL(t *testing.T) {
	cases := []struct {
		base, path, want string
	}{
		{"http://localhost:8000", "api/reviews/reviews/", "http://localhost:8000/api/reviews/reviews/"},
		{"http://localhost:8000", "/api/reviews/reviews/", "http://localhost:8000/api/reviews/reviews/"},
		{"http://localhost:8000", "///api/x/", "http://localhost:8000/api/x/"},
		{"http://localhost:8000", "", "http://localhost:8000"},
		{"http://localhost:8000", "https://other.example.com/api/", "https://other.example.com/api/"},
		{"http://localhost:8000", "http://other.example.com/api/", "http://other.example.com/api/"},
	}
	for _, c := range cases {
		if got := JoinURL(c.base, c.path); got != c.want {
			t.Fatalf("JoinURL(%q, %q) = %q, want %q", c.base, c.path, got, c.want)
		}
	}
}

func TestEncodeQueryDropsEmptyValues(t *testing.T) {
	got := EncodeQuery(map[string]any{
		"cycle":    3,
		"status":   "active",
		"employee": "",
		"reviewer": nil,
	})
	if got != "?cycle=3&status=active" {
		t.Fatalf("unexpected query %q", got)
	}
}

func TestEncodeQueryEmptyResult(t *testing.T) {
	if got := EncodeQuery(nil); got != "" {
		t.Fatalf("expected empty query, got %q", got)
	}
	if got := EncodeQuery(map[string]any{"a": "", "b": nil}); got != "" {
		t.Fatalf("expected empty query, got %q", got)
	}
}

func TestEncodeQueryEscapes(t *testing.T) {
	if got := EncodeQuery(map[string]any{"name": "Q3 2024"}); got != "?name=Q3+2024" {
		t.Fatalf("unexpected query %q", got)
	}
}
