package credentials

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store is the pluggable credential store owned by the host
// application (browser local storage, keychain, test map). The client
// only ever reads from it.
type Store interface {
	Get(key string) string
}

// MapStore is the in-memory Store used by tests and one-off scripts.
type MapStore map[string]string

func (s MapStore) Get(key string) string { return s[key] }

// DefaultKeys is the lookup order over credential store keys.
var DefaultKeys = []string{"access_token", "access", "token"}

// Source produces the current bearer token. No caching, no refresh:
// every call re-reads the store so a concurrent logout is observed on
// the next request.
type Source struct {
	store Store
	keys  []string
}

// NewSource falls back to DefaultKeys when no keys are given.
func NewSource(store Store, keys ...string) *Source {
	if len(keys) == 0 {
		keys = DefaultKeys
	}
	return &Source{store: store, keys: keys}
}

// Token returns the first non-empty value in key order, or "".
func (s *Source) Token() string {
	if s == nil || s.store == nil {
		return ""
	}
	for _, key := range s.keys {
		if value := s.store.Get(key); value != "" {
			return value
		}
	}
	return ""
}

// Claims is the subset of the backend's JWT payload the client reads.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Inspect parses a bearer token as a JWT without verifying the
// signature; the client holds no signing secret and the server stays
// authoritative. ok is false when the token is not a JWT at all.
func Inspect(token string) (*Claims, bool) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// Expired reports whether token is a JWT whose exp claim is before
// now. Opaque tokens and JWTs without exp are never considered
// expired here.
func Expired(token string, now time.Time) bool {
	claims, ok := Inspect(token)
	if !ok || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Before(now)
}
