package credentials

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	return token
}

func TestSourceKeyOrder(t *testing.T) {
	store := MapStore{"access": "second", "token": "third"}
	if got := NewSource(store).Token(); got != "second" {
		t.Fatalf("expected the access key to win, got %q", got)
	}

	store["access_token"] = "first"
	if got := NewSource(store).Token(); got != "first" {
		t.Fatalf("expected access_token to win, got %q", got)
	}
}

func TestSourceSkipsEmptyValues(t *testing.T) {
	store := MapStore{"access_token": "", "token": "fallback"}
	if got := NewSource(store).Token(); got != "fallback" {
		t.Fatalf("expected empty keys to be skipped, got %q", got)
	}
}

func TestSourceEmptyStore(t *testing.T) {
	if got := NewSource(MapStore{}).Token(); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
	if got := NewSource(nil).Token(); got != "" {
		t.Fatalf("expected empty token from nil store, got %q", got)
	}
}

func TestSourceCustomKeys(t *testing.T) {
	store := MapStore{"access_token": "standard", "session": "custom"}
	if got := NewSource(store, "session").Token(); got != "custom" {
		t.Fatalf("expected the custom key, got %q", got)
	}
}

func TestSourceReadsStoreEveryCall(t *testing.T) {
	store := MapStore{"access_token": "before"}
	source := NewSource(store)
	if got := source.Token(); got != "before" {
		t.Fatalf("unexpected token %q", got)
	}
	store["access_token"] = ""
	if got := source.Token(); got != "" {
		t.Fatalf("logout must be observed, got %q", got)
	}
}

func TestInspect(t *testing.T) {
	token := signToken(t, Claims{UserID: 42})
	claims, ok := Inspect(token)
	if !ok {
		t.Fatal("expected a parseable JWT")
	}
	if claims.UserID != 42 {
		t.Fatalf("unexpected user id %d", claims.UserID)
	}

	if _, ok := Inspect("opaque-session-token"); ok {
		t.Fatal("opaque tokens must not parse as JWTs")
	}
}

func TestExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	past := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour))},
	})
	if !Expired(past, now) {
		t.Fatal("a token expired an hour ago must report expired")
	}

	future := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	})
	if Expired(future, now) {
		t.Fatal("a live token must not report expired")
	}

	noExp := signToken(t, Claims{UserID: 1})
	if Expired(noExp, now) {
		t.Fatal("a token without exp must not report expired")
	}

	if Expired("opaque-session-token", now) {
		t.Fatal("an opaque token must not report expired")
	}
}
