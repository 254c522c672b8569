package transport

import (
	"errors"
	"net/http"
)

// ErrCancelled marks a request aborted through its context. It is a
// distinct kind from *Error so callers can tell cooperative
// cancellation apart from transport or server failures.
var ErrCancelled = errors.New("request cancelled")

// ErrNoCandidates is returned by PostFallback when the candidate path
// list is empty.
var ErrNoCandidates = errors.New("no candidate paths")

// Error is the structured error surfaced for every failed request.
//
// Status is the HTTP status code, or zero when no response was
// received at all. Body is the normalized response body: a string for
// non-JSON text, a decoded value for JSON, nil when empty.
type Error struct {
	Message string
	Status  int
	Body    any
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// errorMessage derives the one-line message for a failed response:
// body.detail, then body.message, then the status text, then a
// generic fallback.
func errorMessage(body any, status int) string {
	if m, ok := body.(map[string]any); ok {
		if detail, ok := m["detail"].(string); ok && detail != "" {
			return detail
		}
		if msg, ok := m["message"].(string); ok && msg != "" {
			return msg
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "Request failed"
}
