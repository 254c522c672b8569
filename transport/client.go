package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenSource yields the current bearer token, empty when absent. The
// underlying store may be mutated concurrently (logout replaces the
// token); each request simply reads the value current at send time.
type TokenSource interface {
	Token() string
}

// Client performs single HTTP requests against the backend API and
// normalizes responses. It holds no state between calls.
type Client struct {
	HTTPClient *http.Client

	base   string
	tokens TokenSource
}

// NewClient trims any trailing slash from base. tokens may be nil for
// unauthenticated use.
func NewClient(base string, tokens TokenSource) *Client {
	return &Client{
		HTTPClient: &http.Client{},
		base:       strings.TrimRight(base, "/"),
		tokens:     tokens,
	}
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.base }

// Do issues a single request and returns the raw response body, nil
// when the body is empty. Non-2xx responses become a *Error carrying
// the status and the normalized body; a missing response becomes a
// *Error with zero status.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, JoinURL(c.base, path), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, ErrCancelled)
		}
		return nil, &Error{Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, ErrCancelled)
		}
		return nil, &Error{Message: err.Error(), Status: resp.StatusCode, cause: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(bytes.TrimSpace(raw)) == 0 {
			return nil, nil
		}
		return raw, nil
	}

	parsed := ParseBody(raw)
	return nil, &Error{
		Message: errorMessage(parsed, resp.StatusCode),
		Status:  resp.StatusCode,
		Body:    parsed,
	}
}

// DoValue is Do with the success body normalized the same way error
// bodies are: decoded JSON, raw string for non-JSON text, nil when
// empty.
func (c *Client) DoValue(ctx context.Context, method, path string, payload any) (any, error) {
	raw, err := c.Do(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	return ParseBody(raw), nil
}

func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, payload)
}

func (c *Client) Put(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPut, path, payload)
}

func (c *Client) Patch(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPatch, path, payload)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil)
	return err
}

// ParseBody normalizes a response body: valid JSON decodes to its
// value, non-JSON text stays a string, empty becomes nil.
func ParseBody(raw []byte) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return string(raw)
	}
	return value
}
