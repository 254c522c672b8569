package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// PostFallback posts payload to each candidate path in rank order and
// returns the normalized body of the first success. Backend URL
// schemes vary between kebab-case, snake_case, nested action routes
// and flat collection routes; probing hides that variance.
//
// Non-success responses and transport failures are retained and the
// last one is returned after the list is exhausted. Only 2xx counts
// as success. Cancellation stops the probe immediately.
func (c *Client) PostFallback(ctx context.Context, paths []string, payload any) (any, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("post fallback: %w", ErrNoCandidates)
	}

	var lastErr error
	for _, path := range paths {
		raw, err := c.Do(ctx, http.MethodPost, path, payload)
		if err == nil {
			return ParseBody(raw), nil
		}
		if errors.Is(err, ErrCancelled) {
			return nil, err
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = &Error{Message: "All POST paths failed"}
	}
	return nil, lastErr
}
