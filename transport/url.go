package transport

import (
	"fmt"
	"net/url"
	"strings"
)

// JoinURL joins a base URL with a relative path. Absolute paths pass
// through unchanged, an empty path returns the base, and exactly one
// slash separates base from path otherwise.
func JoinURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// EncodeQuery encodes params as an application/x-www-form-urlencoded
// query string prefixed with "?". Entries whose value is nil or an
// empty string are dropped; the result is empty when nothing remains.
func EncodeQuery(params map[string]any) string {
	values := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		text := fmt.Sprint(value)
		if text == "" {
			continue
		}
		values.Set(key, text)
	}
	encoded := values.Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}
