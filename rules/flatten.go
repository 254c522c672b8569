package rules

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FlattenErrorBody renders a structured error body for display.
// Strings pass through, field→messages maps become one
// "field: messages" line per field, anything else is JSON-encoded.
// fallback covers nil bodies and encoding failures.
//
// Map entries are emitted in sorted key order so the output is
// deterministic.
func FlattenErrorBody(body any, fallback string) string {
	switch value := body.(type) {
	case nil:
		return fallback
	case string:
		return value
	case map[string]any:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(keys))
		for _, key := range keys {
			lines = append(lines, key+": "+joinFieldMessages(value[key]))
		}
		return strings.Join(lines, "\n")
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fallback
		}
		return string(encoded)
	}
}

func joinFieldMessages(value any) string {
	switch messages := value.(type) {
	case string:
		return messages
	case []any:
		parts := make([]string, 0, len(messages))
		for _, message := range messages {
			parts = append(parts, fmt.Sprint(message))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(messages)
	}
}
