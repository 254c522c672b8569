package transport

import (
	"encoding/json"
	"reflect"
	"strings"
)

// DecodeExtra unmarshals data into v and returns the object members
// that do not correspond to any json-tagged field of v. Resource
// structs use it to keep unknown wire fields readable instead of
// silently dropping them.
func DecodeExtra(data []byte, v any) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		// Not a JSON object; nothing extra to keep.
		return nil, nil
	}
	for _, name := range jsonFieldNames(reflect.TypeOf(v)) {
		delete(all, name)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

func jsonFieldNames(t reflect.Type) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			names = append(names, jsonFieldNames(field.Type)...)
			continue
		}
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}
		names = append(names, name)
	}
	return names
}
