package transport

import "testing"

type extraItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Skip string `json:"-"`
}

func TestDecodeExtra(t *testing.T) {
	data := []byte(`{"id": 3, "name": "Q1", "quarter_label": "FY24", "owner": 9}`)
	var item extraItem
	extra, err := DecodeExtra(data, &item)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if item.ID != 3 || item.Name != "Q1" {
		t.Fatalf("unexpected item %+v", item)
	}
	if len(extra) != 2 {
		t.Fatalf("expected two unknown fields, got %v", extra)
	}
	if string(extra["quarter_label"]) != `"FY24"` {
		t.Fatalf("unexpected raw value %s", extra["quarter_label"])
	}
	if _, ok := extra["name"]; ok {
		t.Fatal("known fields must not land in extra")
	}
}

func TestDecodeExtraNoUnknownFields(t *testing.T) {
	var item extraItem
	extra, err := DecodeExtra([]byte(`{"id": 1, "name": "x"}`), &item)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(extra) != 0 {
		t.Fatalf("expected no extras, got %v", extra)
	}
}
