package route

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParsePrefillStrings(t *testing.T) {
	query, err := url.ParseQuery("prefill.name=bob&prefill.barberId=abc")
	if err != nil {
		t.Fatal(err)
	}

	got := ParsePrefill(query)
	want := map[string]any{"name": "bob", "barberId": "abc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParsePrefill = %#v, want %#v", got, want)
	}
}

func TestParsePrefillNumbers(t *testing.T) {
	query := url.Values{"prefill.count": {"5"}, "prefill.ratio": {"-2.5"}}

	got := ParsePrefill(query)
	if v, ok := got["count"].(float64); !ok || v != 5 {
		t.Errorf("count = %#v, want float64(5)", got["count"])
	}
	if v, ok := got["ratio"].(float64); !ok || v != -2.5 {
		t.Errorf("ratio = %#v, want float64(-2.5)", got["ratio"])
	}
}

func TestParsePrefillLiterals(t *testing.T) {
	query := url.Values{
		"prefill.active": {"true"},
		"prefill.hidden": {"false"},
		"prefill.owner":  {"null"},
	}

	got := ParsePrefill(query)
	if got["active"] != true {
		t.Errorf("active = %#v, want true", got["active"])
	}
	if got["hidden"] != false {
		t.Errorf("hidden = %#v, want false", got["hidden"])
	}
	if v, ok := got["owner"]; !ok || v != nil {
		t.Errorf("owner = %#v, want explicit nil", got["owner"])
	}
}

func TestParsePrefillArray(t *testing.T) {
	// prefill.tags=%5B%22a%22%2C%22b%22%5D is ["a","b"] URL-encoded.
	query, err := url.ParseQuery("prefill.tags=%5B%22a%22%2C%22b%22%5D")
	if err != nil {
		t.Fatal(err)
	}

	got := ParsePrefill(query)
	want := []any{"a", "b"}
	if !reflect.DeepEqual(got["tags"], want) {
		t.Errorf("tags = %#v, want %#v", got["tags"], want)
	}
}

func TestParsePrefillObject(t *testing.T) {
	query := url.Values{"prefill.meta": {`{"a":1}`}}

	got := ParsePrefill(query)
	obj, ok := got["meta"].(map[string]any)
	if !ok {
		t.Fatalf("meta = %#v, want object", got["meta"])
	}
	if obj["a"] != float64(1) {
		t.Errorf("meta.a = %#v, want 1", obj["a"])
	}
}

func TestParsePrefillMalformedJSONStaysString(t *testing.T) {
	query := url.Values{"prefill.broken": {"[1,2"}, "prefill.almost": {"12abc"}}

	got := ParsePrefill(query)
	if got["broken"] != "[1,2" {
		t.Errorf("broken = %#v, want raw string", got["broken"])
	}
	if got["almost"] != "12abc" {
		t.Errorf("almost = %#v, want raw string", got["almost"])
	}
}

func TestParsePrefillIgnoresOtherParams(t *testing.T) {
	query := url.Values{
		"page":     {"2"},
		"prefill.": {"empty-field"},
	}

	got := ParsePrefill(query)
	if got != nil {
		t.Errorf("Expected nil map for no usable prefill params, got %#v", got)
	}
}
