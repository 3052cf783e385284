package route

import (
	"encoding/json"
	"net/url"
	"strings"
)

// prefillPrefix marks query parameters that seed create-form defaults.
const prefillPrefix = "prefill."

// ParsePrefill extracts "prefill.<field>=<value>" query parameters into a
// default-values map for create routes.
//
// Values that look like JSON literals (true, false, null, numbers, arrays,
// objects) are decoded as such; everything else stays a string. A value
// that looks like JSON but fails to decode is kept as a string rather
// than dropped.
func ParsePrefill(query url.Values) map[string]any {
	var defaults map[string]any
	for key, values := range query {
		if !strings.HasPrefix(key, prefillPrefix) || len(values) == 0 {
			continue
		}
		field := strings.TrimPrefix(key, prefillPrefix)
		if field == "" {
			continue
		}
		if defaults == nil {
			defaults = make(map[string]any)
		}
		defaults[field] = parsePrefillValue(values[0])
	}
	return defaults
}

// parsePrefillValue decodes a raw query value.
func parsePrefillValue(raw string) any {
	if !looksLikeJSON(raw) {
		return raw
	}
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return raw
	}
	return decoded
}

// looksLikeJSON reports whether the value resembles a JSON literal worth
// attempting to decode. Quoted strings are deliberately excluded: a user
// typing `"bob"` into a URL almost always means the literal text.
func looksLikeJSON(s string) bool {
	if s == "true" || s == "false" || s == "null" {
		return true
	}
	if s == "" {
		return false
	}
	switch s[0] {
	case '[', '{':
		return true
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return false
}
