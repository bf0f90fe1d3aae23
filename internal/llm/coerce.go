package llm

import (
	"fmt"
	"math"
)

// clampScore bounds a score to the 0-100 scale.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// round2 rounds to two decimal places for presentation-stable scores.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// getNumber returns the first numeric value found under the given keys,
// clamped to 0-100. Non-numeric or missing values count as zero.
func getNumber(m map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := m[key].(type) {
		case float64:
			return clampScore(v)
		case int:
			return clampScore(float64(v))
		}
	}
	return 0
}

// getList coerces a response field to a string list. A bare string becomes a
// single-element list; anything else yields nil.
func getList(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			} else if item != nil {
				out = append(out, fmt.Sprintf("%v", item))
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// getString returns a string field or empty.
func getString(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// getStringMap flattens an object field into string keys and values.
func getStringMap(m map[string]any, key string) map[string]string {
	obj, ok := m[key].(map[string]any)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(obj))
	for k, v := range obj {
		if s, ok := v.(string); ok {
			out[k] = s
		} else if v != nil {
			out[k] = fmt.Sprintf("%v", v)
		}
	}
	return out
}

// errorMessage extracts a provider error message from a parsed response,
// whether it arrived as a plain string or a nested error object.
func errorMessage(m map[string]any) string {
	switch v := m["error"].(type) {
	case string:
		return v
	case map[string]any:
		return getString(v, "message")
	default:
		return ""
	}
}

// capStrings truncates a list to at most n entries.
func capStrings(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
