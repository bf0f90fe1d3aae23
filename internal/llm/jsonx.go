package llm

import (
	"encoding/json"
	"strings"
)

// languageTags are fence labels models commonly emit before JSON payloads.
var languageTags = map[string]bool{
	"json":       true,
	"javascript": true,
	"ts":         true,
	"python":     true,
}

// ExtractJSON recovers a JSON object from free-form model output. Parsing
// proceeds through three tiers, stopping at the first success:
//
//  1. fenced code block: content between the first and last ``` fence, with
//     any leading language tag stripped;
//  2. the substring from the first '{' to the last '}';
//  3. the entire response verbatim.
//
// On total failure it returns a *ParseError carrying the raw text, never a
// bare error, so callers can always inspect the model output.
func ExtractJSON(raw string) (map[string]any, error) {
	var lastErr error

	if idx := strings.Index(raw, "```"); idx >= 0 {
		end := strings.LastIndex(raw, "```")
		if end > idx+3 {
			fenced := raw[idx+3 : end]
			if obj, err := parseObject(stripLanguageTag(fenced)); err == nil {
				return obj, nil
			} else {
				lastErr = err
			}
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		if obj, err := parseObject(raw[start : end+1]); err == nil {
			return obj, nil
		} else {
			lastErr = err
		}
	}

	if obj, err := parseObject(raw); err == nil {
		return obj, nil
	} else if lastErr == nil {
		lastErr = err
	}

	return nil, &ParseError{Raw: raw, Cause: lastErr}
}

// stripLanguageTag removes an optional fence label ("json", "python", ...)
// from the first line of fenced content.
func stripLanguageTag(fenced string) string {
	if idx := strings.Index(fenced, "\n"); idx >= 0 {
		if languageTags[strings.ToLower(strings.TrimSpace(fenced[:idx]))] {
			return fenced[idx+1:]
		}
	}
	return fenced
}

func parseObject(text string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}
