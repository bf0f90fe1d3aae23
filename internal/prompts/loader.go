// Package prompts holds the completion prompt templates, one embedded JSON
// file per concern: analysis.json (scoring, parsing, optimization),
// interview.json (question and Q&A generation), ats.json (ATS rubric).
// Templates are bound to package-level variables at startup and rendered
// with Format before each completion call.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var templateFiles embed.FS

var (
	parsedMu sync.Mutex
	parsed   = make(map[string]map[string]string)
)

// MustGet returns the template stored under key in the named embedded file.
// Every template is referenced from a package-level variable, so a missing
// file or key is a packaging mistake and panics at startup rather than
// surfacing mid-request.
func MustGet(filename, key string) string {
	templates, err := parseFile(filename)
	if err != nil {
		panic(err)
	}
	template, ok := templates[key]
	if !ok {
		panic(fmt.Sprintf("prompt template %q missing from %s", key, filename))
	}
	return template
}

// Format substitutes {{.Name}} placeholders with the supplied values. A
// placeholder with no value is left in place so a mismatched call site shows
// up verbatim in the outgoing prompt instead of being silently dropped.
func Format(template string, values map[string]string) string {
	for name, value := range values {
		template = strings.ReplaceAll(template, "{{."+name+"}}", value)
	}
	return template
}

// parseFile decodes one embedded template file, at most once.
func parseFile(filename string) (map[string]string, error) {
	parsedMu.Lock()
	defer parsedMu.Unlock()

	if templates, ok := parsed[filename]; ok {
		return templates, nil
	}

	data, err := templateFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read prompt file %s: %w", filename, err)
	}
	templates := make(map[string]string)
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("parse prompt file %s: %w", filename, err)
	}
	parsed[filename] = templates
	return templates, nil
}
