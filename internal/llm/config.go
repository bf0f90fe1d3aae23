// Package llm wraps the remote completion service: model configuration and
// fallback chain, mock mode for credential-less operation, tolerant JSON
// extraction from free-form model output, and the higher-level analysis
// operations built on top.
package llm

// Default token budgets for completion calls.
const (
	// DefaultMaxTokens bounds ordinary structured-extraction responses.
	DefaultMaxTokens int32 = 4000
	// MatchMaxTokens bounds match-analysis responses, which carry several
	// keyword and suggestion lists.
	MatchMaxTokens int32 = 6000
)

// Config holds the completion-service model configuration. PrimaryModel is
// attempted first; FallbackModels are tried in order when an attempt fails
// with a model-unavailable signature.
type Config struct {
	PrimaryModel   string
	FallbackModels []string
}

// DefaultConfig returns the stock Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		PrimaryModel: "gemini-2.5-flash",
		FallbackModels: []string{
			"gemini-2.5-flash-lite",
			"gemini-2.0-flash",
			"gemini-1.5-flash",
			"gemini-1.5-pro",
		},
	}
}

// Chain returns the full ordered attempt list starting from the given sticky
// model, de-duplicated, preserving order.
func (c *Config) Chain(sticky string) []string {
	models := make([]string, 0, len(c.FallbackModels)+2)
	seen := make(map[string]bool)
	for _, model := range append([]string{sticky, c.PrimaryModel}, c.FallbackModels...) {
		if model == "" || seen[model] {
			continue
		}
		seen[model] = true
		models = append(models, model)
	}
	return models
}
