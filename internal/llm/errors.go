package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable marks network, timeout, and authentication failures talking
// to the completion service. Callers treat it as "switch to heuristics", not
// as a fault to propagate.
var ErrUnavailable = errors.New("completion service unavailable")

// ParseError reports that a completion response was not recoverable JSON by
// any extraction tier. Raw preserves the full model output so callers can
// always inspect what the model produced.
type ParseError struct {
	Raw   string
	Cause error
}

func (e *ParseError) Error() string {
	preview := e.Raw
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	return fmt.Sprintf("failed to parse completion response: %v (response: %s)", e.Cause, preview)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// modelUnsupportedSignatures are the provider error-text fragments that mean
// "this model identifier no longer works, try the next one". Anything else
// terminates the fallback chain immediately.
var modelUnsupportedSignatures = []string{
	"decommissioned",
	"model_decommissioned",
	"not supported",
	"not found",
	"deprecated",
}

// IsModelUnsupported reports whether an error message carries a retryable
// model-unavailable signature.
func IsModelUnsupported(message string) bool {
	lower := strings.ToLower(message)
	for _, sig := range modelUnsupportedSignatures {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}
