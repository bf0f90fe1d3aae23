package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_Tiers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "fenced with language tag",
			raw:  "Here is the result:\n```json\n{\"overall_match_score\": 72}\n```\nHope that helps!",
		},
		{
			name: "fenced without language tag",
			raw:  "```\n{\"overall_match_score\": 72}\n```",
		},
		{
			name: "prose wrapped braces",
			raw:  "Sure! The analysis is {\"overall_match_score\": 72} as requested.",
		},
		{
			name: "raw object",
			raw:  `{"overall_match_score": 72}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExtractJSON(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, float64(72), result["overall_match_score"])
		})
	}
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	raw := "Result: {\"scores\": {\"skills\": 80}, \"note\": \"ok\"} done"
	result, err := ExtractJSON(raw)
	require.NoError(t, err)

	scores, ok := result["scores"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(80), scores["skills"])
}

func TestExtractJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no json at all", "I could not produce a result."},
		{"malformed object", "{\"overall_match_score\": }"},
		{"empty string", ""},
		{"array not object", "[1, 2, 3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractJSON(tt.raw)
			require.Error(t, err)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseError_PreviewTruncated(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}

	_, err := ExtractJSON(string(long))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "...")
	assert.Less(t, len(err.Error()), 400)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Len(t, parseErr.Raw, 1000)
}
