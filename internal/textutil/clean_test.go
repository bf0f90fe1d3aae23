package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanForPrompt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses whitespace",
			input:    "hello\n\n  world\t!",
			expected: "hello world !",
		},
		{
			name:     "strips odd characters",
			input:    "salary: $100k @ <remote>",
			expected: "salary 100k remote",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanForPrompt(tt.input))
		})
	}
}

func TestCleanForPrompt_Truncates(t *testing.T) {
	long := strings.Repeat("a", 10000)

	cleaned := CleanForPrompt(long)

	assert.Equal(t, maxPromptChars+3, len(cleaned)) // "..." suffix
	assert.True(t, strings.HasSuffix(cleaned, "..."))
}

func TestCountActionVerbs(t *testing.T) {
	text := "Developed services, implemented pipelines, optimized queries"

	assert.Equal(t, 3, CountActionVerbs(text))
	assert.Equal(t, 0, CountActionVerbs("attended meetings"))
}

func TestCountImpactSignals(t *testing.T) {
	// "%" and "increased" markers plus 2 digits (no digit points under 5).
	assert.Equal(t, 2, CountImpactSignals("increased throughput by 25%"))
	assert.Equal(t, 0, CountImpactSignals("responsible for things"))
}

func TestCountBullets(t *testing.T) {
	text := "Summary\n- did a thing\n- did another\n* and more\n• last"

	assert.Equal(t, 4, CountBullets(text))
}

func TestAverageSentenceLength(t *testing.T) {
	assert.InDelta(t, 5.0, AverageSentenceLength("abcde.fghij."), 0.001)
	assert.InDelta(t, 1.0, AverageSentenceLength(""), 0.001)
}

func TestWordOverlapRatio(t *testing.T) {
	assert.InDelta(t, 100.0, WordOverlapRatio("go redis kafka", "go redis kafka"), 0.001)
	assert.InDelta(t, 50.0, WordOverlapRatio("go extra words", "go redis"), 0.001)
	assert.InDelta(t, 0.0, WordOverlapRatio("anything", ""), 0.001)
}
