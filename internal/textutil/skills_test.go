package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_CuratedVocabulary(t *testing.T) {
	text := "5 years Python and React experience, built REST APIs with PostgreSQL"

	skills := ExtractSkills(text)

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "React")
	assert.Contains(t, skills, "PostgreSQL")
	assert.Contains(t, skills, "REST")
}

func TestExtractSkills_CaseInsensitiveMatching(t *testing.T) {
	skills := ExtractSkills("experience with KUBERNETES, terraform and graphql")

	lowered := make([]string, len(skills))
	for i, s := range skills {
		lowered[i] = strings.ToLower(s)
	}
	assert.Contains(t, lowered, "kubernetes")
	assert.Contains(t, lowered, "terraform")
	assert.Contains(t, lowered, "graphql")
}

func TestExtractSkills_CapitalizedTokenFallback(t *testing.T) {
	// Memcached is not in the curated vocabulary; the capitalized-token
	// heuristic should still catch it.
	skills := ExtractSkills("Deployed Memcached clusters behind Redis")

	assert.Contains(t, skills, "Memcached")
	assert.Contains(t, skills, "Redis")
}

func TestExtractSkills_EmptyAndNoise(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
	assert.Empty(t, ExtractSkills("the quick brown fox jumps over a lazy dog"))
}

func TestExtractSkills_CapAt100(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 300; i++ {
		sb.WriteString("Tool")
		sb.WriteRune(rune('A' + i%26))
		sb.WriteString(strings.Repeat("x", i/26+1))
		sb.WriteString(" ")
	}

	skills := ExtractSkills(sb.String())

	assert.LessOrEqual(t, len(skills), 100)
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := "Python developer with Docker, Kubernetes, PostgreSQL and GraphQL"
	first := ExtractSkills(text)

	second := ExtractSkills(strings.Join(first, ", "))

	// Re-extracting from the extracted set must not grow it.
	firstSet := make(map[string]bool)
	for _, s := range first {
		firstSet[strings.ToLower(s)] = true
	}
	for _, s := range second {
		assert.True(t, firstSet[strings.ToLower(s)], "unexpected new skill %q", s)
	}
}

func TestMatchPercentage(t *testing.T) {
	tests := []struct {
		name     string
		a        []string
		b        []string
		expected float64
	}{
		{
			name:     "full overlap",
			a:        []string{"Python", "React", "PostgreSQL"},
			b:        []string{"Python", "React", "PostgreSQL"},
			expected: 100.0,
		},
		{
			name:     "partial overlap",
			a:        []string{"Python"},
			b:        []string{"Python", "React"},
			expected: 50.0,
		},
		{
			name:     "case insensitive",
			a:        []string{"python"},
			b:        []string{"Python"},
			expected: 100.0,
		},
		{
			name:     "empty required side",
			a:        []string{"Python"},
			b:        nil,
			expected: 0.0,
		},
		{
			name:     "empty candidate side",
			a:        nil,
			b:        []string{"Python"},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MatchPercentage(tt.a, tt.b), 0.001)
		})
	}
}

func TestMatchPercentage_Asymmetric(t *testing.T) {
	resume := []string{"Python", "React", "Go", "Rust"}
	job := []string{"Python", "React"}

	// Denominator is always the required (second) side.
	assert.InDelta(t, 100.0, MatchPercentage(resume, job), 0.001)
	assert.InDelta(t, 50.0, MatchPercentage(job, resume), 0.001)
}

func TestIntersectionAndDifference(t *testing.T) {
	resume := []string{"Python", "React"}
	job := []string{"Python", "React", "PostgreSQL", "Kafka"}

	assert.Equal(t, []string{"Python", "React"}, Intersection(resume, job, 25))
	assert.Equal(t, []string{"Kafka", "PostgreSQL"}, Difference(resume, job, 25))
}

func TestIntersection_Limit(t *testing.T) {
	items := []string{"A1", "B2", "C3", "D4"}

	assert.Len(t, Intersection(items, items, 2), 2)
	assert.Len(t, Difference(nil, items, 3), 3)
}
