package ats

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/job-match-engine/internal/llm"
	"github.com/jonathan/job-match-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockCompleter implements llm.Completer for testing
type MockCompleter struct {
	CompleteFunc func(ctx context.Context, prompt string, maxTokens int32, model string) (string, error)
	MockMode     bool
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string, maxTokens int32, model string) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, maxTokens, model)
	}
	return "{}", nil
}

func (m *MockCompleter) Model() string { return "mock-model" }
func (m *MockCompleter) Mock() bool    { return m.MockMode }
func (m *MockCompleter) Close() error  { return nil }

const strongResume = `Jane Smith
jane@example.com

SUMMARY
Senior engineer with 8 years of experience.

SKILLS
Python, Go, PostgreSQL, Docker, Kubernetes, AWS, React

EXPERIENCE
Senior Engineer, Acme (2019-2024)
- Developed payment APIs in Go handling 5M requests/day
- Implemented caching with Redis, reduced p99 latency by 45%
- Optimized PostgreSQL queries, cutting costs by $120k/year
- Led migration to Kubernetes across 30 services
- Improved deploy frequency by 300% with CI/CD automation

PROJECTS
Open-source contributor to several Go libraries.

EDUCATION
B.S. Computer Science, 2015`

const weakResume = `i did some computer stuff at my last workplace and it was fine and i also helped people sometimes with things when they asked me nicely because that is just who i am as a person`

func TestEvaluate_EmptyInput(t *testing.T) {
	evaluator := New(llm.NewAnalyzer(&MockCompleter{MockMode: true}, nil))

	result := evaluator.Evaluate(context.Background(), "   \n")

	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, types.SourceHeuristic, result.Source)
	assert.NotEmpty(t, result.Weaknesses)
	assert.NotEmpty(t, result.Error)
}

func TestEvaluate_HeuristicMockMode(t *testing.T) {
	evaluator := New(llm.NewAnalyzer(&MockCompleter{MockMode: true}, nil))

	result := evaluator.Evaluate(context.Background(), strongResume)

	assert.Equal(t, types.SourceHeuristic, result.Source)
	assert.Empty(t, result.Error)

	for _, score := range []float64{
		result.StructureScore, result.KeywordScore, result.SkillsScore,
		result.ReadabilityScore, result.ImpactScore, result.OverallScore,
	} {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}

	// All five standard sections plus verbs, skills, and numbers are present.
	assert.GreaterOrEqual(t, result.StructureScore, 70.0)
	assert.Greater(t, result.KeywordScore, 0.0)
	assert.Greater(t, result.SkillsScore, 50.0)
	assert.Greater(t, result.ImpactScore, 50.0)
	assert.NotEmpty(t, result.Strengths)
	assert.NotEmpty(t, result.Weaknesses)
	assert.NotEmpty(t, result.Recommendations)
}

func TestEvaluate_StrongBeatsWeak(t *testing.T) {
	evaluator := New(llm.NewAnalyzer(&MockCompleter{MockMode: true}, nil))

	strong := evaluator.Evaluate(context.Background(), strongResume)
	weak := evaluator.Evaluate(context.Background(), weakResume)

	assert.Greater(t, strong.OverallScore, weak.OverallScore)
	assert.Greater(t, strong.StructureScore, weak.StructureScore)
	assert.Greater(t, strong.ImpactScore, weak.ImpactScore)
}

func TestEvaluate_Deterministic(t *testing.T) {
	evaluator := New(llm.NewAnalyzer(&MockCompleter{MockMode: true}, nil))

	first := evaluator.Evaluate(context.Background(), strongResume)
	second := evaluator.Evaluate(context.Background(), strongResume)

	assert.Equal(t, first, second)
}

func TestEvaluate_AIPath(t *testing.T) {
	client := &MockCompleter{
		CompleteFunc: func(_ context.Context, _ string, _ int32, _ string) (string, error) {
			return `{
				"structure_score": 80,
				"keyword_score": 60,
				"skills_score": 70,
				"readability_score": 90,
				"impact_score": 50,
				"overall_ats_score": 5,
				"strengths": ["Clear headings"],
				"weaknesses": ["Sparse metrics"]
			}`, nil
		},
	}
	evaluator := New(llm.NewAnalyzer(client, nil))

	result := evaluator.Evaluate(context.Background(), strongResume)

	assert.Equal(t, types.SourceAI, result.Source)
	// The model's own overall figure (5) is ignored.
	assert.InDelta(t, 70.0, result.OverallScore, 0.001)
	assert.Equal(t, []string{"Clear headings"}, result.Strengths)
	assert.Equal(t, []string{"Sparse metrics"}, result.Weaknesses)
	assert.NotEmpty(t, result.Recommendations)
}

func TestEvaluate_AIFailureFallsBackToHeuristic(t *testing.T) {
	client := &MockCompleter{
		CompleteFunc: func(_ context.Context, _ string, _ int32, _ string) (string, error) {
			return "", errors.New("connection reset")
		},
	}
	evaluator := New(llm.NewAnalyzer(client, nil))

	result := evaluator.Evaluate(context.Background(), strongResume)

	assert.Equal(t, types.SourceHeuristic, result.Source)
	assert.Contains(t, result.Error, "connection reset")
	assert.Greater(t, result.OverallScore, 0.0)
}

func TestStructureScore_LayoutPenalty(t *testing.T) {
	plain := "summary skills experience education projects"
	require.Equal(t, 100.0, structureScore(plain))

	// Repeated pipes are one distinct marker: a single pipe-formatted table
	// costs 5 points, not the whole cap.
	tabular := plain + " | col1 | col2 | col3 | col4 | col5 | col6"
	assert.Equal(t, 95.0, structureScore(tabular))

	// All six markers present hits the 30-point cap ("columns" also matches
	// "column").
	busy := plain + " | table columns image graphic"
	assert.Equal(t, 70.0, structureScore(busy))
}

func TestReadabilityScore_Components(t *testing.T) {
	// Base only: no bullets, one very long sentence, no digits.
	long := weakResume + " " + weakResume
	assert.Equal(t, 60.0, readabilityScore(long))

	// Bullets, short sentences, and digits each add their bonus.
	assert.Equal(t, 100.0, readabilityScore(strongResume))
}

func TestSkillsScore_Empty(t *testing.T) {
	assert.Equal(t, 0.0, skillsScore("nothing relevant here"))
}
