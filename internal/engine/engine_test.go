package engine

import (
	"context"
	"errors"
	"strings"
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
	Calls        int
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string, maxTokens int32, model string) (string, error) {
	m.Calls++
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, maxTokens, model)
	}
	return "{}", nil
}

func (m *MockCompleter) Model() string { return "mock-model" }
func (m *MockCompleter) Mock() bool    { return m.MockMode }
func (m *MockCompleter) Close() error  { return nil }

func mockEngine(opts ...Option) (*Engine, *MockCompleter) {
	client := &MockCompleter{MockMode: true}
	return New(llm.NewAnalyzer(client, nil), opts...), client
}

func aiEngine(response string, opts ...Option) *Engine {
	client := &MockCompleter{
		CompleteFunc: func(_ context.Context, _ string, _ int32, _ string) (string, error) {
			return response, nil
		},
	}
	return New(llm.NewAnalyzer(client, nil), opts...)
}

const fullStackResume = `Jane Smith
Full Stack Developer

SUMMARY
6 years of experience building web applications end to end.

SKILLS
Python, React, PostgreSQL, Docker, AWS, FastAPI, Redis

EXPERIENCE
Senior Developer at Acme (2020-2024)
- Built REST APIs in Python serving 2M requests/day
- Led migration to PostgreSQL, cutting query latency by 35%
- Shipped React dashboards used by 40k customers

EDUCATION
B.S. Computer Science, State University`

const fullStackJob = `Full Stack Engineer

We need a developer with 4+ years of experience. Required skills: Python,
React, PostgreSQL. Nice to have: Docker, AWS, GraphQL. You will build and
operate web services in an agile team.`

func TestScore_EmptyInput(t *testing.T) {
	engine, client := mockEngine()

	for _, req := range []types.ScoreRequest{
		{ResumeText: "", JobText: fullStackJob},
		{ResumeText: fullStackResume, JobText: "   "},
		{},
	} {
		result := engine.Score(context.Background(), req)

		assert.Equal(t, 0.0, result.OverallScore)
		assert.Equal(t, types.StatusCompleted, result.Status)
		assert.NotEmpty(t, result.Suggestions)
		assert.Equal(t, []string{"empty_input"}, result.Breakdown.AnalysisMethods)
	}

	assert.Zero(t, client.Calls)
}

func TestScore_MockModeEndToEnd(t *testing.T) {
	engine, _ := mockEngine()

	result := engine.Score(context.Background(), types.ScoreRequest{
		ResumeText: fullStackResume,
		JobText:    fullStackJob,
	})

	assert.Equal(t, types.StatusCompleted, result.Status)
	assert.GreaterOrEqual(t, result.SkillsScore, 50.0)
	assert.GreaterOrEqual(t, result.OverallScore, 40.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)

	assert.Contains(t, result.MatchingKeywords, "Python")
	assert.Contains(t, result.MatchingKeywords, "React")
	assert.Contains(t, result.MatchingKeywords, "PostgreSQL")

	assert.NotEmpty(t, result.Suggestions)
	assert.NotEmpty(t, result.ATSFindings)
	assert.NotEmpty(t, result.Readability)
	assert.NotEmpty(t, result.Strengths)
	assert.Greater(t, result.Confidence, 0.0)
	assert.Contains(t, result.Breakdown.AnalysisMethods, "heuristic_fallback")
}

func TestScore_Deterministic(t *testing.T) {
	engine, _ := mockEngine()
	req := types.ScoreRequest{ResumeText: fullStackResume, JobText: fullStackJob}

	first := engine.Score(context.Background(), req)
	second := engine.Score(context.Background(), req)

	assert.Equal(t, first, second)
}

func TestScore_AlwaysClamped(t *testing.T) {
	engine := aiEngine(`{"overall_match_score": 500, "skills_match_score": 150, "experience_match_score": -40, "keywords_match_score": 120}`)

	result := engine.Score(context.Background(), types.ScoreRequest{
		ResumeText: fullStackResume,
		JobText:    fullStackJob,
	})

	for _, score := range []float64{
		result.OverallScore, result.SkillsScore, result.ExperienceScore, result.KeywordsScore,
	} {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestScore_RuleBlendWithCallerLists(t *testing.T) {
	engine := aiEngine(`{
		"overall_match_score": 90,
		"skills_match_score": 80,
		"experience_match_score": 60,
		"keywords_match_score": 70,
		"matching_keywords": ["Python"],
		"missing_keywords": ["GraphQL"],
		"suggestions": ["s"], "ats_findings": ["a"], "readability": ["r"], "strengths": ["st"]
	}`)

	result := engine.Score(context.Background(), types.ScoreRequest{
		ResumeText:   fullStackResume,
		JobText:      fullStackJob,
		ResumeSkills: []string{"Python", "Go"},
		JobSkills:    []string{"Python", "React"},
	})

	// Rule-based skills: 1 of 2 required present = 50. Blend: 0.7*80 + 0.3*50.
	assert.InDelta(t, 71.0, result.SkillsScore, 0.001)
	// Overall recomputed locally, never the model's 90.
	assert.InDelta(t, 0.4*71.0+0.3*60.0+0.3*70.0, result.OverallScore, 0.001)

	require.NotNil(t, result.Breakdown.SkillAnalysis)
	assert.Equal(t, []string{"Python"}, result.Breakdown.SkillAnalysis.MatchingSkills)
	assert.Equal(t, []string{"React"}, result.Breakdown.SkillAnalysis.MissingSkills)
	assert.Equal(t, []string{"Go"}, result.Breakdown.SkillAnalysis.ExtraSkills)
	assert.InDelta(t, 50.0, result.Breakdown.SkillAnalysis.SkillMatchPercentage, 0.001)

	assert.Contains(t, result.Breakdown.AnalysisMethods, "ai_analysis")
	assert.Contains(t, result.Breakdown.AnalysisMethods, "rule_based_blend")
	assert.InDelta(t, 50.0, result.Breakdown.RuleBasedScores["skills"], 0.001)
	// The raw AI sub-scores survive in the breakdown.
	assert.InDelta(t, 80.0, result.Breakdown.AIScores.Skills, 0.001)
}

func TestScore_ExperienceRuleBlend(t *testing.T) {
	engine := aiEngine(`{
		"overall_match_score": 80,
		"skills_match_score": 80,
		"experience_match_score": 60,
		"keywords_match_score": 70,
		"matching_keywords": ["Python"],
		"missing_keywords": ["GraphQL"],
		"suggestions": ["s"], "ats_findings": ["a"], "readability": ["r"], "strengths": ["st"]
	}`)

	// Shared requirement phrases are measured directly: 1 of 2 met = 50.
	result := engine.Score(context.Background(), types.ScoreRequest{
		ResumeText:       fullStackResume,
		JobText:          fullStackJob,
		ResumeExperience: []string{"5 years backend development"},
		JobRequirements:  []string{"5 years backend development", "team leadership"},
	})
	assert.InDelta(t, 50.0, result.Breakdown.RuleBasedScores["experience"], 0.001)
	assert.InDelta(t, 0.7*60.0+0.3*50.0, result.ExperienceScore, 0.001)

	// Disjoint phrase lists carry no signal; the years/role/domain blend over
	// the full texts substitutes for the zero.
	result = engine.Score(context.Background(), types.ScoreRequest{
		ResumeText:       fullStackResume,
		JobText:          fullStackJob,
		ResumeExperience: []string{"built dashboards"},
		JobRequirements:  []string{"kubernetes operations"},
	})
	want := heuristicExperienceScore(fullStackResume, fullStackJob)
	require.Greater(t, want, 0.0)
	assert.InDelta(t, want, result.Breakdown.RuleBasedScores["experience"], 0.001)
	assert.InDelta(t, round2(0.7*60.0+0.3*want), result.ExperienceScore, 0.001)
}

func TestScore_BackfillsOmittedFields(t *testing.T) {
	engine := aiEngine(`{"overall_match_score": 70, "skills_match_score": 70, "experience_match_score": 70, "keywords_match_score": 70}`)

	result := engine.Score(context.Background(), types.ScoreRequest{
		ResumeText: fullStackResume,
		JobText:    fullStackJob,
	})

	assert.NotEmpty(t, result.MatchingKeywords)
	assert.NotEmpty(t, result.MissingKeywords)
	assert.NotEmpty(t, result.Suggestions)
	assert.NotEmpty(t, result.ATSFindings)
	assert.NotEmpty(t, result.Readability)
	assert.NotEmpty(t, result.Strengths)

	assert.ElementsMatch(t, []string{
		"matching_keywords", "missing_keywords", "suggestions",
		"ats_findings", "readability", "strengths",
	}, result.Breakdown.BackfilledFields)
}

func TestScore_CompletionFailureDegrades(t *testing.T) {
	client := &MockCompleter{
		CompleteFunc: func(_ context.Context, _ string, _ int32, _ string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	engine := New(llm.NewAnalyzer(client, nil))

	result := engine.Score(context.Background(), types.ScoreRequest{
		ResumeText: fullStackResume,
		JobText:    fullStackJob,
	})

	assert.Equal(t, types.StatusFailed, result.Status)
	assert.Contains(t, result.Error, "connection refused")
	assert.Contains(t, strings.Join(result.Suggestions, " "), "rule-based matching")
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.Contains(t, result.Breakdown.AnalysisMethods, "heuristic_fallback")
}

func TestConfidence(t *testing.T) {
	full := types.MatchAnalysis{
		OverallScore:     70,
		MissingKeywords:  []string{"Kafka"},
		MatchingKeywords: []string{"Python"},
		Suggestions:      []string{"s"},
	}
	assert.Equal(t, 100.0, aiConfidence(full))

	half := types.MatchAnalysis{OverallScore: 70, MissingKeywords: []string{"Kafka"}}
	assert.Equal(t, 60.0, aiConfidence(half))

	// A perfect-fit analysis has no missing keywords; that field simply does
	// not count toward completeness. Sub-scores never do.
	perfectFit := types.MatchAnalysis{
		OverallScore:     95,
		SkillsScore:      95,
		MatchingKeywords: []string{"Python"},
		Suggestions:      []string{"s"},
	}
	assert.Equal(t, 85.0, aiConfidence(perfectFit))

	empty := types.MatchAnalysis{}
	assert.Equal(t, 10.0, aiConfidence(empty))
}

func TestHeuristicExperienceScore(t *testing.T) {
	// Candidate exceeds the required years; ratio saturates at 100.
	score := heuristicExperienceScore(
		"Software engineer with 8 years of experience building backend services.",
		"Looking for a backend engineer with 5+ years of experience.",
	)
	assert.GreaterOrEqual(t, score, 50.0)
	assert.LessOrEqual(t, score, 100.0)

	// No required-years figure: only role/domain overlap contributes.
	score = heuristicExperienceScore("frontend developer", "frontend developer wanted")
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 50.0)
}

func TestOptimize_MockMode(t *testing.T) {
	engine, _ := mockEngine()

	result := engine.Optimize(context.Background(), "Worked with Java on internal tools.", fullStackJob)

	assert.Equal(t, types.StatusCompleted, result.Status)
	assert.Contains(t, result.OptimizedResumeText, "Python")
	assert.GreaterOrEqual(t, result.ImprovementScore, 0.0)
	assert.InDelta(t, result.ImprovementScore, max(0, result.OptimizedScore-result.OriginalScore), 0.01)
}

func TestOptimize_RewriteFailure(t *testing.T) {
	client := &MockCompleter{
		CompleteFunc: func(_ context.Context, _ string, _ int32, _ string) (string, error) {
			return "", errors.New("boom")
		},
	}
	engine := New(llm.NewAnalyzer(client, nil))

	result := engine.Optimize(context.Background(), fullStackResume, fullStackJob)

	assert.Equal(t, types.StatusFailed, result.Status)
	assert.Equal(t, fullStackResume, result.OptimizedResumeText)
	assert.Equal(t, 0.0, result.ImprovementScore)
	assert.NotEmpty(t, result.Error)
}
