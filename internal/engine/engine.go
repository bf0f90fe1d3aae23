// Package engine implements the match engine: it combines AI analysis with
// rule-based signals into a single scored result, back-fills anything the
// model omitted, and exposes single, batch, and optimization entry points.
package engine

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/llm"
	"github.com/jonathan/job-match-engine/internal/textutil"
	"github.com/jonathan/job-match-engine/internal/types"
)

const maxKeywordList = 25

// Engine is the scoring orchestrator. It is safe for concurrent use.
type Engine struct {
	analyzer    *llm.Analyzer
	weights     config.Weights
	concurrency int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides the default combination weights.
func WithWeights(weights config.Weights) Option {
	return func(e *Engine) { e.weights = weights }
}

// WithConcurrency enables parallel batch scoring with at most n workers.
// Values below 2 keep the default sequential behavior.
func WithConcurrency(n int) Option {
	return func(e *Engine) { e.concurrency = n }
}

// New builds an Engine around an Analyzer.
func New(analyzer *llm.Analyzer, opts ...Option) *Engine {
	e := &Engine{
		analyzer: analyzer,
		weights:  config.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score runs one resume/job comparison. It never returns an error: blank
// input produces a zeroed result with an explanatory suggestion, and any
// completion failure degrades to rule-based scoring inside the analyzer.
func (e *Engine) Score(ctx context.Context, req types.ScoreRequest) types.MatchResult {
	if strings.TrimSpace(req.ResumeText) == "" || strings.TrimSpace(req.JobText) == "" {
		return emptyInputResult()
	}

	analysis := e.analyzer.MatchAnalysis(ctx, req.ResumeText, req.JobText)

	methods := []string{"ai_analysis"}
	status := types.StatusCompleted
	if analysis.Source == types.SourceHeuristic {
		methods = []string{"heuristic_fallback"}
		// The fallback analyzer approximates experience from word overlap;
		// replace it with the richer years/role/domain blend.
		analysis.ExperienceScore = heuristicExperienceScore(req.ResumeText, req.JobText)
		// An error means the completion service was tried and failed, as
		// opposed to mock mode where the heuristics are the normal path.
		if analysis.Error != "" {
			status = types.StatusFailed
		}
	}

	aiScores := types.ScoreTriple{
		Overall:    analysis.OverallScore,
		Skills:     analysis.SkillsScore,
		Experience: analysis.ExperienceScore,
	}

	skills := analysis.SkillsScore
	experience := analysis.ExperienceScore
	keywords := analysis.KeywordsScore

	ruleScores := map[string]float64{}
	var skillAnalysis *types.SkillAnalysis

	if len(req.ResumeSkills) > 0 && len(req.JobSkills) > 0 {
		ruleSkills := textutil.MatchPercentage(req.ResumeSkills, req.JobSkills)
		ruleScores["skills"] = ruleSkills
		skills = blend(e.weights, skills, ruleSkills)
		skillAnalysis = &types.SkillAnalysis{
			MatchingSkills:       textutil.Intersection(req.ResumeSkills, req.JobSkills, 0),
			MissingSkills:        textutil.Difference(req.ResumeSkills, req.JobSkills, 0),
			ExtraSkills:          textutil.Difference(req.JobSkills, req.ResumeSkills, 0),
			SkillMatchPercentage: ruleSkills,
		}
	}
	if len(req.ResumeExperience) > 0 && len(req.JobRequirements) > 0 {
		ruleExperience := textutil.MatchPercentage(req.ResumeExperience, req.JobRequirements)
		if ruleExperience == 0 {
			// Requirement phrases rarely repeat verbatim across documents;
			// fall back to the years/role/domain blend over the full texts.
			ruleExperience = heuristicExperienceScore(req.ResumeText, req.JobText)
		}
		ruleScores["experience"] = ruleExperience
		experience = blend(e.weights, experience, ruleExperience)
	}
	if len(ruleScores) > 0 {
		methods = append(methods, "rule_based_blend")
	}

	overall := clamp(round2(e.weights.Skills*skills +
		e.weights.Experience*experience +
		e.weights.Keywords*keywords))

	confidence := aiConfidence(analysis)

	result := types.MatchResult{
		OverallScore:     overall,
		SkillsScore:      clamp(skills),
		ExperienceScore:  clamp(experience),
		KeywordsScore:    clamp(keywords),
		MissingKeywords:  analysis.MissingKeywords,
		MatchingKeywords: analysis.MatchingKeywords,
		Suggestions:      analysis.Suggestions,
		ATSFindings:      analysis.ATSFindings,
		Readability:      analysis.Readability,
		Strengths:        analysis.Strengths,
		Confidence:       confidence,
		Status:           status,
		Error:            analysis.Error,
	}

	backfilled := e.backfill(&result, req)

	result.Breakdown = types.MatchBreakdown{
		AIScores:         aiScores,
		RuleBasedScores:  ruleScores,
		AnalysisMethods:  methods,
		SkillAnalysis:    skillAnalysis,
		BackfilledFields: backfilled,
	}

	return result
}

// emptyInputResult is the short-circuit result for blank input. It is a
// normal outcome, not a failure.
func emptyInputResult() types.MatchResult {
	return types.MatchResult{
		MissingKeywords:  []string{},
		MatchingKeywords: []string{},
		Suggestions: []string{
			"Resume or job description text is empty. Please ensure files were processed correctly.",
		},
		ATSFindings: []string{},
		Readability: []string{},
		Strengths:   []string{},
		Breakdown: types.MatchBreakdown{
			RuleBasedScores: map[string]float64{},
			AnalysisMethods: []string{"empty_input"},
		},
		Status: types.StatusCompleted,
	}
}

// blend combines one AI sub-score with the caller-list rule-based equivalent.
func blend(w config.Weights, ai, rule float64) float64 {
	return round2(w.AI*ai + w.RuleBased*rule)
}

// aiConfidence is a completeness proxy: the share of key analysis fields the
// model actually filled in, plus a small bonus for an in-range overall score.
// It is not a statistical confidence interval.
func aiConfidence(analysis types.MatchAnalysis) float64 {
	present := 0
	if analysis.OverallScore > 0 {
		present++
	}
	if len(analysis.MissingKeywords) > 0 {
		present++
	}
	if len(analysis.MatchingKeywords) > 0 {
		present++
	}
	if len(analysis.Suggestions) > 0 {
		present++
	}

	confidence := float64(present) / 4.0 * 100.0
	if analysis.OverallScore >= 0 && analysis.OverallScore <= 100 {
		confidence += 10
	}
	if confidence > 100 {
		confidence = 100
	}
	return confidence
}

func clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
