// Package ats evaluates a resume in isolation for applicant-tracking-system
// friendliness. The AI rubric is attempted first when credentials exist;
// mock mode and any completion failure fall back to a pure text heuristic
// producing the same five-dimension shape.
package ats

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/llm"
	"github.com/jonathan/job-match-engine/internal/textutil"
	"github.com/jonathan/job-match-engine/internal/types"
)

// expectedSections are the standard headers an ATS parser keys on.
var expectedSections = []string{"summary", "skills", "experience", "education", "projects"}

// layoutMarkers suggest tables, columns, or embedded media that ATS parsers
// mangle.
var layoutMarkers = []string{"|", "table", "column", "columns", "image", "graphic"}

// Evaluator scores resumes for ATS friendliness. Safe for concurrent use.
type Evaluator struct {
	analyzer *llm.Analyzer
	weights  config.Weights
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithWeights overrides the default rubric weights.
func WithWeights(weights config.Weights) Option {
	return func(e *Evaluator) { e.weights = weights }
}

// New builds an Evaluator around an Analyzer.
func New(analyzer *llm.Analyzer, opts ...Option) *Evaluator {
	e := &Evaluator{
		analyzer: analyzer,
		weights:  config.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate scores one resume. It never returns an error: blank input yields
// a zeroed result with an explanatory weakness, and completion failures
// degrade to the heuristic path with the error recorded.
func (e *Evaluator) Evaluate(ctx context.Context, resumeText string) types.AtsResult {
	if strings.TrimSpace(resumeText) == "" {
		return types.AtsResult{
			Strengths:  []string{},
			Weaknesses: []string{"Resume text is empty. Please ensure the file was processed correctly."},
			Source:     types.SourceHeuristic,
			Error:      "empty input text",
		}
	}

	errText := ""
	if !e.analyzer.Mock() {
		result, err := e.analyzer.EvaluateATS(ctx, resumeText)
		if err == nil {
			return e.finalize(result)
		}
		errText = err.Error()
	}

	result := e.heuristicEvaluation(resumeText)
	result.Error = errText
	return e.finalize(result)
}

// finalize recomputes the overall figure from the five sub-scores with the
// configured weights and guarantees non-empty narrative lists.
func (e *Evaluator) finalize(result types.AtsResult) types.AtsResult {
	result.StructureScore = clamp(result.StructureScore)
	result.KeywordScore = clamp(result.KeywordScore)
	result.SkillsScore = clamp(result.SkillsScore)
	result.ReadabilityScore = clamp(result.ReadabilityScore)
	result.ImpactScore = clamp(result.ImpactScore)

	result.OverallScore = round2(e.weights.ATSStructure*result.StructureScore +
		e.weights.ATSKeyword*result.KeywordScore +
		e.weights.ATSSkills*result.SkillsScore +
		e.weights.ATSReadability*result.ReadabilityScore +
		e.weights.ATSImpact*result.ImpactScore)

	if len(result.Strengths) == 0 {
		result.Strengths = strengthsFor(result)
	}
	if len(result.Weaknesses) == 0 {
		result.Weaknesses = weaknessesFor(result)
	}
	if len(result.Recommendations) == 0 {
		result.Recommendations = recommendationsFor(result)
	}
	return result
}

// heuristicEvaluation is the pure text fallback rubric.
func (e *Evaluator) heuristicEvaluation(resumeText string) types.AtsResult {
	return types.AtsResult{
		StructureScore:   structureScore(resumeText),
		KeywordScore:     keywordScore(resumeText),
		SkillsScore:      skillsScore(resumeText),
		ReadabilityScore: readabilityScore(resumeText),
		ImpactScore:      impactScore(resumeText),
		Source:           types.SourceHeuristic,
	}
}

// structureScore rewards standard section headers and penalizes layout
// markers that defeat ATS parsing.
func structureScore(text string) float64 {
	lower := strings.ToLower(text)

	found := 0
	for _, section := range expectedSections {
		if strings.Contains(lower, section) {
			found++
		}
	}
	score := float64(found) / float64(len(expectedSections)) * 100.0

	// Each distinct marker present costs 5 points regardless of how often it
	// repeats; one pipe-formatted table should not exhaust the cap alone.
	markers := 0
	for _, marker := range layoutMarkers {
		if strings.Contains(lower, marker) {
			markers++
		}
	}
	penalty := math.Min(30, float64(markers)*5)

	return clamp(score - penalty)
}

// keywordScore is a capped linear function of action-verb hits.
func keywordScore(text string) float64 {
	hits := textutil.CountActionVerbs(text)
	return clamp(float64(hits) / 10.0 * 100.0)
}

// skillsScore blends distinct skill count (60%) with how often those skills
// recur in the body text (40%), both saturating at 20.
func skillsScore(text string) float64 {
	skills := textutil.ExtractSkills(text)

	unique := math.Min(float64(len(skills)), 20)

	lower := strings.ToLower(text)
	bodyHits := 0
	for _, skill := range skills {
		bodyHits += strings.Count(lower, strings.ToLower(skill))
	}
	frequency := math.Min(float64(bodyHits), 20)

	return clamp(unique/20.0*60.0 + frequency/20.0*40.0)
}

// readabilityScore starts from a neutral base and adjusts for bullet
// density, sentence length, and the presence of numbers.
func readabilityScore(text string) float64 {
	score := 60.0
	if textutil.CountBullets(text) >= 5 {
		score += 15
	}
	if textutil.AverageSentenceLength(text) <= 140 {
		score += 15
	}
	if digitDensity(text) > 0.01 {
		score += 10
	}
	return clamp(score)
}

// impactScore is a capped linear function of quantitative markers.
func impactScore(text string) float64 {
	signals := textutil.CountImpactSignals(text)
	return clamp(float64(signals) / 10.0 * 100.0)
}

func digitDensity(text string) float64 {
	if len(text) == 0 {
		return 0
	}
	return float64(textutil.CountDigits(text)) / float64(len(text))
}

func strengthsFor(result types.AtsResult) []string {
	var strengths []string
	if result.StructureScore >= 70 {
		strengths = append(strengths, "Standard section headings are present and parse cleanly.")
	}
	if result.KeywordScore >= 60 {
		strengths = append(strengths, "Good use of action verbs throughout the experience section.")
	}
	if result.SkillsScore >= 60 {
		strengths = append(strengths, "Broad, clearly listed technical skill set.")
	}
	if result.ImpactScore >= 60 {
		strengths = append(strengths, "Achievements are quantified with concrete numbers.")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Resume has a workable baseline for ATS processing.")
	}
	return strengths
}

func weaknessesFor(result types.AtsResult) []string {
	var weaknesses []string
	if result.StructureScore < 70 {
		weaknesses = append(weaknesses, "Missing or non-standard section headings reduce parse accuracy.")
	}
	if result.KeywordScore < 60 {
		weaknesses = append(weaknesses, "Few action verbs; bullets read as passive descriptions.")
	}
	if result.SkillsScore < 60 {
		weaknesses = append(weaknesses, "Skill coverage is thin or skills are not repeated in context.")
	}
	if result.ReadabilityScore < 70 {
		weaknesses = append(weaknesses, "Long sentences or sparse bullets hurt readability.")
	}
	if result.ImpactScore < 60 {
		weaknesses = append(weaknesses, "Few quantified results; impact is hard to verify.")
	}
	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, "No significant ATS weaknesses detected.")
	}
	return weaknesses
}

func recommendationsFor(result types.AtsResult) []string {
	var recommendations []string
	if result.StructureScore < 70 {
		recommendations = append(recommendations, "Use standard headings: Summary, Skills, Experience, Education, Projects.")
	}
	if result.KeywordScore < 60 {
		recommendations = append(recommendations, "Start bullets with strong action verbs (developed, implemented, optimized).")
	}
	if result.ImpactScore < 60 {
		recommendations = append(recommendations, "Quantify achievements with percentages, counts, or dollar figures.")
	}
	if result.ReadabilityScore < 70 {
		recommendations = append(recommendations, "Break long paragraphs into concise bullet points.")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Keep the current structure; tailor keywords per application.")
	}
	return recommendations
}

func clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
