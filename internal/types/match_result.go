// Package types provides type definitions for the transient value objects
// exchanged between the match engine, the completion client, and callers.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Status reports whether a scoring operation produced a full analysis or had
// to give up entirely. Degraded (rule-based) analysis still counts as
// completed; failed is reserved for total failure of both paths.
type Status string

// Processing status values returned on every result.
const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// AnalysisSource identifies which path produced a set of scores.
type AnalysisSource string

// Analysis source values.
const (
	SourceAI        AnalysisSource = "ai"
	SourceHeuristic AnalysisSource = "heuristic"
)

// MatchResult is the combined outcome of scoring a resume against a job
// description. All scores are on a 0-100 scale and clamped. OverallScore is
// always recomputed locally from the three sub-scores; an AI-reported overall
// figure is never trusted directly.
type MatchResult struct {
	OverallScore    float64 `json:"overall_match_score"`
	SkillsScore     float64 `json:"skills_match_score"`
	ExperienceScore float64 `json:"experience_match_score"`
	KeywordsScore   float64 `json:"keywords_match_score"`

	MissingKeywords  []string `json:"missing_keywords"`
	MatchingKeywords []string `json:"matching_keywords"`
	Suggestions      []string `json:"suggestions"`
	ATSFindings      []string `json:"ats_findings"`
	Readability      []string `json:"readability"`
	Strengths        []string `json:"strengths"`

	Breakdown  MatchBreakdown `json:"breakdown"`
	Confidence float64        `json:"ai_confidence"`
	Status     Status         `json:"processing_status"`
	Error      string         `json:"error,omitempty"`
}

// MatchBreakdown is forward-only diagnostic evidence for the caller's audit
// trail. It records what each analysis path reported before combination and
// which result fields were back-filled by heuristics. It is never reparsed.
type MatchBreakdown struct {
	AIScores         ScoreTriple        `json:"ai_scores"`
	RuleBasedScores  map[string]float64 `json:"rule_based_scores"`
	AnalysisMethods  []string           `json:"analysis_methods"`
	SkillAnalysis    *SkillAnalysis     `json:"skill_analysis,omitempty"`
	BackfilledFields []string           `json:"backfilled_fields,omitempty"`
}

// ScoreTriple holds the raw sub-scores one path reported.
type ScoreTriple struct {
	Overall    float64 `json:"overall"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
}

// SkillAnalysis compares caller-supplied skill lists.
type SkillAnalysis struct {
	MatchingSkills       []string `json:"matching_skills"`
	MissingSkills        []string `json:"missing_skills"`
	ExtraSkills          []string `json:"extra_skills"`
	SkillMatchPercentage float64  `json:"skill_match_percentage"`
}

// MatchAnalysis is a single path's view of a resume/job comparison, either
// from the completion service or from the rule-based fallback. The engine
// combines one of these with caller-supplied structured data to build a
// MatchResult.
type MatchAnalysis struct {
	OverallScore     float64        `json:"overall_match_score"`
	SkillsScore      float64        `json:"skills_match_score"`
	ExperienceScore  float64        `json:"experience_match_score"`
	KeywordsScore    float64        `json:"keywords_match_score"`
	MissingKeywords  []string       `json:"missing_keywords"`
	MatchingKeywords []string       `json:"matching_keywords"`
	Suggestions      []string       `json:"suggestions"`
	ATSFindings      []string       `json:"ats_findings"`
	Readability      []string       `json:"readability"`
	Strengths        []string       `json:"strengths"`
	Source           AnalysisSource `json:"source"`
	Error            string         `json:"error,omitempty"`
}
