package types

// AtsResult is the outcome of evaluating a resume in isolation for
// applicant-tracking-system friendliness. Five weighted sub-scores roll up
// into OverallScore, always recomputed locally:
//
//	overall = 0.25*structure + 0.25*keyword + 0.20*skills + 0.15*readability + 0.15*impact
//
// The AI and heuristic paths produce the same shape; only Source tells them
// apart.
type AtsResult struct {
	StructureScore   float64 `json:"structure_score"`
	KeywordScore     float64 `json:"keyword_score"`
	SkillsScore      float64 `json:"skills_score"`
	ReadabilityScore float64 `json:"readability_score"`
	ImpactScore      float64 `json:"impact_score"`
	OverallScore     float64 `json:"overall_ats_score"`

	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Recommendations []string       `json:"recommendations,omitempty"`
	Source          AnalysisSource `json:"source"`
	Error           string         `json:"error,omitempty"`
}
