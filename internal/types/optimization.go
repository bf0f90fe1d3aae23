package types

// Optimization is the completion client's view of a resume rewrite.
type Optimization struct {
	OptimizedResumeText string   `json:"optimized_resume_text"`
	ChangesMade         []string `json:"changes_made"`
	KeywordsAdded       []string `json:"keywords_added"`
	Improvements        []string `json:"improvements"`
	Error               string   `json:"error,omitempty"`
}

// OptimizationResult augments an Optimization with before/after match scores.
// ImprovementScore is clamped at zero so a noisy re-score never reports a
// negative improvement.
type OptimizationResult struct {
	OptimizedResumeText string   `json:"optimized_resume_text"`
	ChangesMade         []string `json:"changes_made"`
	KeywordsAdded       []string `json:"keywords_added"`
	Improvements        []string `json:"improvements"`
	OriginalScore       float64  `json:"original_score"`
	OptimizedScore      float64  `json:"optimized_score"`
	ImprovementScore    float64  `json:"improvement_score"`
	Status              Status   `json:"processing_status"`
	Error               string   `json:"error,omitempty"`
}
