package types

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// JobDescriptor identifies one job in a batch scoring request. ID is assigned
// by the engine when the caller leaves it empty. RequiredSkills and
// ExperienceRequirements are optional pre-parsed lists forwarded into the
// per-job ScoreRequest.
type JobDescriptor struct {
	ID                     string   `json:"id,omitempty"`
	Title                  string   `json:"title,omitempty"`
	Company                string   `json:"company,omitempty"`
	JobText                string   `json:"job_text" validate:"required"`
	RequiredSkills         []string `json:"required_skills,omitempty"`
	ExperienceRequirements []string `json:"experience_requirements,omitempty"`
}

// Validate reports whether the descriptor carries the fields scoring needs.
// The engine tolerates invalid descriptors (capturing the failure per item),
// so this is for callers that want to reject bad input up front.
func (j *JobDescriptor) Validate() error {
	return validate.Struct(j)
}

// JobMatch is one entry of a batch scoring response. A per-job failure is
// captured here with a zero score and the error text; it never aborts the
// rest of the batch.
type JobMatch struct {
	JobID      string       `json:"job_id"`
	JobTitle   string       `json:"job_title,omitempty"`
	Company    string       `json:"company,omitempty"`
	MatchScore float64      `json:"match_score"`
	Details    *MatchResult `json:"details,omitempty"`
	Error      string       `json:"error,omitempty"`
}
