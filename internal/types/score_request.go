package types

// ScoreRequest carries the inputs for one resume/job comparison. ResumeText
// and JobText must be non-empty for a meaningful score; empty input is valid
// and short-circuits to a zeroed result rather than raising an error. The
// structured lists are optional pre-parsed data supplied by the caller and,
// when present, contribute a rule-based signal blended with the AI scores.
type ScoreRequest struct {
	ResumeText       string   `json:"resume_text"`
	JobText          string   `json:"job_text"`
	ResumeSkills     []string `json:"resume_skills,omitempty"`
	ResumeExperience []string `json:"resume_experience,omitempty"`
	JobSkills        []string `json:"job_skills,omitempty"`
	JobRequirements  []string `json:"job_requirements,omitempty"`
}
