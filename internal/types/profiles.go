package types

// ResumeProfile is the structured data extracted from raw resume text.
type ResumeProfile struct {
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Education      []string `json:"education"`
	Certifications []string `json:"certifications"`
	Achievements   []string `json:"achievements"`
	Error          string   `json:"error,omitempty"`
}

// JobProfile is the structured data extracted from raw job description text.
type JobProfile struct {
	RequiredSkills         []string          `json:"required_skills"`
	ExperienceRequirements []string          `json:"experience_requirements"`
	EducationRequirements  []string          `json:"education_requirements"`
	Certifications         []string          `json:"certifications"`
	JobDetails             map[string]string `json:"job_details"`
	Error                  string            `json:"error,omitempty"`
}
