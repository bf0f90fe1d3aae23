package types

// InterviewQuestions groups generated interview questions by category.
type InterviewQuestions struct {
	TechnicalQuestions      []string `json:"technical_questions"`
	BehavioralQuestions     []string `json:"behavioral_questions"`
	CompanyCultureQuestions []string `json:"company_culture_questions"`
	LeadershipQuestions     []string `json:"leadership_questions"`
	Tips                    []string `json:"tips"`
	Error                   string   `json:"error,omitempty"`
}

// QAPair is one interview question with a sample answer.
type QAPair struct {
	Question     string `json:"question"`
	SampleAnswer string `json:"sample_answer"`
}

// ExtractedJD summarizes the competencies pulled out of a job description
// while preparing interview material.
type ExtractedJD struct {
	CoreSkills          []string `json:"core_skills"`
	Languages           []string `json:"languages"`
	ToolsFrameworks     []string `json:"tools_frameworks"`
	KeyResponsibilities []string `json:"key_responsibilities"`
}

// InterviewPrep is a JD-grounded set of 10-15 question/answer pairs plus the
// extracted competency lists they were derived from.
type InterviewPrep struct {
	Extracted ExtractedJD `json:"extracted"`
	QA        []QAPair    `json:"qa"`
	Error     string      `json:"error,omitempty"`
}
