package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/job-match-engine/internal/prompts"
	"github.com/jonathan/job-match-engine/internal/schemas"
	"github.com/jonathan/job-match-engine/internal/textutil"
	"github.com/jonathan/job-match-engine/internal/types"
)

// Prompt templates are embedded and loaded once at init.
var (
	matchScoringPrompt  = prompts.MustGet("analysis.json", "match-scoring")
	resumeParsingPrompt = prompts.MustGet("analysis.json", "resume-parsing")
	jobParsingPrompt    = prompts.MustGet("analysis.json", "job-parsing")
	optimizationPrompt  = prompts.MustGet("analysis.json", "resume-optimization")
	interviewPrompt     = prompts.MustGet("interview.json", "interview-questions")
	techOnlyPrompt      = prompts.MustGet("interview.json", "tech-questions-only")
	qaFromJDPrompt      = prompts.MustGet("interview.json", "qa-from-jd")
	atsEvaluationPrompt = prompts.MustGet("ats.json", "ats-evaluation")
)

// unavailableNote is the provenance string folded into suggestions when the
// engine had to fall back to rule-based matching.
const unavailableNote = "AI analysis temporarily unavailable. Using rule-based matching."

// Analyzer layers the engine's analysis operations over a Completer. Every
// operation is fully defined in mock mode and never propagates a completion
// failure: the worst outcome is a rule-based result annotated with the error.
//
// The one piece of mutable state is the sticky model: the most recently
// successful model identifier, reused as the first attempt on subsequent
// calls to avoid repeating known-dead models.
type Analyzer struct {
	client Completer
	config *Config

	mu     sync.Mutex
	sticky string
}

// NewAnalyzer wraps a Completer. A nil config uses defaults.
func NewAnalyzer(client Completer, config *Config) *Analyzer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Analyzer{client: client, config: config, sticky: config.PrimaryModel}
}

// Mock reports whether the underlying client runs without credentials.
func (a *Analyzer) Mock() bool {
	return a.client.Mock()
}

// CurrentModel returns the sticky model identifier.
func (a *Analyzer) CurrentModel() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sticky
}

func (a *Analyzer) setSticky(model string) {
	a.mu.Lock()
	a.sticky = model
	a.mu.Unlock()
}

// completeJSON performs one completion attempt and extracts a JSON object
// from the response.
func (a *Analyzer) completeJSON(ctx context.Context, prompt string, maxTokens int32, model string) (map[string]any, error) {
	raw, err := a.client.Complete(ctx, prompt, maxTokens, model)
	if err != nil {
		return nil, err
	}
	return ExtractJSON(raw)
}

// MatchAnalysis scores a resume against a job description. The AI path walks
// the model fallback chain, retrying only on model-unavailable signatures;
// the first success becomes the sticky default. Any terminal failure yields a
// complete rule-based analysis instead. The returned analysis always has
// every field populated.
func (a *Analyzer) MatchAnalysis(ctx context.Context, resumeText, jobText string) types.MatchAnalysis {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return emptyInputAnalysis()
	}

	if a.Mock() {
		return mockMatchAnalysis(resumeText, jobText)
	}

	prompt := prompts.Format(matchScoringPrompt, map[string]string{
		"ResumeText": textutil.CleanForPrompt(resumeText),
		"JobText":    textutil.CleanForPrompt(jobText),
	})

	result, errText := a.tryModels(ctx, prompt)
	if result == nil {
		return fallbackMatchAnalysis(resumeText, jobText, unavailableNote, errText)
	}

	if doc, err := json.Marshal(result); err == nil {
		if err := schemas.Validate(schemas.MatchAnalysis, doc); err != nil {
			return fallbackMatchAnalysis(resumeText, jobText, unavailableNote, err.Error())
		}
	}

	analysis := types.MatchAnalysis{
		OverallScore:     getNumber(result, "overall_match_score"),
		SkillsScore:      getNumber(result, "skills_match_score"),
		ExperienceScore:  getNumber(result, "experience_match_score"),
		KeywordsScore:    getNumber(result, "keywords_match_score"),
		MissingKeywords:  orEmpty(getList(result, "missing_keywords")),
		MatchingKeywords: orEmpty(getList(result, "matching_keywords")),
		Suggestions:      orEmpty(getList(result, "suggestions")),
		ATSFindings:      orEmpty(getList(result, "ats_findings")),
		Readability:      orEmpty(getList(result, "readability")),
		Strengths:        orEmpty(getList(result, "strengths")),
		Source:           types.SourceAI,
	}

	// All-zero scores from a parsed response mean the model ignored the
	// rubric; recompute the numbers from text evidence but keep its lists.
	if analysis.OverallScore == 0 && analysis.SkillsScore == 0 &&
		analysis.ExperienceScore == 0 && analysis.KeywordsScore == 0 {
		analysis.OverallScore, analysis.SkillsScore, analysis.ExperienceScore, analysis.KeywordsScore =
			ruleBasedScores(resumeText, jobText)
	}

	return analysis
}

// tryModels walks the fallback chain. It returns the first successful parsed
// response, or nil with the last error text when the chain is exhausted or a
// non-retryable error occurred.
func (a *Analyzer) tryModels(ctx context.Context, prompt string) (map[string]any, string) {
	var lastErr string

	for _, model := range a.config.Chain(a.CurrentModel()) {
		result, err := a.completeJSON(ctx, prompt, MatchMaxTokens, model)
		if err != nil {
			lastErr = err.Error()
			if IsModelUnsupported(lastErr) {
				continue
			}
			return nil, lastErr
		}

		if msg := errorMessage(result); msg != "" {
			lastErr = msg
			if IsModelUnsupported(msg) {
				continue
			}
			return nil, lastErr
		}

		// Success: this model becomes the default for subsequent calls.
		a.setSticky(model)
		return result, ""
	}

	return nil, lastErr
}

// ParseResume extracts structured data from resume text. In mock mode the
// skill list comes from keyword extraction and the remaining lists are empty.
func (a *Analyzer) ParseResume(ctx context.Context, resumeText string) types.ResumeProfile {
	if a.Mock() {
		return types.ResumeProfile{
			Skills:         orEmpty(textutil.ExtractSkills(resumeText)),
			Experience:     []string{},
			Education:      []string{},
			Certifications: []string{},
			Achievements:   []string{},
		}
	}

	prompt := prompts.Format(resumeParsingPrompt, map[string]string{
		"ResumeText": textutil.CleanForPrompt(resumeText),
	})
	result, err := a.completeJSON(ctx, prompt, DefaultMaxTokens, a.CurrentModel())
	if err != nil {
		return types.ResumeProfile{
			Skills: []string{}, Experience: []string{}, Education: []string{},
			Certifications: []string{}, Achievements: []string{},
			Error: err.Error(),
		}
	}

	return types.ResumeProfile{
		Skills:         orEmpty(getList(result, "skills")),
		Experience:     orEmpty(getList(result, "experience")),
		Education:      orEmpty(getList(result, "education")),
		Certifications: orEmpty(getList(result, "certifications")),
		Achievements:   orEmpty(getList(result, "achievements")),
	}
}

// ParseJob extracts structured requirements from job description text.
func (a *Analyzer) ParseJob(ctx context.Context, jobText string) types.JobProfile {
	if a.Mock() {
		return types.JobProfile{
			RequiredSkills:         orEmpty(textutil.ExtractSkills(jobText)),
			ExperienceRequirements: []string{},
			EducationRequirements:  []string{},
			Certifications:         []string{},
			JobDetails:             map[string]string{},
		}
	}

	prompt := prompts.Format(jobParsingPrompt, map[string]string{
		"JobText": textutil.CleanForPrompt(jobText),
	})
	result, err := a.completeJSON(ctx, prompt, DefaultMaxTokens, a.CurrentModel())
	if err != nil {
		return types.JobProfile{
			RequiredSkills: []string{}, ExperienceRequirements: []string{},
			EducationRequirements: []string{}, Certifications: []string{},
			JobDetails: map[string]string{},
			Error:      err.Error(),
		}
	}

	return types.JobProfile{
		RequiredSkills:         orEmpty(getList(result, "required_skills")),
		ExperienceRequirements: orEmpty(getList(result, "experience_requirements")),
		EducationRequirements:  orEmpty(getList(result, "education_requirements")),
		Certifications:         orEmpty(getList(result, "certifications")),
		JobDetails:             getStringMap(result, "job_details"),
	}
}

// OptimizeResume rewrites a resume toward a job description. Mock mode
// appends the job's missing keywords instead of rewriting.
func (a *Analyzer) OptimizeResume(ctx context.Context, resumeText, jobText string) types.Optimization {
	if a.Mock() {
		lower := strings.ToLower(resumeText)
		var added []string
		for _, keyword := range textutil.ExtractSkills(jobText) {
			if !strings.Contains(lower, strings.ToLower(keyword)) {
				added = append(added, keyword)
				if len(added) == 10 {
					break
				}
			}
		}

		optimized := resumeText
		changes := []string{}
		if len(added) > 0 {
			optimized += "\n\nKeywords: " + strings.Join(added, ", ")
			changes = append(changes, fmt.Sprintf("Added keywords: %s", strings.Join(added, ", ")))
		}
		return types.Optimization{
			OptimizedResumeText: optimized,
			ChangesMade:         changes,
			KeywordsAdded:       orEmpty(added),
			Improvements:        []string{"Aligned skills to JD", "Added measurable outcomes where missing"},
		}
	}

	prompt := prompts.Format(optimizationPrompt, map[string]string{
		"ResumeText": textutil.CleanForPrompt(resumeText),
		"JobText":    textutil.CleanForPrompt(jobText),
	})
	result, err := a.completeJSON(ctx, prompt, MatchMaxTokens, a.CurrentModel())
	if err != nil {
		return types.Optimization{
			OptimizedResumeText: resumeText,
			ChangesMade:         []string{}, KeywordsAdded: []string{}, Improvements: []string{},
			Error: err.Error(),
		}
	}

	optimized := getString(result, "optimized_resume_text")
	if optimized == "" {
		optimized = resumeText
	}
	return types.Optimization{
		OptimizedResumeText: optimized,
		ChangesMade:         orEmpty(getList(result, "changes_made")),
		KeywordsAdded:       orEmpty(getList(result, "keywords_added")),
		Improvements:        orEmpty(getList(result, "improvements")),
	}
}

// InterviewQuestions generates categorized interview questions from a job
// description. Sparse model output triggers a focused retry for the required
// technical list, and as a final safeguard questions are derived from the
// skills found in the text, so the technical list is never empty for
// non-empty input.
func (a *Analyzer) InterviewQuestions(ctx context.Context, jobText string) types.InterviewQuestions {
	prompt := prompts.Format(interviewPrompt, map[string]string{
		"JobText": textutil.CleanForPrompt(jobText),
	})

	result, err := a.completeJSON(ctx, prompt, DefaultMaxTokens, a.CurrentModel())
	if err != nil {
		result = map[string]any{}
	}

	questions := types.InterviewQuestions{
		TechnicalQuestions:      orEmpty(getList(result, "technical_questions")),
		BehavioralQuestions:     orEmpty(getList(result, "behavioral_questions")),
		CompanyCultureQuestions: orEmpty(getList(result, "company_culture_questions")),
		LeadershipQuestions:     orEmpty(getList(result, "leadership_questions")),
		Tips:                    orEmpty(getList(result, "tips")),
	}
	if err != nil {
		questions.Error = err.Error()
	}

	if len(questions.TechnicalQuestions) == 0 && !a.Mock() {
		retryPrompt := prompts.Format(techOnlyPrompt, map[string]string{
			"JobText": textutil.CleanForPrompt(jobText),
		})
		if retry, retryErr := a.completeJSON(ctx, retryPrompt, DefaultMaxTokens, a.CurrentModel()); retryErr == nil {
			questions.TechnicalQuestions = capStrings(getList(retry, "technical_questions"), 15)
		}
	}

	if len(questions.TechnicalQuestions) == 0 {
		questions.TechnicalQuestions = deriveTechnicalQuestions(jobText)
	}

	return questions
}

// deriveTechnicalQuestions builds questions from the skills detected in the
// job text when the model produced none.
func deriveTechnicalQuestions(jobText string) []string {
	skills := capStrings(textutil.ExtractSkills(jobText), 6)
	var generated []string
	for _, skill := range skills {
		generated = append(generated,
			fmt.Sprintf("Describe your hands-on experience with %s. What problems did you solve?", skill),
			fmt.Sprintf("How would you design a reliable system using %s in this JD context?", skill),
		)
	}
	generated = append(generated,
		"Walk through a recent project. Scope, decisions, results?",
		"How do you test and deploy safely in this stack?",
	)
	return capStrings(generated, 15)
}

// InterviewQA produces 10-15 JD-grounded question/answer pairs plus the
// competency lists they were derived from. Sparse output is padded from a
// fixed template bank.
func (a *Analyzer) InterviewQA(ctx context.Context, jobText string) types.InterviewPrep {
	prompt := prompts.Format(qaFromJDPrompt, map[string]string{
		"JobText": textutil.CleanForPrompt(jobText),
	})

	result, err := a.completeJSON(ctx, prompt, DefaultMaxTokens, a.CurrentModel())
	if err != nil {
		return types.InterviewPrep{
			Extracted: types.ExtractedJD{
				CoreSkills: []string{}, Languages: []string{},
				ToolsFrameworks: []string{}, KeyResponsibilities: []string{},
			},
			QA:    []types.QAPair{},
			Error: err.Error(),
		}
	}

	extracted := types.ExtractedJD{
		CoreSkills:          []string{},
		Languages:           []string{},
		ToolsFrameworks:     []string{},
		KeyResponsibilities: []string{},
	}
	if obj, ok := result["extracted"].(map[string]any); ok {
		extracted.CoreSkills = orEmpty(getList(obj, "core_skills"))
		extracted.Languages = orEmpty(getList(obj, "languages"))
		extracted.ToolsFrameworks = orEmpty(getList(obj, "tools_frameworks"))
		extracted.KeyResponsibilities = orEmpty(getList(obj, "key_responsibilities"))
	}

	var qa []types.QAPair
	if items, ok := result["qa"].([]any); ok {
		for _, item := range items {
			pair, ok := item.(map[string]any)
			if !ok {
				continue
			}
			question := strings.TrimSpace(getString(pair, "question"))
			answer := strings.TrimSpace(getString(pair, "sample_answer"))
			if question != "" && answer != "" {
				qa = append(qa, types.QAPair{Question: question, SampleAnswer: answer})
			}
		}
	}

	for _, pad := range qaTemplates {
		if len(qa) >= 10 {
			break
		}
		qa = append(qa, pad)
	}
	if len(qa) > 15 {
		qa = qa[:15]
	}

	return types.InterviewPrep{Extracted: extracted, QA: qa}
}

// qaTemplates pad sparse interview preparation output up to the minimum of
// ten pairs.
var qaTemplates = []types.QAPair{
	{Question: "Explain a recent project aligned with this JD.", SampleAnswer: "I delivered a feature using the specified stack (e.g., React/Node/SQL). My role covered design, implementation, tests, and deployment. We solved X by doing Y, improving Z by N%."},
	{Question: "How would you design a scalable solution for a core requirement in this JD?", SampleAnswer: "I'd start with a clear API/contract, choose a reliable data model, add caching and async processing where needed, and automate testing and CI/CD."},
	{Question: "How do you ensure performance and reliability?", SampleAnswer: "Benchmark hotspots, profile, use indexes/caching, apply circuit breakers/retries, add observability (logs/metrics/traces) and SLOs."},
	{Question: "Describe your testing strategy for this stack.", SampleAnswer: "Unit tests for pure logic, integration tests around DB/queues, e2e smoke tests in CI, and contract tests for APIs."},
	{Question: "How do you handle security and compliance?", SampleAnswer: "Secrets management, input validation, least-privilege access, dependency scanning, and regular audits/patching."},
	{Question: "How do you approach database schema and migrations?", SampleAnswer: "Normalize where needed, add necessary indexes, write backward-compatible migrations, and verify with rollback plans."},
	{Question: "Tell me about a production incident you resolved.", SampleAnswer: "We detected errors via alerts, mitigated impact with a quick rollback/feature flag, identified root cause, and added tests/monitoring."},
	{Question: "How do you collaborate across teams?", SampleAnswer: "Write clear RFCs, discuss tradeoffs, async updates, track work transparently, and incorporate feedback quickly."},
	{Question: "What patterns do you use to keep code maintainable?", SampleAnswer: "Separation of concerns, small modules, dependency injection, clear interfaces, and linting/formatting."},
	{Question: "How do you choose tools from the JD?", SampleAnswer: "Map requirements to strengths of each tool, validate with small spikes/benchmarks, and consider team expertise and ops overhead."},
}

// EvaluateATS runs the AI rubric scoring for a single resume. Unlike the
// other operations it returns an error on failure: the ATS evaluator owns the
// heuristic fallback and needs to know when to use it.
func (a *Analyzer) EvaluateATS(ctx context.Context, resumeText string) (types.AtsResult, error) {
	prompt := prompts.Format(atsEvaluationPrompt, map[string]string{
		"ResumeText": textutil.CleanForPrompt(resumeText),
	})

	result, err := a.completeJSON(ctx, prompt, DefaultMaxTokens, a.CurrentModel())
	if err != nil {
		return types.AtsResult{}, err
	}
	if msg := errorMessage(result); msg != "" {
		return types.AtsResult{}, fmt.Errorf("%w: %s", ErrUnavailable, msg)
	}
	if doc, err := json.Marshal(result); err == nil {
		if err := schemas.Validate(schemas.AtsEvaluation, doc); err != nil {
			return types.AtsResult{}, err
		}
	}

	evaluation := types.AtsResult{
		StructureScore:   getNumber(result, "structure_score", "structure"),
		KeywordScore:     getNumber(result, "keyword_score", "keyword"),
		SkillsScore:      getNumber(result, "skills_score", "skills"),
		ReadabilityScore: getNumber(result, "readability_score", "readability"),
		ImpactScore:      getNumber(result, "impact_score", "impact"),
		Source:           types.SourceAI,
	}

	// The model's own overall figure is ignored; the rubric weights are
	// applied locally.
	evaluation.OverallScore = round2(0.25*evaluation.StructureScore +
		0.25*evaluation.KeywordScore +
		0.20*evaluation.SkillsScore +
		0.15*evaluation.ReadabilityScore +
		0.15*evaluation.ImpactScore)

	strengths := getList(result, "strengths")
	weaknesses := getList(result, "weaknesses")
	if len(weaknesses) == 0 {
		weaknesses = getList(result, "recommendations")
	}
	evaluation.Strengths = capStrings(orEmpty(strengths), 5)
	evaluation.Weaknesses = capStrings(orEmpty(weaknesses), 8)

	return evaluation, nil
}

// orEmpty replaces a nil slice with an empty one so JSON output renders []
// instead of null.
func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
