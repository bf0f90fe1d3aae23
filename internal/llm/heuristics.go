package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-match-engine/internal/textutil"
	"github.com/jonathan/job-match-engine/internal/types"
)

// Baseline keyword contributions used when no AI keyword score exists. Mock
// mode assumes a moderately optimistic baseline; the failure fallback a
// neutral one.
const (
	mockKeywordBaseline     = 65.0
	fallbackKeywordBaseline = 50.0
)

const maxKeywordList = 25

// emptyInputAnalysis is the short-circuit result for blank resume or job
// text. This is a normal outcome, not an error path.
func emptyInputAnalysis() types.MatchAnalysis {
	return types.MatchAnalysis{
		Suggestions: []string{
			"Resume or job description text is empty. Please ensure files were processed correctly.",
		},
		MissingKeywords:  []string{},
		MatchingKeywords: []string{},
		ATSFindings:      []string{},
		Readability:      []string{},
		Strengths:        []string{},
		Source:           types.SourceHeuristic,
		Error:            "empty input text",
	}
}

// mockMatchAnalysis is the full rule-based analysis used in mock mode. It
// produces every field the AI path would, derived from text evidence.
func mockMatchAnalysis(resumeText, jobText string) types.MatchAnalysis {
	resumeSkills := textutil.ExtractSkills(resumeText)
	jobSkills := textutil.ExtractSkills(jobText)

	skillsScore := textutil.MatchPercentage(resumeSkills, jobSkills)
	experienceScore := textutil.WordOverlapRatio(resumeText, jobText)
	overall := round2(0.4*skillsScore + 0.3*experienceScore + 0.3*mockKeywordBaseline)

	// Score floors keep mock output realistic for plausible inputs.
	if len(resumeSkills) > 0 && len(jobSkills) > 0 {
		if overall < 25 {
			overall = 25
		}
	} else if overall < 15 {
		overall = 15
	}

	missing := textutil.Difference(resumeSkills, jobSkills, maxKeywordList)
	matching := textutil.Intersection(resumeSkills, jobSkills, maxKeywordList)

	var suggestions []string
	if len(missing) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Add missing keywords: %s.", strings.Join(capStrings(missing, 10), ", ")))
	}
	if overall < 50 {
		suggestions = append(suggestions, "Quantify achievements and align bullets to the job description.")
	}
	if skillsScore < 30 {
		suggestions = append(suggestions, "Highlight relevant technical skills prominently.")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Resume aligns well with job requirements.")
	}

	keywordsScore := 0.0
	if len(jobSkills) > 0 {
		keywordsScore = textutil.MatchPercentage(matching, jobSkills)
	}

	var atsFindings []string
	if len(resumeText) < 400 {
		atsFindings = append(atsFindings, "Resume is too short; add more detail to improve ATS parsing.")
	}
	if !containsAnySection(resumeText, "experience", "education", "skills") {
		atsFindings = append(atsFindings, "Use standard section headings (Summary, Skills, Experience, Education).")
	}
	if len(atsFindings) == 0 {
		atsFindings = append(atsFindings, "Resume structure appears ATS-friendly.")
	}

	var readability []string
	if len(strings.Fields(resumeText)) < 200 {
		readability = append(readability, "Add more detail and quantify achievements with metrics.")
	}
	if textutil.CountDigits(resumeText) == 0 {
		readability = append(readability, "Include quantifiable results (percentages, numbers, metrics).")
	}
	if len(readability) == 0 {
		readability = append(readability, "Resume readability is good; maintain concise, action-oriented language.")
	}

	var strengths []string
	if skillsScore >= 60 {
		strengths = append(strengths, "Strong alignment with required technical skills.")
	}
	if experienceScore >= 60 {
		strengths = append(strengths, "Good coverage of experience relevant to the role.")
	}
	if len(matching) > 0 {
		strengths = append(strengths, fmt.Sprintf("Key skills present: %s.", strings.Join(capStrings(matching, 5), ", ")))
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Resume shows baseline qualifications; focus on highlighting relevant experience.")
	}

	return types.MatchAnalysis{
		OverallScore:     clampScore(overall),
		SkillsScore:      clampScore(skillsScore),
		ExperienceScore:  clampScore(experienceScore),
		KeywordsScore:    clampScore(keywordsScore),
		MissingKeywords:  missing,
		MatchingKeywords: matching,
		Suggestions:      suggestions,
		ATSFindings:      atsFindings,
		Readability:      readability,
		Strengths:        strengths,
		Source:           types.SourceHeuristic,
	}
}

// fallbackMatchAnalysis is the degraded analysis substituted when the
// completion service fails after all models were tried. note is the
// human-readable provenance string folded into suggestions.
func fallbackMatchAnalysis(resumeText, jobText, note, errText string) types.MatchAnalysis {
	resumeSkills := textutil.ExtractSkills(resumeText)
	jobSkills := textutil.ExtractSkills(jobText)

	skillsScore := 0.0
	if len(jobSkills) > 0 {
		skillsScore = textutil.MatchPercentage(resumeSkills, jobSkills)
	}
	experienceScore := textutil.WordOverlapRatio(resumeText, jobText)
	overall := round2(0.4*skillsScore + 0.3*experienceScore + 0.3*fallbackKeywordBaseline)
	if overall < 15 {
		overall = 15
	}

	return types.MatchAnalysis{
		OverallScore:     clampScore(overall),
		SkillsScore:      clampScore(skillsScore),
		ExperienceScore:  clampScore(experienceScore),
		KeywordsScore:    clampScore(skillsScore),
		MissingKeywords:  textutil.Difference(resumeSkills, jobSkills, maxKeywordList),
		MatchingKeywords: textutil.Intersection(resumeSkills, jobSkills, maxKeywordList),
		Suggestions:      []string{note},
		ATSFindings:      []string{"Use standard section headings (Summary, Skills, Experience, Education)."},
		Readability:      []string{"Ensure resume is clear and well-structured."},
		Strengths:        []string{"Resume shows baseline qualifications."},
		Source:           types.SourceHeuristic,
		Error:            errText,
	}
}

// ruleBasedScores recomputes the four sub-scores from text evidence. Used
// when the AI response parsed but reported all-zero scores.
func ruleBasedScores(resumeText, jobText string) (overall, skills, experience, keywords float64) {
	resumeSkills := textutil.ExtractSkills(resumeText)
	jobSkills := textutil.ExtractSkills(jobText)

	if len(jobSkills) > 0 {
		skills = textutil.MatchPercentage(resumeSkills, jobSkills)
	}
	experience = textutil.WordOverlapRatio(resumeText, jobText)
	overall = round2(0.4*skills + 0.3*experience + 0.3*fallbackKeywordBaseline)
	if overall < 15 {
		overall = 15
	}
	keywords = skills
	return overall, skills, experience, keywords
}

func containsAnySection(text string, sections ...string) bool {
	lower := strings.ToLower(text)
	for _, section := range sections {
		if strings.Contains(lower, section) {
			return true
		}
	}
	return false
}
