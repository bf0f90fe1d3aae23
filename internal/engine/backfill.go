package engine

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-match-engine/internal/textutil"
	"github.com/jonathan/job-match-engine/internal/types"
)

// heuristicExperienceScore approximates experience fit from text evidence:
// half the weight on the years-of-experience ratio, the rest split between
// role-token and domain-token overlap. The years ratio contributes 0 when
// the job names no required figure.
func heuristicExperienceScore(resumeText, jobText string) float64 {
	yearsRatio := 0.0
	if required, ok := textutil.ExtractYearsOfExperience(jobText); ok && required > 0 {
		candidate, _ := textutil.ExtractYearsOfExperience(resumeText)
		ratio := float64(candidate) / float64(required)
		if ratio > 1 {
			ratio = 1
		}
		yearsRatio = ratio * 100
	}

	roleOverlap := textutil.MatchPercentage(
		textutil.ExtractRoleTokens(resumeText),
		textutil.ExtractRoleTokens(jobText),
	)
	domainOverlap := textutil.MatchPercentage(
		textutil.ExtractDomainTokens(resumeText),
		textutil.ExtractDomainTokens(jobText),
	)

	return clamp(round2(0.5*yearsRatio + 0.25*roleOverlap + 0.25*domainOverlap))
}

// backfill replaces every empty list on the result with a deterministic,
// evidence-based equivalent and returns the names of the fields it filled.
func (e *Engine) backfill(result *types.MatchResult, req types.ScoreRequest) []string {
	var filled []string

	resumeSkills := req.ResumeSkills
	if len(resumeSkills) == 0 {
		resumeSkills = textutil.ExtractSkills(req.ResumeText)
	}
	jobSkills := req.JobSkills
	if len(jobSkills) == 0 {
		jobSkills = textutil.ExtractSkills(req.JobText)
	}

	if len(result.MatchingKeywords) == 0 {
		result.MatchingKeywords = textutil.Intersection(resumeSkills, jobSkills, maxKeywordList)
		filled = append(filled, "matching_keywords")
	}
	if len(result.MissingKeywords) == 0 {
		result.MissingKeywords = textutil.Difference(resumeSkills, jobSkills, maxKeywordList)
		filled = append(filled, "missing_keywords")
	}

	if len(result.Suggestions) == 0 {
		result.Suggestions = suggestionTemplates(result)
		filled = append(filled, "suggestions")
	}
	if len(result.ATSFindings) == 0 {
		result.ATSFindings = atsFindingTemplates(req.ResumeText)
		filled = append(filled, "ats_findings")
	}
	if len(result.Readability) == 0 {
		result.Readability = readabilityTemplates(req.ResumeText)
		filled = append(filled, "readability")
	}
	if len(result.Strengths) == 0 {
		result.Strengths = strengthTemplates(result)
		filled = append(filled, "strengths")
	}

	return filled
}

func suggestionTemplates(result *types.MatchResult) []string {
	var suggestions []string
	if len(result.MissingKeywords) > 0 {
		limit := result.MissingKeywords
		if len(limit) > 10 {
			limit = limit[:10]
		}
		suggestions = append(suggestions, fmt.Sprintf("Add missing keywords: %s.", strings.Join(limit, ", ")))
	}
	if result.OverallScore < 50 {
		suggestions = append(suggestions, "Quantify achievements and align bullets to the job description.")
	}
	if result.SkillsScore < 30 {
		suggestions = append(suggestions, "Highlight relevant technical skills prominently.")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Resume aligns well with job requirements.")
	}
	return suggestions
}

func atsFindingTemplates(resumeText string) []string {
	var findings []string
	if len(resumeText) < 400 {
		findings = append(findings, "Resume is too short; add more detail to improve ATS parsing.")
	}
	lower := strings.ToLower(resumeText)
	if !strings.Contains(lower, "experience") && !strings.Contains(lower, "education") && !strings.Contains(lower, "skills") {
		findings = append(findings, "Use standard section headings (Summary, Skills, Experience, Education).")
	}
	if len(findings) == 0 {
		findings = append(findings, "Resume structure appears ATS-friendly.")
	}
	return findings
}

func readabilityTemplates(resumeText string) []string {
	var notes []string
	if len(strings.Fields(resumeText)) < 200 {
		notes = append(notes, "Add more detail and quantify achievements with metrics.")
	}
	if textutil.CountDigits(resumeText) == 0 {
		notes = append(notes, "Include quantifiable results (percentages, numbers, metrics).")
	}
	if len(notes) == 0 {
		notes = append(notes, "Resume readability is good; maintain concise, action-oriented language.")
	}
	return notes
}

func strengthTemplates(result *types.MatchResult) []string {
	var strengths []string
	if result.SkillsScore >= 60 {
		strengths = append(strengths, "Strong alignment with required technical skills.")
	}
	if result.ExperienceScore >= 60 {
		strengths = append(strengths, "Good coverage of experience relevant to the role.")
	}
	if len(result.MatchingKeywords) > 0 {
		limit := result.MatchingKeywords
		if len(limit) > 5 {
			limit = limit[:5]
		}
		strengths = append(strengths, fmt.Sprintf("Key skills present: %s.", strings.Join(limit, ", ")))
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Resume shows baseline qualifications; focus on highlighting relevant experience.")
	}
	return strengths
}
