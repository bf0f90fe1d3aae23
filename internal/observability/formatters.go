// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-match-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to maxItemsToShow bulleted items plus an overflow line.
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

func joinCapped(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}

// PrintMatchResult outputs a human-readable summary of one scoring result.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %.1f\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Skills:      %.1f\n", result.SkillsScore))
	sb.WriteString(fmt.Sprintf("Experience:  %.1f\n", result.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Keywords:    %.1f\n", result.KeywordsScore))
	sb.WriteString(fmt.Sprintf("Confidence:  %.0f\n", result.Confidence))
	sb.WriteString(fmt.Sprintf("Methods:     %s\n", strings.Join(result.Breakdown.AnalysisMethods, ", ")))
	sb.WriteString("\n")

	if len(result.MatchingKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Matching:  %s\n", joinCapped(result.MatchingKeywords, 44)))
	}
	if len(result.MissingKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:   %s\n", joinCapped(result.MissingKeywords, 44)))
	}
	sb.WriteString("\n")

	writeList(&sb, "Suggestions", result.Suggestions)

	if result.Error != "" {
		sb.WriteString(fmt.Sprintf("Note: %s\n", result.Error))
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchResults outputs a ranked summary of a batch scoring run.
func (p *Printer) PrintBatchResults(matches []types.JobMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs scored: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		label := match.JobTitle
		if label == "" {
			label = match.JobID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, label))
		if match.Company != "" {
			sb.WriteString(fmt.Sprintf("    Company: %s\n", match.Company))
		}
		if match.Error != "" {
			sb.WriteString(fmt.Sprintf("    Failed: %s\n", match.Error))
		} else {
			sb.WriteString(fmt.Sprintf("    Score: %.1f\n", match.MatchScore))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox("BATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAtsResult outputs a human-readable ATS evaluation summary.
func (p *Printer) PrintAtsResult(result *types.AtsResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:      %.1f  (source: %s)\n", result.OverallScore, result.Source))
	sb.WriteString(fmt.Sprintf("Structure:    %.1f\n", result.StructureScore))
	sb.WriteString(fmt.Sprintf("Keywords:     %.1f\n", result.KeywordScore))
	sb.WriteString(fmt.Sprintf("Skills:       %.1f\n", result.SkillsScore))
	sb.WriteString(fmt.Sprintf("Readability:  %.1f\n", result.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("Impact:       %.1f\n", result.ImpactScore))
	sb.WriteString("\n")

	writeList(&sb, "Strengths", result.Strengths)
	writeList(&sb, "Weaknesses", result.Weaknesses)
	writeList(&sb, "Recommendations", result.Recommendations)

	p.printBox("ATS EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptimizationResult outputs the before/after summary of a rewrite.
func (p *Printer) PrintOptimizationResult(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Original:     %.1f\n", result.OriginalScore))
	sb.WriteString(fmt.Sprintf("Optimized:    %.1f\n", result.OptimizedScore))
	sb.WriteString(fmt.Sprintf("Improvement:  %.1f\n", result.ImprovementScore))
	sb.WriteString("\n")

	writeList(&sb, "Changes", result.ChangesMade)
	writeList(&sb, "Keywords added", result.KeywordsAdded)

	if result.Error != "" {
		sb.WriteString(fmt.Sprintf("Note: %s\n", result.Error))
	}

	p.printBox("RESUME OPTIMIZATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterviewPrep outputs the extracted competencies and the first few
// question/answer pairs.
func (p *Printer) PrintInterviewPrep(prep *types.InterviewPrep) {
	if prep == nil {
		return
	}

	var sb strings.Builder

	writeList(&sb, "Core skills", prep.Extracted.CoreSkills)
	writeList(&sb, "Tools & frameworks", prep.Extracted.ToolsFrameworks)

	sb.WriteString(fmt.Sprintf("Q&A pairs: %d\n", len(prep.QA)))
	count := min(len(prep.QA), 3)
	for i := 0; i < count; i++ {
		question := prep.QA[i].Question
		if len(question) > 50 {
			question = question[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nQ%d: %s\n", i+1, question))
	}

	p.printBox("INTERVIEW PREP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterviewQuestions outputs categorized interview questions.
func (p *Printer) PrintInterviewQuestions(questions *types.InterviewQuestions) {
	if questions == nil {
		return
	}

	var sb strings.Builder

	writeList(&sb, "Technical", questions.TechnicalQuestions)
	writeList(&sb, "Behavioral", questions.BehavioralQuestions)
	writeList(&sb, "Culture", questions.CompanyCultureQuestions)
	writeList(&sb, "Leadership", questions.LeadershipQuestions)
	writeList(&sb, "Tips", questions.Tips)

	p.printBox("INTERVIEW QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
