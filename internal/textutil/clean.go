package textutil

import (
	"regexp"
	"strings"
)

// maxPromptChars caps text sent to the completion service to stay well under
// provider token limits.
const maxPromptChars = 8000

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	oddCharacters = regexp.MustCompile(`[^\w\s.,!?()-]`)
)

// actionVerbs are the resume verbs the ATS keyword heuristic counts.
var actionVerbs = []string{
	"developed", "implemented", "optimized", "led", "improved", "designed",
	"built", "launched", "migrated", "reduced", "increased", "delivered",
	"automated", "refactored", "architected", "analyzed", "collaborated",
}

// impactMarkers signal quantified achievements.
var impactMarkers = []string{"%", "percent", "x", "$", "reduced", "increased", "decreased"}

// CleanForPrompt collapses whitespace, strips characters that confuse model
// tokenization, and truncates to a conservative length.
func CleanForPrompt(text string) string {
	if text == "" {
		return ""
	}
	text = oddCharacters.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars] + "..."
	}
	return strings.TrimSpace(text)
}

// CountActionVerbs returns how many distinct action verbs appear in text.
func CountActionVerbs(text string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			hits++
		}
	}
	return hits
}

// CountImpactSignals returns a rough count of quantified-achievement markers:
// distinct impact words present plus one point per five digit characters
// (capped at ten points from digits).
func CountImpactSignals(text string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, marker := range impactMarkers {
		if strings.Contains(lower, marker) {
			hits++
		}
	}
	digitPoints := CountDigits(text) / 5
	if digitPoints > 10 {
		digitPoints = 10
	}
	return hits + digitPoints
}

// CountDigits returns the number of ASCII digit characters in text.
func CountDigits(text string) int {
	count := 0
	for _, r := range text {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}

// CountBullets counts bullet-like line starts ("-", "*", "•").
func CountBullets(text string) int {
	return strings.Count(text, "\n-") + strings.Count(text, "\n*") + strings.Count(text, "\n•")
}

// AverageSentenceLength returns the mean character length of period-separated
// sentences, with a floor of 1 so callers can divide by it safely.
func AverageSentenceLength(text string) float64 {
	var total, count int
	for _, sentence := range strings.Split(text, ".") {
		if sentence == "" {
			continue
		}
		total += len(sentence)
		count++
	}
	if count == 0 {
		return 1.0
	}
	avg := float64(total) / float64(count)
	if avg < 1.0 {
		return 1.0
	}
	return avg
}

// WordOverlapRatio returns |words(a) ∩ words(b)| / |words(b)| × 100 over
// lowercased whitespace-split words, capped at 100. Used as the mock-mode
// experience signal.
func WordOverlapRatio(a, b string) float64 {
	bWords := toSet(strings.Fields(strings.ToLower(b)))
	if len(bWords) == 0 {
		return 0.0
	}
	common := 0
	for word := range toSet(strings.Fields(strings.ToLower(a))) {
		if bWords[word] {
			common++
		}
	}
	ratio := float64(common) / float64(len(bWords)) * 100.0
	if ratio > 100.0 {
		ratio = 100.0
	}
	return ratio
}
