package textutil

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	yearsPattern = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years|year|yrs|yr)`)
	rangePattern = regexp.MustCompile(`(?i)(\d+)\s*[-–]\s*(\d+)\s*(?:years|year|yrs|yr)`)
)

// roleWords are title tokens matched by substring against lowered text.
var roleWords = []string{
	"engineer", "developer", "manager", "lead", "architect", "analyst",
	"scientist", "consultant", "specialist", "admin", "administrator",
	"product", "program", "project", "designer", "devops", "sre",
	"frontend", "backend", "fullstack", "data", "ml", "ai", "qa", "test",
}

// domainWords are coarse industry tokens matched by substring.
var domainWords = []string{
	"fintech", "healthcare", "ecommerce", "e-commerce", "retail", "logistics",
	"cloud", "saas", "banking", "insurance", "telecom", "education",
	"gaming", "media", "adtech", "security", "iot", "automotive",
}

// ExtractYearsOfExperience scans for patterns like "3 years", "5+ years",
// "7 yrs", "2-4 years" (a range counts as its upper bound) and returns the
// maximum value found. ok is false when no pattern matches.
func ExtractYearsOfExperience(text string) (years int, ok bool) {
	if text == "" {
		return 0, false
	}

	best := -1
	for _, match := range yearsPattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(match[1]); err == nil && n > best {
			best = n
		}
	}
	for _, match := range rangePattern.FindAllStringSubmatch(text, -1) {
		lo, errLo := strconv.Atoi(match[1])
		hi, errHi := strconv.Atoi(match[2])
		if errLo != nil || errHi != nil {
			continue
		}
		if hi < lo {
			hi = lo
		}
		if hi > best {
			best = hi
		}
	}

	if best < 0 {
		return 0, false
	}
	return best, true
}

// ExtractRoleTokens returns the fixed-vocabulary role words present in text.
func ExtractRoleTokens(text string) []string {
	return substringTokens(text, roleWords)
}

// ExtractDomainTokens returns the fixed-vocabulary industry words present in
// text.
func ExtractDomainTokens(text string) []string {
	return substringTokens(text, domainWords)
}

func substringTokens(text string, vocabulary []string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var tokens []string
	for _, word := range vocabulary {
		if strings.Contains(lower, word) {
			tokens = append(tokens, word)
		}
	}
	sort.Strings(tokens)
	return tokens
}
