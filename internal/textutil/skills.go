// Package textutil provides the pure text heuristics every fallback path in
// the engine is built on: skill extraction, overlap percentages,
// years-of-experience detection, and role/domain token matching. All
// functions are total; malformed input yields an empty result, never an
// error.
package textutil

import (
	"regexp"
	"sort"
	"strings"
)

// maxSkills bounds the output of ExtractSkills so pathological input cannot
// blow up downstream prompt sizes.
const maxSkills = 100

// Curated vocabulary pattern groups: languages, frontend, backend, data
// stores, cloud/infra, API styles, CI/CD, ML, process, enterprise tooling,
// architecture terms.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:Python|Java|C\+\+|C#|Go|Ruby|PHP|TypeScript|JavaScript)\b`),
	regexp.MustCompile(`(?i)\b(?:React|Angular|Vue|Next\.js|Nuxt|Svelte|Redux|Tailwind|HTML|CSS|SASS)\b`),
	regexp.MustCompile(`(?i)\b(?:Node\.?js|Express|NestJS|Django|Flask|Spring|Spring Boot|Laravel|Rails)\b`),
	regexp.MustCompile(`(?i)\b(?:SQL|NoSQL|PostgreSQL|MySQL|SQLite|MongoDB|Redis|Elasticsearch|Kafka|RabbitMQ)\b`),
	regexp.MustCompile(`(?i)\b(?:AWS|Azure|GCP|CloudFormation|Terraform|Ansible|Docker|Kubernetes|Helm)\b`),
	regexp.MustCompile(`(?i)\b(?:REST|GraphQL|gRPC|WebSockets|APIs?)\b`),
	regexp.MustCompile(`(?i)\b(?:CI/CD|Jenkins|GitHub Actions|GitLab CI|CircleCI|Travis)\b`),
	regexp.MustCompile(`(?i)\b(?:Machine Learning|Deep Learning|AI|Data Science|NLP|Computer Vision|Analytics|Statistics|TensorFlow|PyTorch|sklearn|NumPy|pandas)\b`),
	regexp.MustCompile(`(?i)\b(?:Project Management|Agile|Scrum|Kanban|Leadership|Communication|Stakeholder Management)\b`),
	regexp.MustCompile(`(?i)\b(?:Salesforce|SAP|Oracle|Tableau|Power BI|Looker|Snowflake|Databricks)\b`),
	regexp.MustCompile(`(?i)\b(?:Microservices|Event[- ]Driven|Domain[- ]Driven Design|DDD|TDD|BDD)\b`),
}

// capitalizedToken catches proper-noun technologies the curated list misses
// (product names, niche frameworks).
var capitalizedToken = regexp.MustCompile(`\b([A-Z][A-Za-z0-9+#.\-]{2,})\b`)

// ExtractSkills scans text for known skill keywords plus capitalized
// technology-looking tokens, returning a sorted, de-duplicated list capped at
// 100 entries.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}

	raw := make(map[string]bool)
	for _, pattern := range skillPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			raw[match] = true
		}
	}

	// Normalize capitalization: keep short all-caps branding (SQL, AWS)
	// exact, title-case fully lowercased matches, leave mixed case alone.
	normalized := make(map[string]string) // lowercase key -> display form
	for skill := range raw {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		display := skill
		if skill == strings.ToUpper(skill) && len(skill) <= 5 {
			display = skill
		} else if !strings.ContainsFunc(skill, isLowerLetter) {
			display = titleCase(skill)
		}
		normalized[strings.ToLower(display)] = display
	}

	// Secondary heuristic: capitalized tokens not already captured.
	for _, match := range capitalizedToken.FindAllStringSubmatch(text, -1) {
		if len(normalized) >= maxSkills {
			break
		}
		token := match[1]
		if _, seen := normalized[strings.ToLower(token)]; !seen {
			normalized[strings.ToLower(token)] = token
		}
	}

	skills := make([]string, 0, len(normalized))
	for _, display := range normalized {
		skills = append(skills, display)
	}
	sort.Strings(skills)
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	return skills
}

// MatchPercentage returns |set(a) ∩ set(b)| / |set(b)| × 100, comparing
// case-insensitively. Returns 0 when b is empty. Asymmetric on purpose: b is
// always the "required" side.
func MatchPercentage(a, b []string) float64 {
	bSet := toSet(b)
	if len(bSet) == 0 {
		return 0.0
	}

	matches := 0
	for item := range toSet(a) {
		if bSet[item] {
			matches++
		}
	}
	return float64(matches) / float64(len(bSet)) * 100.0
}

// Intersection returns the sorted display-form items of b that also appear in
// a, compared case-insensitively, capped at limit (unlimited when limit <= 0).
func Intersection(a, b []string, limit int) []string {
	aSet := toSet(a)
	out := collectSorted(b, func(item string) bool { return aSet[strings.ToLower(item)] })
	return capList(out, limit)
}

// Difference returns the sorted display-form items of b absent from a,
// compared case-insensitively, capped at limit (unlimited when limit <= 0).
func Difference(a, b []string, limit int) []string {
	aSet := toSet(a)
	out := collectSorted(b, func(item string) bool { return !aSet[strings.ToLower(item)] })
	return capList(out, limit)
}

func collectSorted(items []string, keep func(string) bool) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		key := strings.ToLower(item)
		if seen[key] || !keep(item) {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

func capList(items []string, limit int) []string {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(strings.ToLower(item))
		if item != "" {
			set[item] = true
		}
	}
	return set
}

func isLowerLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// titleCase uppercases the first letter of each space-separated word. The
// input here is always a short ASCII skill keyword.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
