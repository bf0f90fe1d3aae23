package config

import (
	"fmt"
	"math"
)

// Weights holds every fixed combination weight the engine uses. The defaults
// are the canonical values; overriding them is supported for experimentation
// but each group must still sum to 1.
type Weights struct {
	// Overall match score combination.
	Skills     float64 `json:"skills" validate:"gte=0,lte=1"`
	Experience float64 `json:"experience" validate:"gte=0,lte=1"`
	Keywords   float64 `json:"keywords" validate:"gte=0,lte=1"`

	// AI vs rule-based blend applied per sub-score when the caller supplied
	// structured lists.
	AI        float64 `json:"ai" validate:"gte=0,lte=1"`
	RuleBased float64 `json:"rule_based" validate:"gte=0,lte=1"`

	// ATS rubric combination.
	ATSStructure   float64 `json:"ats_structure" validate:"gte=0,lte=1"`
	ATSKeyword     float64 `json:"ats_keyword" validate:"gte=0,lte=1"`
	ATSSkills      float64 `json:"ats_skills" validate:"gte=0,lte=1"`
	ATSReadability float64 `json:"ats_readability" validate:"gte=0,lte=1"`
	ATSImpact      float64 `json:"ats_impact" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the canonical weight set.
func DefaultWeights() Weights {
	return Weights{
		Skills:     0.4,
		Experience: 0.3,
		Keywords:   0.3,

		AI:        0.7,
		RuleBased: 0.3,

		ATSStructure:   0.25,
		ATSKeyword:     0.25,
		ATSSkills:      0.20,
		ATSReadability: 0.15,
		ATSImpact:      0.15,
	}
}

const weightSumTolerance = 1e-6

// Validate checks that each weight group sums to 1.
func (w Weights) Validate() error {
	groups := []struct {
		name string
		sum  float64
	}{
		{"overall", w.Skills + w.Experience + w.Keywords},
		{"blend", w.AI + w.RuleBased},
		{"ats", w.ATSStructure + w.ATSKeyword + w.ATSSkills + w.ATSReadability + w.ATSImpact},
	}
	for _, group := range groups {
		if math.Abs(group.sum-1.0) > weightSumTolerance {
			return fmt.Errorf("config error: %s weights must sum to 1, got %.4f", group.name, group.sum)
		}
	}
	return nil
}
