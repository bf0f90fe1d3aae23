package engine

import (
	"context"
	"math"

	"github.com/jonathan/job-match-engine/internal/types"
)

// Optimize rewrites a resume toward a job description and reports the score
// movement. The improvement figure is clamped at zero: a noisy re-score is
// never reported as a regression caused by the rewrite.
func (e *Engine) Optimize(ctx context.Context, resumeText, jobText string) types.OptimizationResult {
	before := e.Score(ctx, types.ScoreRequest{ResumeText: resumeText, JobText: jobText})

	optimization := e.analyzer.OptimizeResume(ctx, resumeText, jobText)
	if optimization.Error != "" {
		return types.OptimizationResult{
			OptimizedResumeText: resumeText,
			ChangesMade:         []string{},
			KeywordsAdded:       []string{},
			Improvements:        []string{},
			OriginalScore:       before.OverallScore,
			OptimizedScore:      before.OverallScore,
			Status:              types.StatusFailed,
			Error:               optimization.Error,
		}
	}

	after := e.Score(ctx, types.ScoreRequest{ResumeText: optimization.OptimizedResumeText, JobText: jobText})

	return types.OptimizationResult{
		OptimizedResumeText: optimization.OptimizedResumeText,
		ChangesMade:         optimization.ChangesMade,
		KeywordsAdded:       optimization.KeywordsAdded,
		Improvements:        optimization.Improvements,
		OriginalScore:       before.OverallScore,
		OptimizedScore:      after.OverallScore,
		ImprovementScore:    math.Max(0, round2(after.OverallScore-before.OverallScore)),
		Status:              types.StatusCompleted,
	}
}
