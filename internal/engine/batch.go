package engine

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-match-engine/internal/types"
)

// BatchScore scores one resume against many jobs. Each job is processed
// independently: a per-job failure is captured on its entry with a zero
// score and never aborts the rest of the batch. Results are sorted by score,
// best match first.
//
// The default is sequential processing; cancellation between items returns
// the results accumulated so far. With WithConcurrency(n>1) jobs run on a
// bounded worker pool instead.
func (e *Engine) BatchScore(ctx context.Context, resumeText string, jobs []types.JobDescriptor) []types.JobMatch {
	if len(jobs) == 0 {
		return []types.JobMatch{}
	}

	var matches []types.JobMatch
	if e.concurrency > 1 {
		matches = e.scoreParallel(ctx, resumeText, jobs)
	} else {
		matches = e.scoreSequential(ctx, resumeText, jobs)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

func (e *Engine) scoreSequential(ctx context.Context, resumeText string, jobs []types.JobDescriptor) []types.JobMatch {
	matches := make([]types.JobMatch, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return matches
		}
		matches = append(matches, e.scoreOne(ctx, resumeText, job))
	}
	return matches
}

func (e *Engine) scoreParallel(ctx context.Context, resumeText string, jobs []types.JobDescriptor) []types.JobMatch {
	matches := make([]types.JobMatch, len(jobs))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(e.concurrency)
	for i, job := range jobs {
		i, job := i, job
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				matches[i] = failedMatch(job, err.Error())
				return nil
			}
			matches[i] = e.scoreOne(gctx, resumeText, job)
			return nil
		})
	}
	// Workers never return errors; failures live on their entries.
	_ = group.Wait()

	return matches
}

// scoreOne handles a single batch entry, assigning an ID when the descriptor
// has none.
func (e *Engine) scoreOne(ctx context.Context, resumeText string, job types.JobDescriptor) types.JobMatch {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if strings.TrimSpace(job.JobText) == "" {
		return failedMatch(job, "job descriptor has empty job_text")
	}

	result := e.Score(ctx, types.ScoreRequest{
		ResumeText:      resumeText,
		JobText:         job.JobText,
		JobSkills:       job.RequiredSkills,
		JobRequirements: job.ExperienceRequirements,
	})

	return types.JobMatch{
		JobID:      job.ID,
		JobTitle:   job.Title,
		Company:    job.Company,
		MatchScore: result.OverallScore,
		Details:    &result,
	}
}

func failedMatch(job types.JobDescriptor, errText string) types.JobMatch {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	return types.JobMatch{
		JobID:    job.ID,
		JobTitle: job.Title,
		Company:  job.Company,
		Error:    errText,
	}
}
