package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/observability"
	"github.com/jonathan/job-match-engine/internal/types"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a resume against many jobs",
	Long:  "Score a resume text file against a JSON array of job descriptors. Produces per-job results sorted by match score, best first. A failure on one job never aborts the rest.",
	RunE:  runBatch,
}

var (
	batchConfigFile  string
	batchResumeFile  string
	batchJobsFile    string
	batchOutputFile  string
	batchAPIKey      string
	batchConcurrency int
	batchVerbose     bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchConfigFile, "config", "c", "", "Path to JSON config file")
	batchCmd.Flags().StringVarP(&batchResumeFile, "resume", "r", "", "Path to resume text file (required)")
	batchCmd.Flags().StringVar(&batchJobsFile, "jobs", "", "Path to JSON file with an array of job descriptors (required)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Parallel workers (0 = sequential)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print a formatted batch summary")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(batchConfigFile, &config.Config{
		Resume:      batchResumeFile,
		Jobs:        batchJobsFile,
		Output:      batchOutputFile,
		APIKey:      batchAPIKey,
		Concurrency: batchConcurrency,
		Verbose:     batchVerbose,
	})
	if err != nil {
		return err
	}

	resumeText, err := readTextFile(cfg.Resume, "resume")
	if err != nil {
		return err
	}

	jobs, err := loadJobDescriptors(cfg.Jobs)
	if err != nil {
		return err
	}

	ctx := context.Background()
	comps := buildComponents(ctx, cfg)
	defer comps.close()

	matches := comps.engine.BatchScore(ctx, resumeText, jobs)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintBatchResults(matches)
	}

	return writeJSON(cfg.Output, matches)
}

func loadJobDescriptors(path string) ([]types.JobDescriptor, error) {
	if path == "" {
		return nil, fmt.Errorf("jobs file is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file: %w", err)
	}

	var jobs []types.JobDescriptor
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse jobs JSON: %w", err)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("jobs file contains no job descriptors")
	}
	for i, job := range jobs {
		if err := job.Validate(); err != nil {
			return nil, fmt.Errorf("job descriptor %d is invalid: %w", i, err)
		}
	}
	return jobs, nil
}
