package main

import (
	"context"
	"os"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/observability"
	"github.com/jonathan/job-match-engine/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Score a resume text file against a job description text file. Produces a MatchResult JSON with sub-scores, keyword analysis, suggestions, and a diagnostic breakdown.",
	RunE:  runScore,
}

var (
	scoreConfigFile   string
	scoreResumeFile   string
	scoreJobFile      string
	scoreOutputFile   string
	scoreAPIKey       string
	scoreModel        string
	scoreVerbose      bool
	scoreResumeSkills []string
	scoreJobSkills    []string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job description text file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	scoreCmd.Flags().StringVar(&scoreModel, "model", "", "Primary model identifier")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted result summary")
	scoreCmd.Flags().StringSliceVar(&scoreResumeSkills, "resume-skills", nil, "Pre-parsed resume skills (comma-separated)")
	scoreCmd.Flags().StringSliceVar(&scoreJobSkills, "job-skills", nil, "Pre-parsed job required skills (comma-separated)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(scoreConfigFile, &config.Config{
		Resume:  scoreResumeFile,
		Job:     scoreJobFile,
		Output:  scoreOutputFile,
		APIKey:  scoreAPIKey,
		Model:   scoreModel,
		Verbose: scoreVerbose,
	})
	if err != nil {
		return err
	}

	resumeText, err := readTextFile(cfg.Resume, "resume")
	if err != nil {
		return err
	}
	jobText, err := readTextFile(cfg.Job, "job")
	if err != nil {
		return err
	}

	ctx := context.Background()
	comps := buildComponents(ctx, cfg)
	defer comps.close()

	result := comps.engine.Score(ctx, types.ScoreRequest{
		ResumeText:   resumeText,
		JobText:      jobText,
		ResumeSkills: scoreResumeSkills,
		JobSkills:    scoreJobSkills,
	})

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatchResult(&result)
	}

	return writeJSON(cfg.Output, result)
}
