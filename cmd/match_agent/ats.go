package main

import (
	"context"
	"os"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/observability"
	"github.com/spf13/cobra"
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Evaluate a resume for ATS friendliness",
	Long:  "Evaluate a resume text file against an applicant-tracking-system rubric: structure, keywords, skills, readability, and impact. Works fully offline in mock mode.",
	RunE:  runAts,
}

var (
	atsConfigFile string
	atsResumeFile string
	atsOutputFile string
	atsAPIKey     string
	atsVerbose    bool
)

func init() {
	atsCmd.Flags().StringVarP(&atsConfigFile, "config", "c", "", "Path to JSON config file")
	atsCmd.Flags().StringVarP(&atsResumeFile, "resume", "r", "", "Path to resume text file (required)")
	atsCmd.Flags().StringVarP(&atsOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	atsCmd.Flags().StringVar(&atsAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	atsCmd.Flags().BoolVarP(&atsVerbose, "verbose", "v", false, "Print a formatted evaluation summary")

	rootCmd.AddCommand(atsCmd)
}

func runAts(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(atsConfigFile, &config.Config{
		Resume:  atsResumeFile,
		Output:  atsOutputFile,
		APIKey:  atsAPIKey,
		Verbose: atsVerbose,
	})
	if err != nil {
		return err
	}

	resumeText, err := readTextFile(cfg.Resume, "resume")
	if err != nil {
		return err
	}

	ctx := context.Background()
	comps := buildComponents(ctx, cfg)
	defer comps.close()

	result := comps.evaluator.Evaluate(ctx, resumeText)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintAtsResult(&result)
	}

	return writeJSON(cfg.Output, result)
}
