package main

import (
	"context"
	"os"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/observability"
	"github.com/spf13/cobra"
)

var prepCmd = &cobra.Command{
	Use:   "prep",
	Short: "Generate interview preparation material from a job description",
	Long:  "Generate interview preparation material from a job description text file: 10-15 question/answer pairs grounded in the JD by default, or categorized question lists with --questions.",
	RunE:  runPrep,
}

var (
	prepConfigFile string
	prepJobFile    string
	prepOutputFile string
	prepAPIKey     string
	prepQuestions  bool
	prepVerbose    bool
)

func init() {
	prepCmd.Flags().StringVarP(&prepConfigFile, "config", "c", "", "Path to JSON config file")
	prepCmd.Flags().StringVarP(&prepJobFile, "job", "j", "", "Path to job description text file (required)")
	prepCmd.Flags().StringVarP(&prepOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	prepCmd.Flags().StringVar(&prepAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	prepCmd.Flags().BoolVar(&prepQuestions, "questions", false, "Output categorized question lists instead of Q&A pairs")
	prepCmd.Flags().BoolVarP(&prepVerbose, "verbose", "v", false, "Print a formatted summary")

	rootCmd.AddCommand(prepCmd)
}

func runPrep(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(prepConfigFile, &config.Config{
		Job:     prepJobFile,
		Output:  prepOutputFile,
		APIKey:  prepAPIKey,
		Verbose: prepVerbose,
	})
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

	if prepQuestions {
		questions := comps.analyzer.InterviewQuestions(ctx, jobText)
		if cfg.Verbose {
			observability.NewPrinter(os.Stderr).PrintInterviewQuestions(&questions)
		}
		return writeJSON(cfg.Output, questions)
	}

	prep := comps.analyzer.InterviewQA(ctx, jobText)
	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintInterviewPrep(&prep)
	}
	return writeJSON(cfg.Output, prep)
}
