package main

import (
	"context"
	"os"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/observability"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rewrite a resume toward a job description",
	Long:  "Rewrite a resume text file toward a job description and report the before/after match scores. The improvement figure is clamped at zero.",
	RunE:  runOptimize,
}

var (
	optimizeConfigFile string
	optimizeResumeFile string
	optimizeJobFile    string
	optimizeOutputFile string
	optimizeAPIKey     string
	optimizeVerbose    bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeConfigFile, "config", "c", "", "Path to JSON config file")
	optimizeCmd.Flags().StringVarP(&optimizeResumeFile, "resume", "r", "", "Path to resume text file (required)")
	optimizeCmd.Flags().StringVarP(&optimizeJobFile, "job", "j", "", "Path to job description text file (required)")
	optimizeCmd.Flags().StringVarP(&optimizeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	optimizeCmd.Flags().StringVar(&optimizeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	optimizeCmd.Flags().BoolVarP(&optimizeVerbose, "verbose", "v", false, "Print a formatted optimization summary")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(optimizeConfigFile, &config.Config{
		Resume:  optimizeResumeFile,
		Job:     optimizeJobFile,
		Output:  optimizeOutputFile,
		APIKey:  optimizeAPIKey,
		Verbose: optimizeVerbose,
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

	result := comps.engine.Optimize(ctx, resumeText, jobText)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintOptimizationResult(&result)
	}

	return writeJSON(cfg.Output, result)
}
