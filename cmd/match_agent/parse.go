package main

import (
	"context"
	"fmt"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract structured data from a resume or job description",
	Long:  "Extract structured skills, experience, and requirement lists from a resume or job description text file. Exactly one of --resume and --job must be given.",
	RunE:  runParse,
}

var (
	parseConfigFile string
	parseResumeFile string
	parseJobFile    string
	parseOutputFile string
	parseAPIKey     string
)

func init() {
	parseCmd.Flags().StringVarP(&parseConfigFile, "config", "c", "", "Path to JSON config file")
	parseCmd.Flags().StringVarP(&parseResumeFile, "resume", "r", "", "Path to resume text file")
	parseCmd.Flags().StringVarP(&parseJobFile, "job", "j", "", "Path to job description text file")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	if (parseResumeFile == "") == (parseJobFile == "") {
		return fmt.Errorf("exactly one of --resume and --job is required")
	}

	cfg, err := resolveConfig(parseConfigFile, &config.Config{
		Resume: parseResumeFile,
		Job:    parseJobFile,
		Output: parseOutputFile,
		APIKey: parseAPIKey,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	comps := buildComponents(ctx, cfg)
	defer comps.close()

	if cfg.Resume != "" {
		resumeText, err := readTextFile(cfg.Resume, "resume")
		if err != nil {
			return err
		}
		return writeJSON(cfg.Output, comps.analyzer.ParseResume(ctx, resumeText))
	}

	jobText, err := readTextFile(cfg.Job, "job")
	if err != nil {
		return err
	}
	return writeJSON(cfg.Output, comps.analyzer.ParseJob(ctx, jobText))
}
