// Package main provides the entry point for the resume-job match engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Resume-job matching and scoring engine",
	Long:  "match_agent scores resumes against job descriptions, evaluates ATS friendliness, optimizes resume text, and generates interview preparation material. Without a GEMINI_API_KEY it runs fully offline on deterministic heuristics.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
