// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Job    string `json:"job,omitempty"`    // Path to job description text file
	Jobs   string `json:"jobs,omitempty"`   // Path to batch jobs JSON file
	Output string `json:"output,omitempty"` // Path to write the JSON result to

	// Completion service
	APIKey         string   `json:"api_key,omitempty"`         // Gemini API key
	Model          string   `json:"model,omitempty"`           // Primary model identifier
	FallbackModels []string `json:"fallback_models,omitempty"` // Ordered fallback chain

	// Behavior
	Verbose     bool     `json:"verbose,omitempty"`                             // Print detailed result breakdown
	Concurrency int      `json:"concurrency,omitempty" validate:"gte=0,lte=64"` // Parallel batch workers (0 = sequential)
	Weights     *Weights `json:"weights,omitempty"`                             // Override combination weights
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// EffectiveWeights returns the configured weight overrides, or the defaults
// when none were set.
func (c *Config) EffectiveWeights() Weights {
	if c.Weights != nil {
		return *c.Weights
	}
	return DefaultWeights()
}

// MergeFlags overlays non-zero CLI flag values onto the file configuration.
// Flags always win over file values.
func (c *Config) MergeFlags(flags *Config) {
	if flags == nil {
		return
	}
	if flags.Resume != "" {
		c.Resume = flags.Resume
	}
	if flags.Job != "" {
		c.Job = flags.Job
	}
	if flags.Jobs != "" {
		c.Jobs = flags.Jobs
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.APIKey != "" {
		c.APIKey = flags.APIKey
	}
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if len(flags.FallbackModels) > 0 {
		c.FallbackModels = flags.FallbackModels
	}
	if flags.Verbose {
		c.Verbose = true
	}
	if flags.Concurrency != 0 {
		c.Concurrency = flags.Concurrency
	}
}

// ResolveAPIKey returns the configured API key, falling back to the
// GEMINI_API_KEY environment variable. An empty result means mock mode.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}
