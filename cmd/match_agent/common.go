package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-match-engine/internal/ats"
	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/engine"
	"github.com/jonathan/job-match-engine/internal/llm"
)

// resolveConfig loads the optional config file and overlays CLI flag values.
func resolveConfig(configPath string, flags *config.Config) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.MergeFlags(flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// components bundles everything a subcommand can need, wired from one
// resolved configuration.
type components struct {
	engine    *engine.Engine
	evaluator *ats.Evaluator
	analyzer  *llm.Analyzer
	close     func()
}

// buildComponents wires the completion client, analyzer, engine, and ATS
// evaluator. The close func releases the client connection.
func buildComponents(ctx context.Context, cfg *config.Config) *components {
	modelConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		modelConfig.PrimaryModel = cfg.Model
	}
	if len(cfg.FallbackModels) > 0 {
		modelConfig.FallbackModels = cfg.FallbackModels
	}

	client := llm.NewGeminiClient(ctx, modelConfig, cfg.ResolveAPIKey())
	if client.Mock() {
		fmt.Fprintln(os.Stderr, "No API key configured; running in mock mode with heuristic scoring.")
	}

	analyzer := llm.NewAnalyzer(client, modelConfig)
	weights := cfg.EffectiveWeights()

	return &components{
		engine: engine.New(analyzer,
			engine.WithWeights(weights),
			engine.WithConcurrency(cfg.Concurrency),
		),
		evaluator: ats.New(analyzer, ats.WithWeights(weights)),
		analyzer:  analyzer,
		close:     func() { _ = client.Close() },
	}
}

// readTextFile reads a required input file.
func readTextFile(path, label string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%s file is required", label)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s file: %w", label, err)
	}
	return string(data), nil
}

// writeJSON marshals v with indentation to the given path, or stdout when
// the path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
