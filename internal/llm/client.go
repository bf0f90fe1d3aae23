package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Completer is the narrow interface to a remote text-completion endpoint.
type Completer interface {
	// Complete sends a prompt and returns the raw model text. An empty model
	// selects the configured primary model.
	Complete(ctx context.Context, prompt string, maxTokens int32, model string) (string, error)
	// Model returns the configured primary model identifier.
	Model() string
	// Mock reports whether the client operates without credentials,
	// returning an empty JSON object for every completion.
	Mock() bool
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Completer against Google Gemini. Constructed
// without an API key it runs in mock mode: Complete returns "{}" and every
// higher-level operation supplies its own heuristic computation. Mock mode is
// a first-class operating mode, not a degraded error state.
type GeminiClient struct {
	client *genai.Client
	config *Config
	mock   bool
}

// NewGeminiClient creates a completion client. A missing API key or a client
// construction failure yields a mock-mode client rather than an error, so a
// credential problem can never prevent the engine from starting.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) *GeminiClient {
	if config == nil {
		config = DefaultConfig()
	}

	if apiKey == "" {
		return &GeminiClient{config: config, mock: true}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return &GeminiClient{config: config, mock: true}
	}

	return &GeminiClient{client: client, config: config}
}

// Complete sends the prompt to the selected model at low temperature.
func (c *GeminiClient) Complete(ctx context.Context, prompt string, maxTokens int32, model string) (string, error) {
	if c.mock {
		return "{}", nil
	}

	if model == "" {
		model = c.config.PrimaryModel
	}

	genModel := c.client.GenerativeModel(model)
	genModel.SetTemperature(0.1) // Low temperature for consistent output
	if maxTokens > 0 {
		genModel.SetMaxOutputTokens(maxTokens)
	}

	resp, err := genModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if IsModelUnsupported(err.Error()) {
			return "", fmt.Errorf("model %s unavailable: %w", model, err)
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return extractTextFromResponse(resp)
}

// Model returns the primary model identifier.
func (c *GeminiClient) Model() string {
	return c.config.PrimaryModel
}

// Mock reports whether the client runs without credentials.
func (c *GeminiClient) Mock() bool {
	return c.mock
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse joins the text parts of a Gemini response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", ErrUnavailable)
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content in response", ErrUnavailable)
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("%w: no text parts in response", ErrUnavailable)
	}

	return strings.Join(parts, ""), nil
}
