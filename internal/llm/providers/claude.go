package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
)

// ClaudeProvider implements text generation using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// GenerateText runs one prompt through Claude and returns the text output.
func (cp *ClaudeProvider) GenerateText(ctx context.Context, system, prompt string, maxTokens int, temperature float32) (string, error) {
	startTime := time.Now()

	cp.logger.Debug("Starting text generation with Claude", map[string]interface{}{
		"prompt_length": len(prompt),
		"max_tokens":    maxTokens,
		"provider":      "claude",
	})

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(float64(temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	}

	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	response, err := cp.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	text, err := extractText(response)
	if err != nil {
		return "", err
	}

	cp.logger.Debug("Text generation completed successfully", map[string]interface{}{
		"response_length": len(text),
		"processing_time": time.Since(startTime).String(),
		"provider":        "claude",
	})

	return text, nil
}

// extractText pulls the first text block out of a Claude response.
func extractText(response *anthropic.Message) (string, error) {
	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if strings.TrimSpace(responseText) == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}

	return responseText, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	// Minimal round trip to confirm the API is reachable
	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.LLM.Model),
		MaxTokens: 10,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// Name returns the name of the LLM provider
func (cp *ClaudeProvider) Name() string {
	return "claude"
}
