package ats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/pkg/models"
)

// LLMScorer delegates scoring to the configured LLM provider. The model is
// asked for strict JSON matching the report shape.
type LLMScorer struct {
	config  *config.Config
	manager *llm.Manager
}

// NewLLMScorer creates the LLM-backed scorer.
func NewLLMScorer(cfg *config.Config, manager *llm.Manager) *LLMScorer {
	return &LLMScorer{
		config:  cfg,
		manager: manager,
	}
}

// Score sends the extracted text to the LLM and parses the returned report.
func (s *LLMScorer) Score(ctx context.Context, doc Document) (models.ATSReport, error) {
	prompt := buildScoringPrompt(doc)

	raw, err := s.manager.GenerateText(ctx, llm.GenerateRequest{
		Prompt:      prompt,
		MaxTokens:   s.config.LLM.MaxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return models.ATSReport{}, fmt.Errorf("scoring request failed: %w", err)
	}

	var report models.ATSReport
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &report); err != nil {
		return models.ATSReport{}, fmt.Errorf("failed to parse scoring response: %w", err)
	}

	if report.Score < 0 {
		report.Score = 0
	}
	if report.Score > 100 {
		report.Score = 100
	}
	return report, nil
}

// Name returns the scorer name.
func (s *LLMScorer) Name() string {
	return "llm"
}

func buildScoringPrompt(doc Document) string {
	return fmt.Sprintf(`You are an applicant tracking system (ATS) compatibility analyzer. Analyze the resume text below and return a JSON object with exactly these fields:

{
  "score": number - Overall ATS compatibility score from 0 to 100,
  "feedback": [
    {
      "type": "string - one of: success, warning, error, info",
      "message": "string - A specific finding about the resume"
    }
  ],
  "suggestions": ["array of strings - Concrete improvements the candidate should make"],
  "keywords": ["array of strings - Notable skills and section keywords found in the resume"]
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. Include at least 3 feedback items covering formatting, keywords and structure
3. Include at least 3 suggestions

Resume file: %s

Resume text:
%s`, doc.Filename, doc.Text)
}

// CleanJSON strips Markdown code fences the model sometimes wraps around its
// JSON output.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
