// Package ats analyzes uploaded resume documents for applicant tracking
// system compatibility. The checker holds the per-run state machine; scoring
// itself is delegated to a pluggable Scorer collaborator.
package ats

import (
	"context"
	"fmt"

	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/pkg/models"
)

// Document is an uploaded resume after extraction.
type Document struct {
	Filename string
	MIMEType string
	Text     string
}

// Scorer produces an ATS report for one extracted document.
type Scorer interface {
	Score(ctx context.Context, doc Document) (models.ATSReport, error)
	Name() string
}

// NewScorer creates a scorer based on the configuration. The llm manager is
// only required for the "llm" scorer.
func NewScorer(cfg *config.Config, manager *llm.Manager) (Scorer, error) {
	switch cfg.ATS.Scorer {
	case "mock":
		return NewMockScorer(cfg), nil
	case "llm":
		if manager == nil {
			return nil, fmt.Errorf("llm scorer requires an LLM manager")
		}
		return NewLLMScorer(cfg, manager), nil
	default:
		return nil, fmt.Errorf("unsupported ATS scorer: %s", cfg.ATS.Scorer)
	}
}
