package ats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// ErrAnalysisInFlight is returned when an analysis is already running; only
// one upload is analyzed at a time.
var ErrAnalysisInFlight = errors.New("an analysis is already in progress")

// ErrUnsupportedFileType is returned for uploads outside the PDF/DOCX
// allow-list. The checker never leaves Idle for these.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// Result is the outcome of one analysis run.
type Result struct {
	State    models.AnalysisState `json:"state"`
	Filename string               `json:"filename"`
	Report   *models.ATSReport    `json:"report,omitempty"`
	Error    string               `json:"error,omitempty"`
	Duration time.Duration        `json:"-"`
}

// extractFunc matches ExtractText; injectable for tests.
type extractFunc func(mimeType string, data []byte) (string, error)

// Checker runs uploaded documents through the configured scorer. It tracks
// the Idle/Analyzing/Results/Failed lifecycle and rejects concurrent runs.
// Analysis results are never written into the resume store.
type Checker struct {
	config  *config.Config
	scorer  Scorer
	extract extractFunc
	logger  logging.Logger

	mu       sync.Mutex
	inFlight bool
	state    models.AnalysisState
	last     *Result
}

// NewChecker creates the ATS checker.
func NewChecker(cfg *config.Config, scorer Scorer) *Checker {
	return &Checker{
		config:  cfg,
		scorer:  scorer,
		extract: ExtractText,
		logger:  logging.GetGlobalLogger(),
		state:   models.AnalysisIdle,
	}
}

// State returns the current lifecycle state.
func (c *Checker) State() models.AnalysisState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastResult returns the most recent run's outcome, or nil before any run.
func (c *Checker) LastResult() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Analyze runs one uploaded document through extraction and scoring. The
// MIME allow-list is enforced before the checker enters Analyzing, so a
// rejected upload leaves the previous state untouched. A second call while a
// run is active fails with ErrAnalysisInFlight.
func (c *Checker) Analyze(ctx context.Context, filename, mimeType string, body io.Reader) (*Result, error) {
	if !IsSupported(mimeType) {
		c.logger.Warn("Upload rejected: file type not allowed", map[string]interface{}{
			"filename":  filename,
			"mime_type": mimeType,
		})
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, mimeType)
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrAnalysisInFlight
	}
	c.inFlight = true
	c.state = models.AnalysisAnalyzing
	c.mu.Unlock()

	startTime := time.Now()
	c.logger.Info("Starting ATS analysis", map[string]interface{}{
		"filename":  filename,
		"mime_type": mimeType,
		"scorer":    c.scorer.Name(),
	})

	result := c.run(ctx, filename, mimeType, body)
	result.Duration = time.Since(startTime)

	c.mu.Lock()
	c.inFlight = false
	c.state = result.State
	c.last = result
	c.mu.Unlock()

	if result.State == models.AnalysisFailed {
		c.logger.Error("ATS analysis failed", map[string]interface{}{
			"filename": filename,
			"error":    result.Error,
		})
		return result, utils.NewAnalysisError(result.Error)
	}

	c.logger.Info("ATS analysis completed", map[string]interface{}{
		"filename":        filename,
		"score":           result.Report.Score,
		"processing_time": result.Duration.String(),
	})
	return result, nil
}

func (c *Checker) run(ctx context.Context, filename, mimeType string, body io.Reader) *Result {
	result := &Result{Filename: filename}

	data, err := readAll(body, c.config.ATS.MaxUploadBytes)
	if err != nil {
		result.State = models.AnalysisFailed
		result.Error = err.Error()
		return result
	}

	text, err := c.extract(mimeType, data)
	if err != nil {
		result.State = models.AnalysisFailed
		result.Error = err.Error()
		return result
	}

	report, err := c.scorer.Score(ctx, Document{
		Filename: filename,
		MIMEType: mimeType,
		Text:     text,
	})
	if err != nil {
		result.State = models.AnalysisFailed
		result.Error = err.Error()
		return result
	}

	result.State = models.AnalysisResults
	result.Report = &report
	return result
}
