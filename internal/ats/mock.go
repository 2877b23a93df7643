package ats

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"resumeforge/internal/config"
	"resumeforge/pkg/models"
)

// mockFeedback is the fixed finding set every mock analysis reports.
var mockFeedback = []models.ATSFeedback{
	{Type: models.FeedbackError, Message: "Complex formatting detected - tables or columns may not parse correctly"},
	{Type: models.FeedbackWarning, Message: "Some keywords from the job description are missing"},
	{Type: models.FeedbackSuccess, Message: "Contact information is clearly formatted and parseable"},
}

// mockSuggestions is the fixed suggestion set every mock analysis reports.
var mockSuggestions = []string{
	`Use standard section headings (e.g., "Work Experience", "Education")`,
	"Avoid tables, columns, and text boxes",
	"Include more industry-specific keywords",
	"Use standard bullet points for lists",
	"Ensure all dates are in a consistent format (MM/YYYY)",
}

// sectionKeywords are the headings the mock scorer looks for in the document.
var sectionKeywords = []string{
	"experience",
	"education",
	"skills",
	"summary",
	"projects",
	"certifications",
}

// MockScorer simulates an external scoring API: a fixed processing delay, a
// score in the 70-100 band and a canned finding set.
type MockScorer struct {
	delay time.Duration
	rand  *rand.Rand
}

// NewMockScorer creates the simulated scorer.
func NewMockScorer(cfg *config.Config) *MockScorer {
	return &MockScorer{
		delay: cfg.ATS.MockDelay,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Score waits out the simulated delay, then returns the canned report. The
// delay is cancellable through the context.
func (s *MockScorer) Score(ctx context.Context, doc Document) (models.ATSReport, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return models.ATSReport{}, ctx.Err()
		case <-timer.C:
		}
	}

	report := models.ATSReport{
		Score:       s.rand.Intn(30) + 70,
		Feedback:    append([]models.ATSFeedback(nil), mockFeedback...),
		Suggestions: append([]string(nil), mockSuggestions...),
		Keywords:    foundKeywords(doc.Text),
	}
	return report, nil
}

// Name returns the scorer name.
func (s *MockScorer) Name() string {
	return "mock"
}

// foundKeywords reports which standard section headings appear in the text.
func foundKeywords(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, kw := range sectionKeywords {
		if strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}
