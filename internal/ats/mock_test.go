package ats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

func TestMockScorer_ScoreBand(t *testing.T) {
	scorer := NewMockScorer(testConfig())

	for i := 0; i < 50; i++ {
		report, err := scorer.Score(context.Background(), Document{Text: "resume"})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, report.Score, 70)
		assert.LessOrEqual(t, report.Score, 99)
	}
}

func TestMockScorer_FixedFindings(t *testing.T) {
	scorer := NewMockScorer(testConfig())

	report, err := scorer.Score(context.Background(), Document{Text: "resume"})
	require.NoError(t, err)

	require.Len(t, report.Feedback, 3)
	assert.Equal(t, models.FeedbackError, report.Feedback[0].Type)
	assert.Equal(t, models.FeedbackWarning, report.Feedback[1].Type)
	assert.Equal(t, models.FeedbackSuccess, report.Feedback[2].Type)
	assert.Len(t, report.Suggestions, 5)
}

func TestMockScorer_KeywordsFromText(t *testing.T) {
	scorer := NewMockScorer(testConfig())

	report, err := scorer.Score(context.Background(), Document{
		Text: "Work Experience\nEducation\nnothing else",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"experience", "education"}, report.Keywords)
}

func TestMockScorer_DelayIsCancellable(t *testing.T) {
	cfg := testConfig()
	cfg.ATS.MockDelay = time.Minute
	scorer := NewMockScorer(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := scorer.Score(ctx, Document{Text: "resume"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `{"score": 80}`, `{"score": 80}`},
		{"json fence", "```json\n{\"score\": 80}\n```", `{"score": 80}`},
		{"plain fence", "```\n{\"score\": 80}\n```", `{"score": 80}`},
		{"surrounding whitespace", "  {\"score\": 80}\n", `{"score": 80}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSON(tt.input))
		})
	}
}
