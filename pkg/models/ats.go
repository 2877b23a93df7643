package models

// FeedbackType categorizes a single ATS feedback item.
type FeedbackType string

const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackWarning FeedbackType = "warning"
	FeedbackError   FeedbackType = "error"
	FeedbackInfo    FeedbackType = "info"
)

// ATSFeedback is one categorized finding from an ATS analysis.
type ATSFeedback struct {
	Type    FeedbackType `json:"type"`
	Message string       `json:"message"`
}

// ATSReport is the result of analyzing one uploaded document. Score is always
// within 0-100.
type ATSReport struct {
	Score       int           `json:"score"`
	Feedback    []ATSFeedback `json:"feedback"`
	Suggestions []string      `json:"suggestions,omitempty"`
	Keywords    []string      `json:"keywords,omitempty"`
}

// AnalysisState tracks the ATS checker lifecycle. Each analysis is
// independent; results are never written into the resume store.
type AnalysisState string

const (
	AnalysisIdle      AnalysisState = "idle"
	AnalysisAnalyzing AnalysisState = "analyzing"
	AnalysisResults   AnalysisState = "results"
	AnalysisFailed    AnalysisState = "failed"
)
