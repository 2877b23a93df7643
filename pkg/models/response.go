package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string       `json:"error"`
	Message   string       `json:"message"`
	Fields    []FieldError `json:"fields,omitempty"`
	RequestID string       `json:"request_id"`
	Timestamp time.Time    `json:"timestamp"`
}

// FieldError is a single per-field validation failure, reported inline so the
// client can attach it to the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ResumeResponse wraps a single resume.
type ResumeResponse struct {
	Success bool    `json:"success"`
	Resume  *Resume `json:"resume,omitempty"`
	Message string  `json:"message,omitempty"`
}

// ResumeListResponse wraps the full collection plus the selection cursor.
type ResumeListResponse struct {
	Success          bool     `json:"success"`
	Resumes          []Resume `json:"resumes"`
	SelectedResumeID string   `json:"selected_resume_id,omitempty"`
	Count            int      `json:"count"`
}

// SectionUpdateResponse reports the outcome of a section editor submit.
// Applied is false when the store had no selected resume and the commit was a
// deliberate no-op.
type SectionUpdateResponse struct {
	Success bool    `json:"success"`
	Applied bool    `json:"applied"`
	Message string  `json:"message"`
	Resume  *Resume `json:"resume,omitempty"`
}

// AnalyzeResponse is the ATS checker's terminal response for one upload.
type AnalyzeResponse struct {
	Success        bool          `json:"success"`
	State          AnalysisState `json:"state"`
	Report         *ATSReport    `json:"report,omitempty"`
	FileName       string        `json:"file_name,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// GenerateCoverLetterResponse carries generated prose back to the client; the
// letter is preview-only and never persisted.
type GenerateCoverLetterResponse struct {
	Success     bool      `json:"success"`
	Content     string    `json:"content,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	RequestID   string    `json:"request_id"`
}
