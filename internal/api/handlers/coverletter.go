package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/middleware"
	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/store"
	"resumeforge/internal/validation"
	"resumeforge/pkg/models"
)

// GenerateCoverLetterHandler validates the letter fields, builds the prompt
// from the referenced resume and runs it through the LLM manager. Generated
// letters are returned to the client and never persisted.
func GenerateCoverLetterHandler(cfg *config.Config, s *store.Store, manager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := middleware.RequestID(c)
		logger := logging.GetGlobalLogger()

		var req models.GenerateCoverLetterRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		if err := validation.CoverLetterRequest(req); err != nil {
			verr, _ := validation.AsError(err)
			return validationJSON(c, http.StatusBadRequest, verr)
		}

		resume, ok := s.GetResume(req.ResumeID)
		if !ok {
			return errorJSON(c, http.StatusNotFound, "resume_not_found", "No resume with id "+req.ResumeID)
		}

		logger.Info("Cover letter generation requested", map[string]interface{}{
			"request_id": requestID,
			"resume_id":  req.ResumeID,
			"company":    req.CompanyName,
			"job_title":  req.JobTitle,
		})

		content, err := manager.GenerateText(c.Request().Context(), llm.GenerateRequest{
			System:      llm.CoverLetterSystemPrompt,
			Prompt:      llm.BuildCoverLetterPrompt(req, resume),
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
		})
		if err != nil {
			logger.Error("Cover letter generation failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return errorJSON(c, http.StatusBadGateway, "generation_failed", "Failed to generate cover letter. Please check your API key and try again.")
		}

		logger.Info("Cover letter generated", map[string]interface{}{
			"request_id":      requestID,
			"content_length":  len(content),
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.GenerateCoverLetterResponse{
			Success:     true,
			Content:     content,
			GeneratedAt: time.Now(),
			RequestID:   requestID,
		})
	}
}
