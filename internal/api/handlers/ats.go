package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/middleware"
	"resumeforge/internal/ats"
	"resumeforge/internal/config"
	"resumeforge/pkg/models"
)

// AnalyzeResumeHandler accepts one multipart upload under "file" and runs it
// through the ATS checker. The MIME allow-list is enforced before analysis
// starts, a concurrent run is rejected with 409.
func AnalyzeResumeHandler(cfg *config.Config, checker *ats.Checker) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "missing_file", `Upload a resume under the "file" form field`)
		}

		if fileHeader.Size > cfg.ATS.MaxUploadBytes {
			return errorJSON(c, http.StatusRequestEntityTooLarge, "file_too_large", "Uploaded file exceeds the size limit")
		}

		src, err := fileHeader.Open()
		if err != nil {
			return errorJSON(c, http.StatusInternalServerError, "upload_failed", "Failed to read uploaded file")
		}
		defer src.Close()

		mimeType := fileHeader.Header.Get(echo.HeaderContentType)
		result, err := checker.Analyze(c.Request().Context(), fileHeader.Filename, mimeType, src)

		switch {
		case errors.Is(err, ats.ErrUnsupportedFileType):
			return errorJSON(c, http.StatusUnsupportedMediaType, "invalid_file_type", "Please upload a PDF or DOCX file")
		case errors.Is(err, ats.ErrAnalysisInFlight):
			return errorJSON(c, http.StatusConflict, "analysis_in_progress", "An analysis is already in progress")
		case err != nil:
			message := "Analysis failed"
			if result != nil && result.Error != "" {
				message = result.Error
			}
			return errorJSON(c, http.StatusUnprocessableEntity, "analysis_failed", message)
		}

		return c.JSON(http.StatusOK, models.AnalyzeResponse{
			Success:        true,
			State:          result.State,
			Report:         result.Report,
			FileName:       result.Filename,
			ProcessingTime: result.Duration,
			RequestID:      requestID,
		})
	}
}

// AnalysisStateHandler reports the checker's current lifecycle state and the
// last run's outcome.
func AnalysisStateHandler(checker *ats.Checker) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp := map[string]interface{}{
			"state": checker.State(),
		}
		if last := checker.LastResult(); last != nil {
			resp["last_result"] = last
		}
		return c.JSON(http.StatusOK, resp)
	}
}
