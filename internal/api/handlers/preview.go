package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/preview"
	"resumeforge/internal/store"
	"resumeforge/internal/validation"
	"resumeforge/pkg/models"
)

// PreviewResumeHandler renders the selected resume, or a specific one when
// ?resume_id= is given. With no resume to render it returns the empty-state
// projection, not an error.
func PreviewResumeHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var resume *models.Resume

		if id := c.QueryParam("resume_id"); id != "" {
			if r, ok := s.GetResume(id); ok {
				resume = &r
			}
		} else if r, ok := s.SelectedResume(); ok {
			resume = &r
		}

		rendered := preview.RenderResume(resume)

		if c.QueryParam("format") == "text" {
			return c.String(http.StatusOK, rendered.PlainText())
		}
		return c.JSON(http.StatusOK, rendered)
	}
}

// PreviewCoverLetterHandler renders a letter draft in business-letter layout
// without calling the generator.
func PreviewCoverLetterHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.CoverLetterPreviewRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		if err := validation.CoverLetterRequest(req.GenerateCoverLetterRequest); err != nil {
			verr, _ := validation.AsError(err)
			return validationJSON(c, http.StatusBadRequest, verr)
		}

		resume, ok := s.GetResume(req.ResumeID)
		if !ok {
			return errorJSON(c, http.StatusNotFound, "resume_not_found", "No resume with id "+req.ResumeID)
		}

		rendered := preview.RenderCoverLetter(req.GenerateCoverLetterRequest, req.Content, &resume, time.Now())
		return c.JSON(http.StatusOK, rendered)
	}
}
