package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/logging"
	"resumeforge/internal/store"
	"resumeforge/pkg/models"
)

// CreateResumeHandler allocates a new empty resume and selects it.
func CreateResumeHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		resume := s.CreateResume(c.Request().Context())

		return c.JSON(http.StatusCreated, models.ResumeResponse{
			Success: true,
			Resume:  &resume,
			Message: "Resume created",
		})
	}
}

// ListResumesHandler returns every resume plus the selection cursor.
func ListResumesHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		resumes := s.ListResumes()

		return c.JSON(http.StatusOK, models.ResumeListResponse{
			Success:          true,
			Resumes:          resumes,
			SelectedResumeID: s.SelectedResumeID(),
			Count:            len(resumes),
		})
	}
}

// GetResumeHandler returns one resume by id.
func GetResumeHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		resume, ok := s.GetResume(id)
		if !ok {
			return errorJSON(c, http.StatusNotFound, "resume_not_found", "No resume with id "+id)
		}

		return c.JSON(http.StatusOK, models.ResumeResponse{
			Success: true,
			Resume:  &resume,
		})
	}
}

// SelectedResumeHandler returns the currently selected resume, if any.
func SelectedResumeHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		resume, ok := s.SelectedResume()
		if !ok {
			return c.JSON(http.StatusOK, models.ResumeResponse{
				Success: true,
				Message: "No resume selected",
			})
		}

		return c.JSON(http.StatusOK, models.ResumeResponse{
			Success: true,
			Resume:  &resume,
		})
	}
}

// SetSelectionHandler moves the selection cursor. The id is stored verbatim;
// an empty string clears the selection.
func SetSelectionHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.SetSelectionRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		s.SetSelectedResumeID(c.Request().Context(), req.ResumeID)

		logging.GetGlobalLogger().Debug("Selection changed", map[string]interface{}{
			"resume_id": req.ResumeID,
		})

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":            true,
			"selected_resume_id": req.ResumeID,
		})
	}
}

// UpdateResumeHandler replaces top-level fields on a resume by id.
func UpdateResumeHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")

		var req models.UpdateResumeRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		applied := s.UpdateResume(c.Request().Context(), id, models.ResumePatch{
			ContactInfo: req.ContactInfo,
		})
		if !applied {
			return errorJSON(c, http.StatusNotFound, "resume_not_found", "No resume with id "+id)
		}

		resume, _ := s.GetResume(id)
		return c.JSON(http.StatusOK, models.ResumeResponse{
			Success: true,
			Resume:  &resume,
			Message: "Resume updated",
		})
	}
}

// DeleteResumeHandler removes a resume. Deleting the selected one clears the
// selection cursor.
func DeleteResumeHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if !s.DeleteResume(c.Request().Context(), id) {
			return errorJSON(c, http.StatusNotFound, "resume_not_found", "No resume with id "+id)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Resume deleted",
		})
	}
}
