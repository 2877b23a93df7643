package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/sections"
	"resumeforge/internal/store"
	"resumeforge/internal/validation"
	"resumeforge/pkg/models"
)

// sectionResponse reports a section submit outcome with the updated resume.
// Applied false means the store had no selection and nothing changed.
func sectionResponse(c echo.Context, s *store.Store, applied bool, message string) error {
	resp := models.SectionUpdateResponse{
		Success: true,
		Applied: applied,
		Message: message,
	}
	if !applied {
		resp.Message = "No resume selected; nothing was changed"
	} else if resume, ok := s.SelectedResume(); ok {
		resp.Resume = &resume
	}
	return c.JSON(http.StatusOK, resp)
}

// submitError maps a section submit failure onto the wire.
func submitError(c echo.Context, err error) error {
	if verr, ok := validation.AsError(err); ok {
		return validationJSON(c, http.StatusBadRequest, verr)
	}
	return errorJSON(c, http.StatusInternalServerError, "section_update_failed", err.Error())
}

// UpdateContactHandler validates and commits the contact section.
func UpdateContactHandler(svc *sections.Service, s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var info models.ContactInfo
		if err := c.Bind(&info); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		applied, err := svc.SubmitContactInfo(c.Request().Context(), info)
		if err != nil {
			return submitError(c, err)
		}
		return sectionResponse(c, s, applied, "Contact information updated successfully")
	}
}

// UpdateExperienceHandler validates and full-replaces the work experience
// section.
func UpdateExperienceHandler(svc *sections.Service, s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ExperienceSectionRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		applied, err := svc.SubmitWorkExperience(c.Request().Context(), req.Experiences)
		if err != nil {
			return submitError(c, err)
		}
		return sectionResponse(c, s, applied, "Work experience updated successfully")
	}
}

// UpdateEducationHandler validates and full-replaces the education section.
func UpdateEducationHandler(svc *sections.Service, s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.EducationSectionRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		applied, err := svc.SubmitEducation(c.Request().Context(), req.Education)
		if err != nil {
			return submitError(c, err)
		}
		return sectionResponse(c, s, applied, "Education updated successfully")
	}
}

// UpdateSkillsHandler validates and full-replaces the skills section.
func UpdateSkillsHandler(svc *sections.Service, s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.SkillsSectionRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		applied, err := svc.SubmitSkills(c.Request().Context(), req.Skills)
		if err != nil {
			return submitError(c, err)
		}
		return sectionResponse(c, s, applied, "Skills updated successfully")
	}
}
