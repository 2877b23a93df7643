package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/middleware"
	"resumeforge/internal/validation"
	"resumeforge/pkg/models"
)

// errorJSON writes the standard error envelope.
func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: middleware.RequestID(c),
		Timestamp: time.Now(),
	})
}

// validationJSON writes a 400 carrying the per-field messages so the client
// can surface them inline.
func validationJSON(c echo.Context, status int, verr *validation.Error) error {
	return c.JSON(status, models.ErrorResponse{
		Error:     "validation_failed",
		Message:   verr.Error(),
		Fields:    verr.Fields,
		RequestID: middleware.RequestID(c),
		Timestamp: time.Now(),
	})
}
