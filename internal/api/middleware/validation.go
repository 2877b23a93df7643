package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// maxJSONBodyBytes bounds JSON request bodies. Uploads go through the
// multipart path and are bounded separately by the ATS configuration.
const maxJSONBodyBytes = 1024 * 1024

// RequestValidation middleware tags every request with an id and bounds
// JSON body sizes.
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			method := c.Request().Method
			if method == http.MethodPost || method == http.MethodPut {
				contentType := c.Request().Header.Get(echo.HeaderContentType)
				isUpload := len(contentType) >= len(echo.MIMEMultipartForm) && contentType[:len(echo.MIMEMultipartForm)] == echo.MIMEMultipartForm

				if !isUpload && c.Request().ContentLength > maxJSONBodyBytes {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}

// RequestID returns the id assigned by RequestValidation, generating one if
// the middleware did not run.
func RequestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}
