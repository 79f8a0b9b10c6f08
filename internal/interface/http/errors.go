package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-diary-api/internal/application"
	"github.com/oksasatya/go-diary-api/internal/interface/middleware"
	"github.com/oksasatya/go-diary-api/pkg/helpers"
	"github.com/oksasatya/go-diary-api/pkg/response"
	"github.com/oksasatya/go-diary-api/pkg/validation"
)

const msgServerError = "Server error"

// writeError maps application errors onto the HTTP status table. Unknown
// errors are logged and answered with internalMsg only.
func writeError(c *gin.Context, logger *logrus.Logger, err error, internalMsg string) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		var details any
		if len(verr.Details) > 0 {
			details = verr.Details
		}
		response.Error(c, http.StatusBadRequest, verr.Message, details)
	case errors.Is(err, application.ErrWeakPassword):
		response.Error(c, http.StatusBadRequest, "Password must be at least 6 characters", nil)
	case errors.Is(err, application.ErrDuplicateUser):
		response.Error(c, http.StatusBadRequest, "User already exists", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, application.ErrUnauthenticated):
		response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
	case errors.Is(err, application.ErrEntryNotFound):
		response.Error(c, http.StatusNotFound, "Entry not found", nil)
	case errors.Is(err, application.ErrTrackNotFound):
		response.Error(c, http.StatusNotFound, "Track not found", nil)
	default:
		if internalMsg == "" {
			internalMsg = msgServerError
		}
		helpers.LogError(logger, internalMsg, err, helpers.RequestFields(c))
		response.Error(c, http.StatusInternalServerError, internalMsg, nil)
	}
}

// bindJSON decodes the body into dst. An empty body leaves dst zero so the
// service reports the missing fields.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "Invalid request body", validation.ToDetails(err))
		return false
	}
	return true
}

// currentUserID returns the authenticated user's id or answers 401.
func currentUserID(c *gin.Context) (string, bool) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Access token required", nil)
		return "", false
	}
	return u.ID, true
}
