package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"bid-portal/internal/biderrors"
	"bid-portal/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// ErrAlreadyAwarded wraps ErrInvalidState, so it must be matched first; its
// message keeps the "already been awarded" wording clients key off.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biderrors.ErrAlreadyAwarded):
		return http.StatusConflict, "this project has already been awarded"
	case errors.Is(err, biderrors.ErrDuplicateBid):
		return http.StatusConflict, "contractor already has an active bid on this project"
	case errors.Is(err, biderrors.ErrInvalidState):
		return http.StatusConflict, "operation not valid for current status"
	case errors.Is(err, biderrors.ErrPermission):
		return http.StatusForbidden, "permission denied"
	case errors.Is(err, biderrors.ErrNotFound):
		return http.StatusNotFound, "entity not found"
	case errors.Is(err, biderrors.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, biderrors.ErrTransport):
		return http.StatusServiceUnavailable, "store temporarily unavailable, please retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps the error, sends the envelope and logs it
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, fields)
		return
	}
	utils.Warn(handlerName+": "+message, fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
