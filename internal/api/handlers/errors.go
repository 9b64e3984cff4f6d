package handlers

import (
	"net/http"

	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error  string `json:"error" example:"NotFound"`
	Detail string `json:"detail" example:"project not found"`
}

// statusFor maps an error kind to its HTTP status
func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConstraintViolation:
		return http.StatusConflict
	case apperrors.KindValidationError:
		return http.StatusBadRequest
	case apperrors.KindUploadFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders err as {"error": kind, "detail": message}.
// Internal errors are logged and their cause is not rendered.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	detail := err.Error()
	if kind == apperrors.KindInternalError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
		detail = "internal server error"
	}
	_ = c.Error(err)
	c.JSON(statusFor(kind), ErrorResponse{Error: string(kind), Detail: detail})
}

// respondBadRequest renders a ValidationError for a payload that could not be decoded
func respondBadRequest(c *gin.Context, field string, err error) {
	respondError(c, apperrors.NewValidationError(field, err.Error()))
}
