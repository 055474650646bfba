package handlers

import (
	"net/http"

	"modernband/internal/domain"
	"modernband/internal/http/middleware"
	"modernband/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Message   string `json:"message"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
		Message:   message,
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	if fields, ok := domain.AsFieldErrors(err); ok {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "Please correct the highlighted fields",
			"code":       "validation_error",
			"errors":     fields,
			"request_id": middleware.GetRequestID(c),
			"message":    "Please correct the highlighted fields",
		})
		return
	}

	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		msg := err.Error()
		if up, ok := domain.AsUpstream(err); ok && up.Msg != "" {
			msg = up.Msg
		}
		respondError(c, http.StatusNotFound, "not_found", msg, nil)
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		if up, ok := domain.AsUpstream(err); ok {
			status := http.StatusBadGateway
			if up.Status >= 400 && up.Status < 500 {
				status = up.Status
			}
			respondError(c, status, "upstream_error", up.Error(), nil)
			return
		}
		utils.LogError(middleware.GetRequestID(c), "http", "unhandled", err)
		respondError(c, http.StatusInternalServerError, "internal_error", "Something went wrong. Please try again.", nil)
	}
}
