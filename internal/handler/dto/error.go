package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mtlprog/roicalc/internal/domain"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains a machine readable code and a message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

type errorMapping struct {
	target error
	status int
	code   string
}

// First match wins.
var errorMappings = []errorMapping{
	{domain.ErrSessionNotFound, http.StatusNotFound, "SESSION_NOT_FOUND"},
	{domain.ErrSessionExpired, http.StatusNotFound, "SESSION_EXPIRED"},
	{domain.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrUnknownParameter, http.StatusUnprocessableEntity, "UNKNOWN_PARAMETER"},
	{domain.ErrInvalidMode, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
	{domain.ErrInvalidIndustry, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
	{domain.ErrInvalidParameterValue, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
// Anything unmapped is logged and hidden behind INTERNAL_ERROR.
func MapDomainError(err error) (status int, code string, message string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code, err.Error()
		}
	}

	slog.Error("unmapped domain error returned to client",
		"error", err,
		"error_type", fmt.Sprintf("%T", err),
	)
	return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
}
