package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Session errors
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionExpired    = errors.New("session expired")
	ErrInvalidTransition = errors.New("invalid wizard transition")

	// Validation errors
	ErrInvalidMode           = errors.New("invalid call mode")
	ErrInvalidIndustry       = errors.New("invalid industry")
	ErrUnknownParameter      = errors.New("unknown parameter")
	ErrInvalidParameterValue = errors.New("invalid parameter value")
)
