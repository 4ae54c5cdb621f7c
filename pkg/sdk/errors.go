package seo

import (
	"errors"
	"fmt"
)

// Sentinel errors for API error classes. Use errors.Is() to check.
var (
	ErrValidation    = errors.New("validation failed")
	ErrTextTooLong   = errors.New("text too long")
	ErrQuotaExceeded = errors.New("extraction quota exceeded")
	ErrProviderError = errors.New("extraction provider error")
	ErrUnauthorized  = errors.New("unauthorized")
)

// APIError carries the full error response from the server.
// It unwraps to one of the package sentinel errors when the
// error code is recognized.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Unwrap maps known error codes to sentinel errors.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case "validation_failed":
		return ErrValidation
	case "text_too_long":
		return ErrTextTooLong
	case "extraction_quota_exceeded":
		return ErrQuotaExceeded
	case "extraction_provider_error":
		return ErrProviderError
	}
	if e.StatusCode == 401 {
		return ErrUnauthorized
	}
	return nil
}
