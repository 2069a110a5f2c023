package dto

import (
	"net/http"

	"github.com/swiftora/marketplace/internal/domain/shared"
)

// Error codes in responses. Domain codes pass through unchanged; the
// internal code covers failures that never reach the domain.
const (
	ErrCodeUnauthenticated     = shared.CodeUnauthenticated
	ErrCodeForbidden           = shared.CodeForbidden
	ErrCodeNotFound            = shared.CodeNotFound
	ErrCodeDuplicateRequest    = shared.CodeDuplicateRequest
	ErrCodeConcurrencyConflict = shared.CodeConcurrencyConflict
	ErrCodeInvalidQuantity     = shared.CodeInvalidQuantity
	ErrCodeInsufficientStock   = shared.CodeInsufficientStock
	ErrCodeIllegalTransition   = shared.CodeIllegalTransition
	ErrCodeInvalidInput        = shared.CodeInvalidInput
	ErrCodeUpstreamUnavailable = shared.CodeUpstreamUnavailable

	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnauthenticated: http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeNotFound:        http.StatusNotFound,

	ErrCodeDuplicateRequest:    http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidQuantity:   http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,
	ErrCodeIllegalTransition: http.StatusUnprocessableEntity,

	ErrCodeInvalidInput: http.StatusBadRequest,

	ErrCodeUpstreamUnavailable: http.StatusServiceUnavailable,
	ErrCodeInternal:            http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes are 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
