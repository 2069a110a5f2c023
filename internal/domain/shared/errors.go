package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches any DomainError carrying the same code, so callers can compare
// against the sentinels below even when the message was customized.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of the error with a more specific message
func (e *DomainError) WithMessage(message string) *DomainError {
	return &DomainError{Code: e.Code, Message: message, Err: e.Err}
}

// Wrap returns a copy of the error that wraps cause
func (e *DomainError) Wrap(cause error) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Err: cause}
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes
const (
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeDuplicateRequest    = "DUPLICATE_REQUEST"
	CodeInvalidQuantity     = "INVALID_QUANTITY"
	CodeInsufficientStock   = "INSUFFICIENT_STOCK"
	CodeIllegalTransition   = "ILLEGAL_TRANSITION"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
)

// Common domain errors
var (
	ErrUnauthenticated     = NewDomainError(CodeUnauthenticated, "Authentication required")
	ErrForbidden           = NewDomainError(CodeForbidden, "Access to this resource is forbidden")
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrDuplicateRequest    = NewDomainError(CodeDuplicateRequest, "Request already exists")
	ErrInvalidQuantity     = NewDomainError(CodeInvalidQuantity, "Quantity must be a positive integer")
	ErrInsufficientStock   = NewDomainError(CodeInsufficientStock, "Insufficient stock available")
	ErrIllegalTransition   = NewDomainError(CodeIllegalTransition, "Status transition not allowed")
	ErrUpstreamUnavailable = NewDomainError(CodeUpstreamUnavailable, "Service temporarily unavailable")
	ErrInvalidInput        = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError(CodeConcurrencyConflict, "Resource was modified by another process")
)

// CodeOf returns the domain error code carried by err, or "" when err is not a DomainError
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsDomainRule reports whether err is a business-rule violation that callers
// resolve into a user-facing message instead of treating as a failure.
func IsDomainRule(err error) bool {
	switch CodeOf(err) {
	case CodeDuplicateRequest, CodeInvalidQuantity, CodeInsufficientStock, CodeIllegalTransition:
		return true
	}
	return false
}

// IsRetryable reports whether the operation may succeed if attempted again
func IsRetryable(err error) bool {
	switch CodeOf(err) {
	case CodeUpstreamUnavailable, CodeConcurrencyConflict:
		return true
	}
	return false
}
