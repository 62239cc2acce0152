package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
	ErrCodeInvalidExpiryDate = "INVALID_EXPIRY_DATE"
	ErrCodeBankUnavailable   = "BANK_UNAVAILABLE"
	ErrCodePaymentNotFound   = "PAYMENT_NOT_FOUND"
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeTimeout           = "TIMEOUT"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

const (
	MsgInvalidExpiryDate = "The card expiry date must be in the future."
	MsgBankUnavailable   = "Acquiring bank is currently unavailable."
	MsgInternal          = "An unexpected error occurred."
	MsgMalformedBody     = "The request body is not a valid payment request."
	MsgAPIKeyMissing     = "API Key was not provided."
	MsgAPIKeyInvalid     = "Unauthorized client."
	MsgTimeout           = "The request timed out."
)

// Violation is one field-level validation failure with a user-facing message.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a payment request, in
// field declaration order.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewInvalidExpiryDateError() *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidExpiryDate,
		Message: MsgInvalidExpiryDate,
	}
}

func NewBankUnavailableError() *DomainError {
	return &DomainError{
		Code:    ErrCodeBankUnavailable,
		Message: MsgBankUnavailable,
	}
}

func NewInvalidRequestError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidRequest,
		Message: MsgMalformedBody,
		Err:     err,
	}
}

func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnauthorized,
		Message: message,
	}
}

func NewTimeoutError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeTimeout,
		Message: MsgTimeout,
		Err:     err,
	}
}

func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: MsgInternal,
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsValidationError reports whether err carries field violations.
func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}
