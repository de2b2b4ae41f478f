package card

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of failure returned by the card, deck and hand packages
type ErrorCode string

const (
	ErrInvalidCardIdentity ErrorCode = "INVALID_CARD_IDENTITY"
	ErrInsufficientCards   ErrorCode = "INSUFFICIENT_CARDS"
	ErrInvalidCount        ErrorCode = "INVALID_COUNT"
	ErrPositionOutOfRange  ErrorCode = "POSITION_OUT_OF_RANGE"
	ErrInvalidForm         ErrorCode = "INVALID_FORM"
	ErrInvalidOrder        ErrorCode = "INVALID_ORDER"
)

// Error is a recoverable failure with a code the caller can branch on
type Error struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an existing error in an Error
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsError reports whether err, or any error it wraps, is an *Error with the given code
func IsError(err error, code ErrorCode) bool {
	for err != nil {
		var cardErr *Error
		if !errors.As(err, &cardErr) {
			return false
		}
		if cardErr.Code == code {
			return true
		}
		err = cardErr.Err
	}
	return false
}
