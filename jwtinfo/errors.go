package jwtinfo

import (
	"errors"
	"fmt"
)

// ErrorCode represents a decode or request error code
type ErrorCode string

// Error lets codes be used as errors.Is targets
func (c ErrorCode) Error() string {
	return string(c)
}

const (
	// Section-level decode failures
	ErrMissingSection ErrorCode = "MISSING_SECTION"
	ErrInvalidBase64  ErrorCode = "INVALID_BASE64"
	ErrInvalidUTF8    ErrorCode = "INVALID_UTF8"
	ErrInvalidJSON    ErrorCode = "INVALID_JSON"

	// Token-level failure for a fourth fragment
	ErrUnexpectedPart ErrorCode = "UNEXPECTED_PART"

	// Request and configuration failures
	ErrMissingToken  ErrorCode = "MISSING_TOKEN"
	ErrMalformed     ErrorCode = "MALFORMED"
	ErrTokenTooLarge ErrorCode = "TOKEN_TOO_LARGE"
	ErrConfigError   ErrorCode = "CONFIG_ERROR"
)

// Section names one of the three positional parts of a token
type Section string

const (
	SectionHeader    Section = "Header"
	SectionBody      Section = "Body"
	SectionSignature Section = "Signature"
)

// DecodeError describes why a single section could not be decoded
type DecodeError struct {
	Code     ErrorCode
	Message  string // decoder diagnostic, empty for MISSING_SECTION
	Internal error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	switch e.Code {
	case ErrMissingSection:
		return "Missing token section"
	case ErrInvalidBase64:
		return "Base64 error, " + e.Message
	case ErrInvalidUTF8:
		return "UTF8 error, " + e.Message
	case ErrInvalidJSON:
		return "JSON error, " + e.Message
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the error unwrapping interface
func (e *DecodeError) Unwrap() error {
	return e.Internal
}

// Is matches the error's code
func (e *DecodeError) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}

// NewDecodeError creates a new section decode error
func NewDecodeError(code ErrorCode, message string, internal error) *DecodeError {
	return &DecodeError{
		Code:     code,
		Message:  message,
		Internal: internal,
	}
}

// ParseError is the token-level error returned by Parse. It either wraps the
// DecodeError of the section that failed, or reports an unexpected fragment
// after the signature (Section empty, Cause nil).
type ParseError struct {
	Section Section
	Cause   *DecodeError
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Cause == nil {
		return "Error: Unexpected fragment after signature"
	}
	return fmt.Sprintf("Invalid %s: %s", e.Section, e.Cause)
}

// Unwrap returns the section-level cause, if any
func (e *ParseError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

// Is matches ErrUnexpectedPart; section codes are matched through Unwrap
func (e *ParseError) Is(target error) bool {
	return e.Cause == nil && target == ErrUnexpectedPart
}

// Code returns the stable code for logs and responses
func (e *ParseError) Code() ErrorCode {
	if e.Cause == nil {
		return ErrUnexpectedPart
	}
	return e.Cause.Code
}

func newSectionError(section Section, cause *DecodeError) *ParseError {
	return &ParseError{Section: section, Cause: cause}
}

// Error represents a failure outside token parsing: a missing or oversized
// token in a request, or an invalid configuration
type Error struct {
	Code     ErrorCode
	Message  string
	Internal error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the error unwrapping interface
func (e *Error) Unwrap() error {
	return e.Internal
}

// Is matches the error's code
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}

// NewError creates a new request or configuration error
func NewError(code ErrorCode, message string, internal error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Internal: internal,
	}
}

// getErrorCode extracts the code from any error produced by this package
func getErrorCode(err error) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return string(parseErr.Code())
	}
	var reqErr *Error
	if errors.As(err, &reqErr) {
		return string(reqErr.Code)
	}
	return "UNKNOWN"
}

// describeError returns the human-readable description of err
func describeError(err error) string {
	var reqErr *Error
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return err.Error()
}
