package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode is the caller-visible kind of a failed recipe operation.
type ErrorCode string

const (
	CodeValidation ErrorCode = "validation"
	CodeNotFound   ErrorCode = "not_found"
	CodeConflict   ErrorCode = "conflict"
	CodeStorage    ErrorCode = "storage"
)

// FieldError is a single input problem, keyed by the JSON path of the field
// (for example "ingredients[0].name").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries the kind and message surfaced to callers. Cause keeps the
// underlying storage or driver error for diagnostics only.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
	Fields  []FieldError
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

func NewValidationError(op string, fields []FieldError) error {
	return &Error{
		Code:    CodeValidation,
		Op:      strings.TrimSpace(op),
		Message: MessageInvalidRecipe,
		Fields:  fields,
	}
}

func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

func CodeOf(err error) ErrorCode {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Code
}

// FieldErrors returns the per-field problems of a validation error, if any.
func FieldErrors(err error) []FieldError {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}
	return e.Fields
}
