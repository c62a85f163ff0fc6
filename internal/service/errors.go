package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("record not found")
	ErrValidation   = errors.New("validation failed")
)

// ValidationError carries the offending fields back to the caller unchanged.
type ValidationError struct {
	Message string
	Fields  []util.ApiError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(message string, fields ...util.ApiError) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func fieldError(field, message string) *ValidationError {
	return newValidationError("Invalid request", util.ApiError{Field: field, Message: message})
}

// Converts validator output, anything else becomes a single unnamed field
func toValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return newValidationError("Invalid request", util.GenerateErrorMessages(err)...)
	}

	return newValidationError("Invalid request", util.ApiError{Field: "Unknown", Message: err.Error()})
}

// ActionError is the generic failure a caller sees. The underlying cause is logged, never returned.
type ActionError struct {
	Message  string
	notFound bool
}

func (e *ActionError) Error() string {
	return e.Message
}

func (e *ActionError) Unwrap() error {
	if e.notFound {
		return ErrNotFound
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrNotFound)
}
