package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound              = errors.New("not found")
	ErrValidation            = errors.New("validation error")
	ErrMisconfigured         = errors.New("service misconfigured")
	ErrUpstream              = errors.New("upstream error")
	ErrEmptyUpstreamResponse = errors.New("empty upstream response")
	ErrMalformedAnalysis     = errors.New("malformed analysis")
	ErrAnalysisFailed        = errors.New("analysis failed")
	ErrFlashcardService      = errors.New("flashcard service error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UpstreamError reports a non-success HTTP status from a third-party service.
// Body is kept for server-side logs only and must never reach API callers.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream status %d", e.Service, e.Status)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// MalformedAnalysisError reports model output that could not be turned into
// a WordAnalysis. Raw and Cleaned are diagnostic copies of the model text.
type MalformedAnalysisError struct {
	Raw     string
	Cleaned string
	Fields  []FieldError
	Cause   error
}

func (e *MalformedAnalysisError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("malformed analysis: %v", e.Cause)
	case len(e.Fields) == 1:
		return fmt.Sprintf("malformed analysis: %s — %s", e.Fields[0].Field, e.Fields[0].Message)
	default:
		return fmt.Sprintf("malformed analysis: %d field errors", len(e.Fields))
	}
}

func (e *MalformedAnalysisError) Unwrap() error { return ErrMalformedAnalysis }
