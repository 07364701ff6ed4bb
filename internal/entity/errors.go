package entity

import (
	"errors"
	"fmt"
)

// ValidationError flags a required field missing or malformed on manual
// lead creation. Imports never produce it; they coerce instead.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

var (
	// ErrLeadNotFound is returned by operations referencing an unknown id.
	// Delete is the exception: deleting an unknown id is a no-op.
	ErrLeadNotFound = errors.New("lead not found")

	// ErrInvalidFormat is returned when a top-level import payload is not a
	// JSON list of records.
	ErrInvalidFormat = errors.New("import payload must be a JSON array")
)

// EnrichmentError wraps a failed or unparsable enrichment call. The registry
// is left untouched when it surfaces.
type EnrichmentError struct {
	Cause error
}

func (e EnrichmentError) Error() string {
	return "lead enrichment failed: " + e.Cause.Error()
}

func (e EnrichmentError) Unwrap() error {
	return e.Cause
}
