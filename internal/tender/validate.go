package tender

import (
	"github.com/nirmitsaini1024/Productathon-26/internal/schema"
)

// ValidationError carries every input field that violated the tender
// schema. It is a client error: the caller sent a bad payload.
type ValidationError struct {
	Violations []schema.Violation
}

func (e *ValidationError) Error() string {
	return "invalid tender input: " + schema.JoinViolations(e.Violations)
}

// Validate checks required fields on the inbound tender. The returned
// error, if any, is a *ValidationError listing all violations at once.
func Validate(t *TenderInput) error {
	if violations := schema.Struct(t); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
