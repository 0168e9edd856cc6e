package dossier

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nirmitsaini1024/Productathon-26/internal/schema"
)

// ValidationError reports model output that failed the dossier schema.
// It names every violated field; nothing is clamped or corrected.
type ValidationError struct {
	Violations []schema.Violation
}

func (e *ValidationError) Error() string {
	return "model output failed dossier validation: " + schema.JoinViolations(e.Violations)
}

// ParseResponse turns raw completion-engine output into a validated
// LeadDossier. The engine may wrap the object in code fences or prose;
// the first-to-last JSON object is extracted before decoding. Unknown
// fields are ignored, every declared constraint is enforced.
func ParseResponse(raw string) (*LeadDossier, error) {
	payload := extractJSON(raw)
	if payload == "" {
		return nil, &ValidationError{Violations: []schema.Violation{
			{Reason: "no JSON object found in model output"},
		}}
	}

	var d LeadDossier
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return nil, &ValidationError{Violations: []schema.Violation{decodeViolation(err)}}
	}

	if violations := schema.Struct(&d); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return &d, nil
}

func decodeViolation(err error) schema.Violation {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return schema.Violation{
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("has wrong JSON type (got %s)", typeErr.Value),
		}
	}
	return schema.Violation{Reason: "malformed JSON: " + err.Error()}
}

// extractJSON cuts the outermost JSON object out of the raw text. This
// also strips markdown fences, which sit outside the braces.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
