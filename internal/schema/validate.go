package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation names a single field that failed validation and why.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (v Violation) String() string {
	if v.Field == "" {
		return v.Reason
	}
	return v.Field + " " + v.Reason
}

// JoinViolations renders violations for error messages.
func JoinViolations(violations []Violation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under JSON field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates v against its struct tags and returns one violation
// per failed constraint. A nil result means v is valid.
func Struct(v any) []Violation {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Reason: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:  fieldPath(fe),
			Reason: reason(fe),
		})
	}
	return violations
}

// fieldPath strips the root struct name from the namespace, leaving a
// JSON path like "signals[0].trust_score".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s element(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s element(s)", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(splitOneOf(fe.Param()), ", ")
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

// splitOneOf splits an oneof parameter list on spaces, honouring
// single-quoted values like 'Schedule Meeting'.
func splitOneOf(param string) []string {
	var out []string
	var cur strings.Builder
	inQuote := false
	for _, r := range param {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == ' ' && !inQuote:
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
