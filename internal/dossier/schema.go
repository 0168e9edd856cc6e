package dossier

import (
	"fmt"
	"reflect"

	"github.com/nirmitsaini1024/Productathon-26/internal/schema"
)

// Describe renders the dossier shape as pseudo-JSON, derived from the
// same struct tags ParseResponse validates against, so the instruction
// and the validator cannot drift apart.
func Describe() string {
	return schema.DescribeStruct(reflect.TypeOf(LeadDossier{}))
}

// FormatInstructions returns the output contract embedded in the model
// instruction.
func FormatInstructions() string {
	return fmt.Sprintf(formatTemplate, Describe())
}

const formatTemplate = `Respond with exactly ONE valid JSON object and nothing else.
No markdown, no code fences, no commentary outside the JSON object.

The object MUST conform to this structure:

%s

Rules:
- Every field without |null is required and must be non-empty.
- Integer fields marked (0-100) must stay within that range.
- Enumerated fields must use one of the listed values verbatim.
- signals and products_recommended must each contain at least one element.
- Use double quotes for all keys and strings, no trailing commas.`
