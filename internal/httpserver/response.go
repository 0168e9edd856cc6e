package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/nirmitsaini1024/Productathon-26/internal/schema"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code       string             `json:"code"`
	Message    string             `json:"message"`
	Retryable  *bool              `json:"retryable,omitempty"`
	Violations []schema.Violation `json:"violations,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteJSONError answers with the shared error envelope.
func WriteJSONError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

// WriteValidationError answers with the envelope plus per-field violations.
func WriteValidationError(w http.ResponseWriter, status int, code, message string, violations []schema.Violation) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Code:       code,
		Message:    message,
		Violations: violations,
	}})
}

// WriteCompletionError answers with the envelope plus the retryable flag.
func WriteCompletionError(w http.ResponseWriter, status int, message string, retryable bool) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Code:      "completion_failed",
		Message:   message,
		Retryable: &retryable,
	}})
}
