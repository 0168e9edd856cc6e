package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/nirmitsaini1024/Productathon-26/internal/dossier"
	"github.com/nirmitsaini1024/Productathon-26/internal/llm"
	"github.com/nirmitsaini1024/Productathon-26/internal/tender"
)

// Enricher is the pipeline behind POST /enrich.
type Enricher interface {
	Enrich(ctx context.Context, in *tender.TenderInput) (*dossier.LeadDossier, error)
}

type EnrichHandler struct {
	service Enricher
	logger  *slog.Logger
}

func NewEnrichHandler(service Enricher, logger *slog.Logger) *EnrichHandler {
	return &EnrichHandler{service: service, logger: logger}
}

func (h *EnrichHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in tender.TenderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "bad_request", "request body is not valid JSON")
		return
	}

	result, err := h.service.Enrich(r.Context(), &in)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeFailure maps the pipeline's error taxonomy onto HTTP. Input
// violations are the caller's fault; completion and dossier failures
// mean the enrichment could not be completed faithfully.
func (h *EnrichHandler) writeFailure(w http.ResponseWriter, err error) {
	var inputErr *tender.ValidationError
	var completionErr *llm.CompletionError
	var dossierErr *dossier.ValidationError

	switch {
	case errors.As(err, &inputErr):
		WriteValidationError(w, http.StatusUnprocessableEntity,
			"invalid_input", "tender input failed validation", inputErr.Violations)
	case errors.As(err, &completionErr):
		WriteCompletionError(w, http.StatusBadGateway,
			completionErr.Error(), completionErr.Retryable)
	case errors.As(err, &dossierErr):
		WriteValidationError(w, http.StatusBadGateway,
			"invalid_model_output", "model output failed dossier validation", dossierErr.Violations)
	default:
		h.logger.Error("enrich failed", slog.String("error", err.Error()))
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "enrichment failed")
	}
}
