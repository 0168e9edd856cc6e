package httpserver

import (
	"net/http"
	"time"

	"github.com/nirmitsaini1024/Productathon-26/internal/middleware"

	"log/slog"

	"github.com/go-chi/chi/v5"
)

type RouterDeps struct {
	Logger        *slog.Logger
	EnrichHandler http.Handler
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewRouter assembles the chi router with the shared middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "healthy",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	})

	r.Post("/enrich", deps.EnrichHandler.ServeHTTP)

	return r
}
