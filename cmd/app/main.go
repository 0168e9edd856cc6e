package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/nirmitsaini1024/Productathon-26/internal/config"
	"github.com/nirmitsaini1024/Productathon-26/internal/enrich"
	"github.com/nirmitsaini1024/Productathon-26/internal/httpserver"
	"github.com/nirmitsaini1024/Productathon-26/internal/llm"
	"github.com/nirmitsaini1024/Productathon-26/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)

	httpClient := transport.NewHTTPClient(cfg.RequestTimeout)
	llmClient := llm.NewOpenRouterClient(cfg.OpenRouter, httpClient, logger)

	service := enrich.NewService(enrich.ServiceDeps{
		Client: llmClient,
		Logger: logger,
	})

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Logger:        logger,
		EnrichHandler: httpserver.NewEnrichHandler(service, logger),
	})

	server := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// Completion calls dominate response time.
		WriteTimeout: cfg.RequestTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("model", cfg.OpenRouter.Model))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

func newLogger(level string) *slog.Logger {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}
