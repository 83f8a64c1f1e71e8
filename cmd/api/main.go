// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

// Command api is the entry point for the StyleAtlas content API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Construct the document store client.
//  4. Wire HTTP handlers.
//  5. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/styleatlas/api/internal/api"
	"github.com/styleatlas/api/internal/content/style"
	"github.com/styleatlas/api/internal/gallery/notify"
	"github.com/styleatlas/api/internal/gallery/submission"
	"github.com/styleatlas/api/internal/platform/config"
	"github.com/styleatlas/api/internal/platform/constants"
	"github.com/styleatlas/api/internal/platform/contentstore"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("dataset", cfg.Dataset),
		slog.Bool("write_enabled", cfg.WriteToken != ""),
		slog.Bool("moderation_gated", cfg.ModeratorToken != ""),
	)

	// Root context tied to process lifetime, used by background routines
	// (rate limiter eviction) so they stop on shutdown.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// ── 3. Document Store Client ──────────────────────────────────────────
	store := contentstore.New(cfg.StoreBaseURL(), cfg.Dataset, cfg.WriteToken, log)

	// ── 4. Health handlers (wired with a real dependency checker) ─────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckStore: func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), constants.StoreRequestTimeout)
			defer cancel()
			return store.Ping(pingCtx)
		},
	}, log)

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	styleRepository := style.NewContentRepository(store)
	styleService := style.NewService(styleRepository, log)
	styleHandler := style.NewHandler(styleService)

	fanout := notify.NewFanout(log,
		notify.NewChatWebhook(cfg.WebhookURL),
		notify.NewCRM(cfg.CRMBaseURL, cfg.CRMAPIKey, cfg.CRMBaseID, cfg.CRMTableName),
	)

	submissionRepository := submission.NewContentRepository(store)
	submissionService := submission.NewService(submissionRepository, styleService, fanout, log)
	submissionHandler := submission.NewHandler(submissionService)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Style:     styleHandler,
		Gallery:   submissionHandler,
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
