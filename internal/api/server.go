// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/styleatlas/api/internal/content/style"
	"github.com/styleatlas/api/internal/gallery/submission"
	"github.com/styleatlas/api/internal/platform/config"
	"github.com/styleatlas/api/internal/platform/constants"
	"github.com/styleatlas/api/internal/platform/middleware"
	"github.com/styleatlas/api/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when the store is reachable.
	Readiness http.HandlerFunc

	// Style serves the design style read projections.
	Style *style.Handler

	// Gallery serves the submission flow and moderation routes.
	Gallery *submission.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// Errors on unmatched routes keep the JSON {error} contract, and wrong
	// methods carry an Allow header naming the permitted ones.
	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.JSON(writer, http.StatusNotFound, respond.ErrorEnvelope{Error: "Not found"})
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set(constants.HeaderAllow, allowedMethods(r, request.URL.Path))
		respond.JSON(writer, http.StatusMethodNotAllowed, respond.ErrorEnvelope{Error: "Method Not Allowed"})
	})

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		h.Style.RegisterRoutes(api)
		h.Gallery.RegisterPublicRoutes(api)

		// Moderation routes honor the optional moderator token gate.
		api.Group(func(moderation chi.Router) {
			moderation.Use(middleware.RequireModerator(cfg.ModeratorToken))
			h.Gallery.RegisterModerationRoutes(moderation)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Router exposes the composed handler, primarily for tests.
func (s *Server) Router() http.Handler { return s.router }

// allowedMethods lists the methods the router actually accepts for a path.
func allowedMethods(router *chi.Mux, path string) string {
	allowed := ""
	for _, method := range []string{
		http.MethodGet, http.MethodHead, http.MethodPost,
		http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
	} {
		if router.Match(chi.NewRouteContext(), method, path) {
			if allowed != "" {
				allowed += ", "
			}
			allowed += method
		}
	}
	return allowed
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
