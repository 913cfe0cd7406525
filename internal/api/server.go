// Package api provides the HTTP API server and handlers for the propdata
// service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/chesapeakestays/propdata-server/internal/config"
	"github.com/chesapeakestays/propdata-server/internal/engine"
	"github.com/chesapeakestays/propdata-server/internal/http/response"
	"github.com/chesapeakestays/propdata-server/internal/logger"
	"github.com/chesapeakestays/propdata-server/internal/tabular"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	engine *engine.Engine
	cfg    *config.Config
	router *chi.Mux
	logger *logger.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(eng *engine.Engine, cfg *config.Config, log *logger.Logger) *Server {
	s := &Server{
		engine: eng,
		cfg:    cfg,
		router: chi.NewRouter(),
		logger: log,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// Browser clients upload from arbitrary origins.
	s.router.Use(cors.AllowAll().Handler)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealthCheck)
	s.router.Get("/config", s.handleGetConfig)
	s.router.Post("/process", s.handleProcess)
	s.router.Post("/process-sync", s.handleProcessSync)
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger.Logger)
}

// handleGetConfig returns the upload limits clients need before posting files.
func (s *Server) handleGetConfig(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]any{
		"allowed_extensions": tabular.Extensions,
		"max_upload_mb":      s.cfg.Upload.MaxBytes / (1024 * 1024),
		"environment":        s.cfg.App.Environment,
	}, s.logger.Logger)
}
