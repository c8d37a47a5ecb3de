package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/pipeline"
)

// Server is the HTTP API server for outliner.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	extractor    *outline.Extractor
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		extractor:    outline.NewExtractor(log, cfg.MaxPages),
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Post("/api/outline", s.handleOutline)
	r.Post("/api/outline/batch", s.handleBatchOutline)
	r.Get("/api/outline/jobs/{jobID}", s.handleJobStatus)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
