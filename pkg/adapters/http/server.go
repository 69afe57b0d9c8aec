// Package http serves machine inspection over HTTP: definitions as
// JSON graphs, diagram markup, validation reports, and Prometheus
// metrics. It is a read-only surface; driving instances stays with the
// embedding program.
package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/ratchet/internal/presentation/graph"
	"github.com/aretw0/ratchet/internal/validator"
	"github.com/aretw0/ratchet/pkg/domain"
)

// Server exposes a set of named machine definitions.
type Server struct {
	graphs map[string]*domain.Graph
	logger *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a structured logger for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewHandler builds the HTTP handler for the given definitions.
func NewHandler(defs map[string]*domain.Definition, opts ...Option) http.Handler {
	s := &Server{
		graphs: make(map[string]*domain.Graph, len(defs)),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for name, def := range defs {
		s.graphs[name] = domain.NewGraph(def)
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/machines", s.handleList)
	r.Get("/machines/{name}", s.handleMachine)
	r.Get("/machines/{name}/graph", s.handleGraph)
	r.Get("/machines/{name}/validate", s.handleValidate)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(s.graphs))
	for name := range s.graphs {
		names = append(names, name)
	}
	sort.Strings(names)
	s.writeJSON(w, http.StatusOK, map[string]any{"machines": names})
}

func (s *Server) handleMachine(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var markup string
	switch format := r.URL.Query().Get("format"); format {
	case "", "mermaid":
		markup = graph.GenerateMermaid(g)
	case "plantuml":
		markup = graph.GeneratePlantUML(g)
	default:
		s.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "unsupported format: " + format,
		})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(markup)); err != nil {
		s.logger.Error("write graph response", "error", err)
	}
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookup(w, r)
	if !ok {
		return
	}
	report := validator.Validate(g)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"ok":       report.OK(),
		"errors":   report.Errors,
		"warnings": report.Warnings,
	})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*domain.Graph, bool) {
	name := chi.URLParam(r, "name")
	g, ok := s.graphs[name]
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "machine not found: " + name})
		return nil, false
	}
	return g, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
