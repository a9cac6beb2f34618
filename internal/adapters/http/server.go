// Package http exposes the builder engine over a JSON REST API.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	funnelflow "github.com/insyncinternational/funnelflow"
	"github.com/insyncinternational/funnelflow/internal/metrics"
	"github.com/insyncinternational/funnelflow/internal/presentation/graph"
	"github.com/insyncinternational/funnelflow/pkg/domain"
	"github.com/insyncinternational/funnelflow/pkg/templates"
)

// Server wires the engine into HTTP handlers.
type Server struct {
	engine  *funnelflow.Builder
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewHandler builds the full route tree.
func NewHandler(engine *funnelflow.Builder, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	s := &Server{engine: engine, metrics: m, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if m != nil {
		r.Use(m.Middleware)
	}

	r.Get("/healthz", s.health)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/templates", s.listTemplates)
		r.Get("/step-types", s.listStepTypes)

		r.Route("/funnels", func(r chi.Router) {
			r.Get("/", s.listFunnels)
			r.Post("/", s.createFunnel)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getFunnel)
				r.Put("/", s.putFunnel)
				r.Delete("/", s.deleteFunnel)
				r.Post("/publish", s.publishFunnel)
				r.Get("/export", s.exportFunnel)
			})
		})
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, templates.Catalog())
}

func (s *Server) listStepTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Types())
}

func (s *Server) listFunnels(w http.ResponseWriter, r *http.Request) {
	ids, err := s.engine.List(r.Context())
	if err != nil {
		s.serverError(w, "list failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"funnels": ids})
}

type createFunnelRequest struct {
	Name     string `json:"name"`
	Template string `json:"template"`
}

func (s *Server) createFunnel(w http.ResponseWriter, r *http.Request) {
	var body createFunnelRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	funnel, err := s.engine.Create(r.Context(), body.Name, body.Template)
	if err != nil {
		s.serverError(w, "create failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, funnel)
}

func (s *Server) getFunnel(w http.ResponseWriter, r *http.Request) {
	funnel, err := s.engine.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrFunnelNotFound) {
			http.Error(w, "Funnel not found", http.StatusNotFound)
			return
		}
		s.serverError(w, "load failed", err)
		return
	}
	writeJSON(w, http.StatusOK, funnel)
}

func (s *Server) putFunnel(w http.ResponseWriter, r *http.Request) {
	var funnel domain.Funnel
	if err := json.NewDecoder(r.Body).Decode(&funnel); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	// the path is authoritative for identity
	funnel.ID = chi.URLParam(r, "id")
	funnel.Normalize()

	editor, err := s.engine.Edit(r.Context(), funnel.ID)
	if err != nil {
		s.serverError(w, "open failed", err)
		return
	}
	editor.Replace(&funnel)
	if err := editor.Save(r.Context()); err != nil {
		s.serverError(w, "save failed", err)
		return
	}
	writeJSON(w, http.StatusOK, editor.Funnel())
}

func (s *Server) deleteFunnel(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrFunnelNotFound) {
			http.Error(w, "Funnel not found", http.StatusNotFound)
			return
		}
		s.serverError(w, "delete failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) publishFunnel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.engine.Get(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrFunnelNotFound) {
			http.Error(w, "Funnel not found", http.StatusNotFound)
			return
		}
		s.serverError(w, "load failed", err)
		return
	}

	editor, err := s.engine.Edit(r.Context(), id)
	if err != nil {
		s.serverError(w, "open failed", err)
		return
	}
	if err := editor.Publish(r.Context()); err != nil {
		s.serverError(w, "publish failed", err)
		return
	}
	funnel := editor.Funnel()
	if funnel.Status != domain.StatusPublished {
		http.Error(w, "Funnel has no steps to publish", http.StatusUnprocessableEntity)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordPublish()
	}
	writeJSON(w, http.StatusOK, funnel)
}

func (s *Server) exportFunnel(w http.ResponseWriter, r *http.Request) {
	funnel, err := s.engine.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrFunnelNotFound) {
			http.Error(w, "Funnel not found", http.StatusNotFound)
			return
		}
		s.serverError(w, "load failed", err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(funnel, nil)))
}

func (s *Server) serverError(w http.ResponseWriter, msg string, err error) {
	s.logger.Error(msg, "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
