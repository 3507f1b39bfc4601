// Package server exposes the connector's actions over HTTP for local
// development, standing in for the host platform.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"template-connector/internal/connector"
	"template-connector/internal/logger"
	"template-connector/internal/plugin"
	"template-connector/internal/result"
)

// Server runs each incoming action request on a fresh connector
// initialized with the same asset configuration.
type Server struct {
	config map[string]any
	opts   []connector.Option
}

// NewServer creates a harness for the given host-style asset configuration.
func NewServer(assetConfig map[string]any, opts ...connector.Option) *Server {
	return &Server{
		config: assetConfig,
		opts:   opts,
	}
}

// Handler returns the HTTP routes of the harness.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/actions", s.handleListActions)
	r.Post("/actions/{action}", s.handleRunAction)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListActions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, connector.New(s.opts...).Actions())
}

type runRequest struct {
	ID    string         `json:"id"`
	Input map[string]any `json:"input"`
}

func (s *Server) handleRunAction(w http.ResponseWriter, r *http.Request) {
	var body runRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body: " + err.Error()})
			return
		}
	}
	if body.Input == nil {
		body.Input = make(map[string]any)
	}

	resp := connector.Run(r.Context(), plugin.Request{
		ID:     body.ID,
		Action: chi.URLParam(r, "action"),
		Input:  body.Input,
		Config: s.config,
	}, s.opts...)

	statusCode := http.StatusOK
	if resp.Status == result.Failure.String() {
		statusCode = http.StatusInternalServerError
	}
	writeJSON(w, statusCode, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Get().Error().Err(err).Msg("Failed to write response")
	}
}

// loggingMiddleware logs every request with its status and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Get().Info().
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("Finished request")
	})
}
