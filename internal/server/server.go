// Package server exposes resolved draw reports over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"drawfetch/internal/config"
	"drawfetch/internal/resolver"
)

// Server routes result requests to the resolver.
type Server struct {
	resolver *resolver.Resolver
	router   chi.Router
	log      zerolog.Logger
	now      func() time.Time
}

// New wires the router. The engine never fails hard, so the handler surface
// stays small: the one client-facing error is an unrecognized state code.
func New(res *resolver.Resolver, log zerolog.Logger) *Server {
	s := &Server{
		resolver: res,
		log:      log,
		now:      time.Now,
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	r.Use(s.accessLog)
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/v1/results/{state}", s.handleResults)
	s.router = r

	return s
}

// Handler returns the HTTP handler for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info().Str("addr", addr).Msg("listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	state := chi.URLParam(r, "state")

	rep, err := s.resolver.Resolve(r.Context(), state, s.now())
	if err != nil {
		if errors.Is(err, config.ErrUnknownState) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown state"})
			return
		}
		s.log.Error().Err(err).Str("state", state).Msg("resolve failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
