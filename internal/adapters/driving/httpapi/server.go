// Package httpapi exposes the snapshot service over HTTP. It is a thin
// read layer: all pipeline logic lives in the core services.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driving"
)

// Server hosts the read API.
type Server struct {
	handler *Handler
	router  chi.Router
}

// NewServer creates an HTTP server over the snapshot service.
func NewServer(service driving.SnapshotService) *Server {
	h := NewHandler(service)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h.Register(r)

	return &Server{handler: h, router: r}
}

// Router returns the configured router, for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
