// Package api serves parsed Datastream files over a REST API.
//
// Every route under /api/v1 requires the X-API-Key header. /metrics is left
// open for scraping.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Server handles the API's HTTP requests
type Server struct {
	archive Archive
	config  ServerConfig
	metrics *Metrics
	log     *zap.Logger
}

// NewServer creates a new API server. metrics and log may be nil.
func NewServer(archive Archive, config ServerConfig, metrics *Metrics, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		archive: archive,
		config:  config,
		metrics: metrics,
		log:     log,
	}
}

// Router builds the HTTP handler with all routes configured
func (s *Server) Router() http.Handler {
	metrics := s.metrics

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(s.config.APIKey)))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		r.Post("/datastreams", metrics.InstrumentHandler("POST", "/api/v1/datastreams", s.handleUpload))
		r.Get("/datastreams", metrics.InstrumentHandler("GET", "/api/v1/datastreams", s.handleList))
		r.Get("/datastreams/{id}", metrics.InstrumentHandler("GET", "/api/v1/datastreams/{id}", s.handleGet))
		r.Get("/datastreams/{id}/summary",
			metrics.InstrumentHandler("GET", "/api/v1/datastreams/{id}/summary", s.handleSummary))
		r.Get("/datastreams/{id}/animals/{line}",
			metrics.InstrumentHandler("GET", "/api/v1/datastreams/{id}/animals/{line}", s.handleAnimal))
		r.Delete("/datastreams/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/datastreams/{id}", s.handleDelete))
	})

	return r
}

// Addr is the address the server listens on
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Bind, strconv.Itoa(s.config.Port))
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("Starting Datastream REST API server", zap.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	s.log.Info("Server stopped")
	return nil
}
