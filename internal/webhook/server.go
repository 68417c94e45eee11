package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server represents the interaction HTTP server.
type Server struct {
	config     Config
	key        Key
	dispatcher Dispatcher
	logger     *slog.Logger
	server     *http.Server
}

// New creates a new interaction server instance.
func New(config Config, key Key, dispatcher Dispatcher, logger *slog.Logger) *Server {
	// Apply defaults
	if config.Path == "" {
		config.Path = DefaultPath
	}
	if config.ReadTimeout == 0 {
		config.ReadTimeout = DefaultReadTimeout
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = DefaultWriteTimeout
	}

	return &Server{
		config:     config,
		key:        key,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Start starts the interaction HTTP server (blocking). In-flight requests are
// allowed to finish when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.config.Listen,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("interaction server starting", "listen", s.config.Listen, "path", s.config.Path)

	// Run server in goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case <-ctx.Done():
		s.logger.Info("interaction server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.WriteTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("interaction server shutdown failed: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return fmt.Errorf("interaction server error: %w", err)
	}
}

// Handler returns the traced HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.setupRoutes(), "dm-reports")
}

// setupRoutes configures the HTTP router.
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Post(s.config.Path, s.handleInteraction)

	return r
}

// loggingMiddleware logs HTTP requests (excludes sensitive payloads).
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		// Log request (no body content for security)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
		)
	})
}

// handleInteraction authenticates and dispatches an interaction callback.
func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	interaction, err := Authenticate(r, s.key)
	if err != nil {
		s.reject(w, r, err)
		return
	}

	resp := s.dispatcher.Dispatch(r.Context(), interaction)
	s.respondJSON(w, http.StatusOK, resp)
}

// reject answers an unauthenticated request with a bare status code. The
// cause is only logged.
func (s *Server) reject(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	kind := "unknown"
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		status = reqErr.Status()
		kind = reqErr.Kind.String()
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.Log(r.Context(), level, "interaction rejected",
		"kind", kind,
		"status", status,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)

	w.WriteHeader(status)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthzResponse{Status: "ok"})
}

// respondJSON sends a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}
