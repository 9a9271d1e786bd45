package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"strhelpers/internal/handler"
	"strhelpers/internal/middleware"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultShutdown     = 30 * time.Second
	idleTimeout         = 60 * time.Second
)

// Config holds server configuration.
type Config struct {
	Port            int
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

// Server represents the HTTP server.
type Server struct {
	cfg        Config
	httpServer *http.Server
	router     chi.Router
	registry   *prometheus.Registry
	handler    *handler.Handler
	logger     *slog.Logger
}

// New creates a new Server with the given configuration.
// Optional helperService can be passed to enable the helper endpoints.
func New(cfg Config, logger *slog.Logger, helperService ...handler.HelperService) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaultShutdown
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	router := chi.NewRouter()
	// Recovery runs innermost so a recovered 500 still reaches the access
	// log, the request metrics and the timing header.
	router.Use(
		middleware.RequestID,
		middleware.Logger(logger),
		metrics.Instrument,
		middleware.Timing,
		middleware.Recovery(logger),
	)

	s := &Server{
		cfg:      cfg,
		router:   router,
		registry: registry,
		logger:   logger,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  idleTimeout,
		},
	}

	if len(helperService) > 0 && helperService[0] != nil {
		s.handler = handler.New(helperService[0])
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	if s.handler != nil {
		s.router.Route("/v1", func(r chi.Router) {
			r.Post("/capitalize", s.handler.Capitalize)
			r.Post("/digits", s.handler.Digits)
			r.Post("/truncate", s.handler.Truncate)
			r.Post("/group", s.handler.Group)
			r.Post("/card-expiry", s.handler.CardExpiry)
			r.Get("/stats", s.handler.ListStats)
			r.Get("/stats/{operation}", s.handler.Stats)
		})
	}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Handler returns the root HTTP handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server. This method blocks until the server is stopped.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// HandleFunc registers a handler function for the given method and pattern.
// This is useful for testing to add custom endpoints.
func (s *Server) HandleFunc(method, pattern string, fn http.HandlerFunc) {
	s.router.MethodFunc(method, pattern, fn)
}

// Run starts the server and blocks until a shutdown signal is received.
// It handles SIGINT and SIGTERM for graceful shutdown.
// The provided context can also be used to trigger shutdown.
func (s *Server) Run(ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", "addr", s.httpServer.Addr)
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		s.logger.Info("shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}
