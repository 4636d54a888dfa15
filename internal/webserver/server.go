// Package webserver provides a demonstration classifier endpoint that the
// inference client can be pointed at: random predictions on /classify and
// an intentionally biased variant on /classify/biased.
package webserver

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port   int
	Logger *slog.Logger

	// Seed fixes the prediction RNG; zero picks a random seed.
	Seed uint64
}

// Server wraps the HTTP server with configuration.
type Server struct {
	cfg    Config
	srv    *http.Server
	logger *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a new demo classifier server with the given configuration.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	s := &Server{
		cfg:    cfg,
		logger: cfg.Logger,
		rng:    rand.New(rand.NewPCG(seed, seed)),
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)
	s.srv = &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the route mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe starts the HTTP server and blocks until it stops.
// Cancelling ctx shuts the server down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("demo classifier starting", "address", s.srv.Addr)

	go func() {
		<-ctx.Done()
		s.logger.Info("shutting down demo classifier")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown failed", "error", err)
		}
	}()

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("demo classifier: %w", err)
	}
	return nil
}

func (s *Server) randomLabel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(2)
}
