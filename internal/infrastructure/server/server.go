package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/hanulsoft/sajunet/internal/infrastructure/config"
)

// Server represents the application HTTP server
type Server struct {
	config     *config.Config
	httpServer *http.Server
	logger     *logrus.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logrus.Logger, handler http.Handler) *Server {
	wrapped := cors.Default().Handler(requestLogger(logger, handler))

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler: wrapped,
	}

	return &Server{
		config:     cfg,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Failed to shutdown HTTP server: %v", err)
		return err
	}

	s.logger.Info("Server shutdown complete")
	return nil
}
