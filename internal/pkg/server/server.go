package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/logger"
)

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	addr            string
	shutdownTimeout time.Duration
	shutdown        *ShutdownManager
}

// NewGracefulServer creates a server listening on host:port
func NewGracefulServer(e *echo.Echo, host string, port int, shutdownTimeout time.Duration, shutdown *ShutdownManager) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		addr:            fmt.Sprintf("%s:%d", host, port),
		shutdownTimeout: shutdownTimeout,
		shutdown:        shutdown,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down the server and the
// registered components
func (s *GracefulServer) Start() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests and runs the component cleanups
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down server gracefully")
	err := s.echo.Shutdown(ctx)
	if err != nil {
		logger.Error("Server forced to shutdown", logger.ErrorField(err))
	}
	if s.shutdown != nil {
		s.shutdown.Shutdown(ctx)
	}
	return err
}

// ShutdownManager runs cleanup functions in reverse registration order
type ShutdownManager struct {
	functions []namedCleanup
}

type namedCleanup struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager() *ShutdownManager {
	return &ShutdownManager{}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.functions = append(sm.functions, namedCleanup{name: name, fn: fn})
}

// Shutdown runs every cleanup; a failing one does not stop the others
func (sm *ShutdownManager) Shutdown(ctx context.Context) {
	for i := len(sm.functions) - 1; i >= 0; i-- {
		cleanup := sm.functions[i]
		if err := cleanup.fn(ctx); err != nil {
			logger.Error("Error during component shutdown",
				logger.String("component", cleanup.name),
				logger.ErrorField(err))
		}
	}
	logger.Info("All components shutdown completed", logger.Int("components", len(sm.functions)))
}
