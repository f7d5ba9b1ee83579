// Package main is the entry point for the hello-node service.
//
// The service answers three routes: a JSON greeting at GET /, and the
// readiness (GET /readyz) and liveness (GET /healthz) probes a container
// orchestrator polls. Configuration comes from the environment:
//
//	PORT     listen port (default 3000)
//	PODNAME  name reported in the greeting (default "unknown")
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dlfelps/hello-node-go/internal/config"
	"github.com/dlfelps/hello-node-go/internal/handlers"
	"github.com/dlfelps/hello-node-go/internal/models"
	"github.com/dlfelps/hello-node-go/internal/services"
)

// shutdownGrace bounds how long in-flight requests get to finish after
// SIGTERM. Kubernetes waits 30s by default before sending SIGKILL.
const shutdownGrace = 10 * time.Second

func main() {
	// JSON logs on stdout are what log collectors in a cluster expect.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", models.ServiceName)

	// The context is cancelled on SIGINT or SIGTERM, which starts shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv, logger); err != nil {
		logger.Error("server failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// run loads the configuration through getenv, serves HTTP until ctx is
// cancelled, then shuts down gracefully. It returns an error if the config
// is invalid, the port cannot be bound, or the server stops on its own.
func run(ctx context.Context, getenv func(string) string, logger *slog.Logger) error {
	// -----------------------------------------------------------------------
	// Configuration and dependency initialization
	// -----------------------------------------------------------------------
	cfg, err := config.Load(getenv)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	greetingService := services.NewGreetingService(cfg.PodName, time.Now)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handlers.RequestLogger(logger, handlers.NewRouter(logger, greetingService)),
	}

	// -----------------------------------------------------------------------
	// Server startup
	// -----------------------------------------------------------------------
	// Binding before serving means a port conflict is reported here, before
	// we claim to be listening.
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()
	logger.Info("server is listening", "port", cfg.Port, "pod", cfg.PodName)

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	// -----------------------------------------------------------------------
	// Graceful shutdown
	// -----------------------------------------------------------------------
	// Stop accepting connections and let in-flight requests finish.
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	// Serve returns ErrServerClosed once Shutdown has been called.
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
