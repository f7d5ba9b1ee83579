// Command healthcheck probes the service's liveness endpoint and exits 0 if
// it answers 200, 1 otherwise. It is meant for Docker's HEALTHCHECK, which
// runs a command inside the container instead of making an HTTP request.
//
// The URL defaults to http://localhost:$PORT/healthz. Set
// HEALTHCHECK_ENDPOINT to probe something else, e.g. /readyz.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dlfelps/hello-node-go/internal/config"
	"github.com/dlfelps/hello-node-go/internal/probe"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client := &http.Client{Timeout: 3 * time.Second}
	if err := probe.Check(ctx, client, cfg.HealthcheckEndpoint); err != nil {
		logger.Error("healthcheck failed", "endpoint", cfg.HealthcheckEndpoint, "error", err)
		cancel()
		os.Exit(1)
	}
}
