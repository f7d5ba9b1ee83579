package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dlfelps/hello-node-go/internal/services"
)

// NewRouter returns a ServeMux with every route of the service registered.
// logger receives errors the handlers cannot report to the client.
//
// Patterns use Go 1.22+ syntax: "GET /path" restricts the method (HEAD is
// accepted too), and "{$}" anchors the root so that "/" does not act as a
// catch-all. Anything unmatched falls through to the mux's own 404 and 405
// responses.
func NewRouter(logger *slog.Logger, gs *services.GreetingService) *http.ServeMux {
	greetingHandler := NewGreetingHandler(gs, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", greetingHandler.Greet)
	mux.HandleFunc("GET /readyz", Readyz)
	mux.HandleFunc("GET /healthz", Healthz)

	return mux
}
