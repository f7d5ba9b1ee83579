// Package handlers contains the HTTP handler functions for the hello-node
// service. Handlers are the "glue" between incoming HTTP requests and the
// services layer.
//
// This file provides shared helper functions used across all handlers.
// In Go's net/http package, a handler is any function with the signature:
//
//	func(w http.ResponseWriter, r *http.Request)
//
// The ResponseWriter is where we write our response, and the Request contains
// all the information about the incoming HTTP request.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON serializes a value to JSON and writes it to the HTTP response
// with the correct Content-Type header and status code. Encoding failures are
// reported to logger.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	// Headers must be set before WriteHeader, which sends them immediately.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already on the wire, so all we can do is log.
		logger.Error("encode response", "error", err)
	}
}

// writeText writes a plain-text body with the given status code.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
