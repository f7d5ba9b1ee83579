// This file contains the HTTP handler for the root endpoint:
//   - GET / — Returns a JSON greeting naming the service, pod, and time
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dlfelps/hello-node-go/internal/services"
)

// GreetingHandler handles requests to the root endpoint.
type GreetingHandler struct {
	greetingService *services.GreetingService
	logger          *slog.Logger
}

// NewGreetingHandler creates a new GreetingHandler with the given service.
// logger receives response encoding errors.
func NewGreetingHandler(gs *services.GreetingService, logger *slog.Logger) *GreetingHandler {
	return &GreetingHandler{greetingService: gs, logger: logger}
}

// Greet handles GET / — returns the greeting as JSON. The timestamp is
// taken when the request is served, so two requests never share it unless
// they land in the same millisecond.
func (h *GreetingHandler) Greet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.greetingService.Greet())
}
