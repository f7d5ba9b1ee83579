// This file contains the orchestrator probe handlers:
//   - GET /readyz  — readiness probe
//   - GET /healthz — liveness probe
package handlers

import (
	"net/http"

	"github.com/dlfelps/hello-node-go/internal/models"
)

// Readyz handles GET /readyz. Kubernetes polls this endpoint to decide
// whether the pod should receive traffic. The service has no dependencies
// to warm up, so it is ready as soon as it is listening.
func Readyz(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, models.ReadyBody)
}

// Healthz handles GET /healthz. Kubernetes polls this endpoint to decide
// whether the container should be restarted. Answering at all means the
// process is alive.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, models.HealthyBody)
}
