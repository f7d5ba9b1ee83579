// Package services contains the logic that sits behind the HTTP handlers.
// Handlers deal with requests and responses; services decide what goes in
// the response.
//
// This file implements the GreetingService, which builds the payload for
// GET /: a fixed message and service name, the pod the process is running
// in, and the current time.
package services

import (
	"time"

	"github.com/dlfelps/hello-node-go/internal/models"
)

// GreetingService builds greetings for the root endpoint.
//
// The clock is a dependency like any other. Production code passes
// time.Now; tests pass a function returning a fixed instant so they can
// assert the exact timestamp.
type GreetingService struct {
	podName string
	now     func() time.Time
}

// NewGreetingService creates a GreetingService that reports podName and
// reads the current time from now. A nil now defaults to time.Now.
func NewGreetingService(podName string, now func() time.Time) *GreetingService {
	if now == nil {
		now = time.Now
	}
	return &GreetingService{podName: podName, now: now}
}

// Greet returns a greeting stamped with the current time in UTC.
func (gs *GreetingService) Greet() models.Greeting {
	return models.Greeting{
		Message: models.GreetingMessage,
		Service: models.ServiceName,
		Pod:     gs.podName,
		Time:    gs.now().UTC().Format(models.TimeLayout),
	}
}
