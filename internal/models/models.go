// Package models defines the data types the hello-node service sends over
// the wire. There is no domain state to model; the only structured payload is
// the greeting returned from GET /.
//
// Struct tags (the `json:"..."` annotations) control how Go's encoding/json
// package names each field in the output.
package models

// ---------------------------------------------------------------------------
// Service constants
// ---------------------------------------------------------------------------

const (
	// GreetingMessage is the fixed message returned from the root endpoint.
	GreetingMessage = "Hello, from a container!"

	// ServiceName identifies this service in greetings and logs.
	ServiceName = "hello-node"

	// UnknownPod is reported when PODNAME is not set.
	UnknownPod = "unknown"

	// ReadyBody is the plain-text body of the readiness probe.
	ReadyBody = "Ready"

	// HealthyBody is the plain-text body of the liveness probe.
	HealthyBody = "Healthy"
)

// TimeLayout is the timestamp format used in Greeting.Time: RFC 3339 in UTC
// with exactly three fractional digits, e.g. 2026-10-16T09:30:00.123Z.
//
// Go formats time using a reference date (Mon Jan 2 15:04:05 MST 2006)
// rather than strftime-style directives. The "Z07:00" suffix prints a
// literal "Z" for UTC times.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// ---------------------------------------------------------------------------
// API response types
// ---------------------------------------------------------------------------

// Greeting is the JSON body of GET /. Pod is taken from the environment at
// startup; Time is computed fresh for every request.
type Greeting struct {
	Message string `json:"message"`
	Service string `json:"service"`
	Pod     string `json:"pod"`
	Time    string `json:"time"`
}
