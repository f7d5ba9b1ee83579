// Package config reads the service's runtime settings from the environment.
//
// Settings are read once at process start and never change afterwards. We
// pass the lookup function in (rather than calling os.Getenv directly) so
// tests can supply their own environment without mutating the real one.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dlfelps/hello-node-go/internal/models"
)

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = "3000"

// ErrInvalidPort is returned when PORT is not an integer in 0..65535.
var ErrInvalidPort = errors.New("invalid port")

// Config holds every setting the service reads from its environment.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// PodName is reported in the greeting so callers can tell replicas apart.
	// In Kubernetes this is usually injected with the downward API.
	PodName string

	// HealthcheckEndpoint is the URL cmd/healthcheck probes.
	HealthcheckEndpoint string
}

// Load builds a Config using getenv to look up each variable. Empty values
// are treated the same as unset ones.
func Load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:                getenv("PORT"),
		PodName:             getenv("PODNAME"),
		HealthcheckEndpoint: getenv("HEALTHCHECK_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	n, err := strconv.Atoi(cfg.Port)
	if err != nil || n < 0 || n > 65535 {
		return Config{}, fmt.Errorf("PORT=%q: %w", cfg.Port, ErrInvalidPort)
	}

	if cfg.PodName == "" {
		cfg.PodName = models.UnknownPod
	}
	if cfg.HealthcheckEndpoint == "" {
		cfg.HealthcheckEndpoint = "http://localhost:" + cfg.Port + "/healthz"
	}

	return cfg, nil
}

// FromEnv loads the Config from the process environment.
func FromEnv() (Config, error) {
	return Load(os.Getenv)
}

// Addr returns the listen address for http.Server, e.g. ":3000".
func (c Config) Addr() string {
	return ":" + c.Port
}
