package config

import (
	"errors"
	"testing"
)

// envMap returns a getenv-compatible lookup backed by a map, so each test
// case can describe its environment inline.
func envMap(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("port: got %q, want 3000", cfg.Port)
	}
	if cfg.PodName != "unknown" {
		t.Errorf("pod: got %q, want unknown", cfg.PodName)
	}
	if cfg.HealthcheckEndpoint != "http://localhost:3000/healthz" {
		t.Errorf("healthcheck endpoint: got %q", cfg.HealthcheckEndpoint)
	}
	if cfg.Addr() != ":3000" {
		t.Errorf("addr: got %q, want :3000", cfg.Addr())
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	cfg, err := Load(envMap(map[string]string{
		"PORT":    "8080",
		"PODNAME": "test-pod",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != ":8080" {
		t.Errorf("addr: got %q, want :8080", cfg.Addr())
	}
	if cfg.PodName != "test-pod" {
		t.Errorf("pod: got %q, want test-pod", cfg.PodName)
	}
	// The probe endpoint follows PORT unless set explicitly.
	if cfg.HealthcheckEndpoint != "http://localhost:8080/healthz" {
		t.Errorf("healthcheck endpoint: got %q", cfg.HealthcheckEndpoint)
	}
}

func TestLoad_ExplicitHealthcheckEndpoint(t *testing.T) {
	cfg, err := Load(envMap(map[string]string{
		"HEALTHCHECK_ENDPOINT": "http://localhost:3000/readyz",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HealthcheckEndpoint != "http://localhost:3000/readyz" {
		t.Errorf("healthcheck endpoint: got %q", cfg.HealthcheckEndpoint)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{name: "not a number", port: "abc"},
		{name: "negative", port: "-1"},
		{name: "too large", port: "65536"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(envMap(map[string]string{"PORT": tc.port}))
			if !errors.Is(err, ErrInvalidPort) {
				t.Errorf("got %v, want ErrInvalidPort", err)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	// t.Setenv restores the previous value when the test ends.
	t.Setenv("PORT", "")
	t.Setenv("PODNAME", "env-pod")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("port: got %q, want %q", cfg.Port, DefaultPort)
	}
	if cfg.PodName != "env-pod" {
		t.Errorf("pod: got %q, want env-pod", cfg.PodName)
	}
}
