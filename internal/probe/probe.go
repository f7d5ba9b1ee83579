// Package probe checks a health endpoint over HTTP. It backs the
// cmd/healthcheck binary, which container runtimes without an HTTP probe
// (Docker HEALTHCHECK, for instance) can exec inside the image.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnhealthy is returned when the endpoint answers with a status other
// than 200.
var ErrUnhealthy = errors.New("endpoint unhealthy")

// Check issues a GET to url and returns nil only if the response is 200 OK.
// The body is drained so the connection can be reused.
func Check(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: status %d: %w", url, resp.StatusCode, ErrUnhealthy)
	}
	return nil
}
