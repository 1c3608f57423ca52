// Package fetch implements the resilient source fetcher: per-category
// ordered provider chains with shape validation, bundled static fallbacks,
// and a shared TTL cache in front of every category call.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/geolens-io/geolens/internal/core/domain"
)

// Source performs HTTP calls against upstream data providers. One Source is
// shared by all chains; per-attempt bounds come from the request context.
type Source struct {
	httpClient *http.Client
}

// NewSource creates an HTTP source with a tuned transport.
func NewSource(timeout time.Duration) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Get fetches a URL and returns the raw body. Connection failures, timeouts
// and non-success statuses are classified as transport errors so the chain
// moves on to the next provider.
func (s *Source) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, domain.TransportErrorf("%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, domain.TransportErrorf("rate limited (429), retry after: %s", resp.Header.Get("Retry-After"))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domain.TransportErrorf("http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.TransportErrorf("read response: %v", err)
	}
	return body, nil
}
