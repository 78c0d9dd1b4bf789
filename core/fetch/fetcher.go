// Package fetch implements the Fetcher interface.
// It probes a URL with a single HTTP GET and reports whether it resolved.
// There are no retries: a flaky link is a broken link.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/doctestgen/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "doctestgen-links/1.0 (https://github.com/gaurav-prasanna/doctestgen)"

	// maxDrain bounds how much of a body is read before closing, so the
	// connection can be reused without downloading large assets.
	maxDrain = 64 << 10
)

// HTTPFetcher probes URLs via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher. A non-positive timeout selects the default.
func New(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch requests url and returns its status. Any status outside 2xx is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

	result := &core.FetchResult{URL: url, StatusCode: resp.StatusCode}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}
	return result, nil
}
