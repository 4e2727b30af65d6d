// Package fetcher performs the network side of a fetch cycle: a bounded GET returning status and body.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultMaxBodySize = 10 * 1024 * 1024

// HTTPFetcher fetches provider payloads via HTTP
type HTTPFetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures HTTPFetcher
type Option func(*HTTPFetcher)

// WithUserAgent sets the User-Agent header for all requests
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) { f.userAgent = ua }
}

// WithMaxBodySize limits the number of body bytes read, longer bodies are reported as an error
func WithMaxBodySize(size int64) Option {
	return func(f *HTTPFetcher) { f.maxBodySize = size }
}

// WithClient sets a custom http client
func WithClient(c *http.Client) Option {
	return func(f *HTTPFetcher) { f.client = c }
}

// NewHTTPFetcher creates a new fetcher, timeout bounds the whole request including body read
func NewHTTPFetcher(timeout time.Duration, opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:      &http.Client{},
		timeout:     timeout,
		userAgent:   "fetchsched/1.0",
		maxBodySize: defaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Get performs a GET request and returns status code and body.
// Error returned only for transport failures (dns, connection, timeout, body read), any status is a valid response.
func (f *HTTPFetcher) Get(ctx context.Context, url string) (status int, body string, err error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, "", fmt.Errorf("create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	addRequestHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return 0, "", fmt.Errorf("read body of %s: %w", url, err)
	}
	if int64(len(data)) > f.maxBodySize {
		return 0, "", fmt.Errorf("body of %s exceeds %d bytes", url, f.maxBodySize)
	}

	return resp.StatusCode, string(data), nil
}
