// Package fetch provides the HTTP page fetcher for the scraper.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultUserAgent = "codeforces-scraper/1.0 (github.com/lovrop/codeforces-scraper)"
	DefaultTimeout   = 30 * time.Second
)

// Client fetches pages over HTTP. Failures are not retried.
type Client struct {
	client    *http.Client
	userAgent string
}

// New creates a Client with the default timeout and user agent.
func New() *Client {
	return NewWithOptions(DefaultTimeout, DefaultUserAgent)
}

// NewWithOptions creates a Client with an explicit timeout and user agent.
func NewWithOptions(timeout time.Duration, userAgent string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Get fetches url and returns the full response body. Any non-200 status
// is an error.
func (c *Client) Get(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return body, nil
}
