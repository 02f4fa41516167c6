// Package transport provides the HTTP plumbing shared by the remote schema
// clients, the web scrape provider, and the app-list fetcher. It owns
// timeouts and response decoding; it does not manage cookies, sessions, or
// browser lifecycle.
package transport

import (
	"context"
	"io"
	"net/http"

	"github.com/agentstation/trophycase/pkg/constants"
	"github.com/agentstation/trophycase/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client wraps an http.Client with the defaults remote fetches use.
type Client struct {
	http *http.Client
}

// New creates a transport client with the default timeout.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// NewWithHTTPClient wraps an injected http.Client, letting tests substitute
// an httptest server client.
func NewWithHTTPClient(hc *http.Client) *Client {
	if hc == nil {
		return New()
	}
	return &Client{http: hc}
}

// Get performs a GET request and returns the raw body. Non-2xx statuses are
// returned as a ScrapeError carrying the status code.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapIO("create", url, err)
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &errors.ScrapeError{URL: url, Message: err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxPayloadBytes))
	if err != nil {
		return nil, errors.WrapIO("read", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errors.ScrapeError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	return body, nil
}
