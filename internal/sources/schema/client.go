package schema

import (
	"context"
	"net/url"
	"strings"

	"github.com/agentstation/trophycase/internal/transport"
)

// HTTPClient fetches schema documents over HTTP with bounded retry. The base
// URL carries everything but the app id; "{appid}" in the URL is substituted,
// otherwise the id is appended as a query parameter.
type HTTPClient struct {
	base      string
	transport *transport.Client
}

// NewHTTPClient creates a schema client for a base URL.
func NewHTTPClient(base string, tc *transport.Client) *HTTPClient {
	if tc == nil {
		tc = transport.New()
	}
	return &HTTPClient{base: base, transport: tc}
}

// Schema implements Client.
func (c *HTTPClient) Schema(ctx context.Context, appID string) ([]byte, error) {
	return c.transport.GetWithRetry(ctx, c.url(appID))
}

// url builds the request URL for an app id.
func (c *HTTPClient) url(appID string) string {
	if strings.Contains(c.base, "{appid}") {
		return strings.ReplaceAll(c.base, "{appid}", url.QueryEscape(appID))
	}
	sep := "?"
	if strings.Contains(c.base, "?") {
		sep = "&"
	}
	return c.base + sep + "appid=" + url.QueryEscape(appID)
}
