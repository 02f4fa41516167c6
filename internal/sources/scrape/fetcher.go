package scrape

import (
	"context"
	"net/url"
	"strings"

	"github.com/agentstation/trophycase/internal/transport"
)

// HTTPFetcher implements Fetcher over plain HTTP. The search base URL embeds
// "{query}" or receives the term as a trailing query parameter.
type HTTPFetcher struct {
	searchBase string
	transport  *transport.Client
}

// NewHTTPFetcher creates a fetcher with a search endpoint.
func NewHTTPFetcher(searchBase string, tc *transport.Client) *HTTPFetcher {
	if tc == nil {
		tc = transport.New()
	}
	return &HTTPFetcher{searchBase: searchBase, transport: tc}
}

// Page implements Fetcher.
func (f *HTTPFetcher) Page(ctx context.Context, pageURL string) ([]byte, error) {
	return f.transport.Get(ctx, pageURL)
}

// Search implements Fetcher.
func (f *HTTPFetcher) Search(ctx context.Context, query string) ([]byte, error) {
	if f.searchBase == "" {
		return nil, nil
	}
	escaped := url.QueryEscape(query)
	target := f.searchBase
	if strings.Contains(target, "{query}") {
		target = strings.ReplaceAll(target, "{query}", escaped)
	} else {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target = target + sep + "q=" + escaped
	}
	return f.transport.Get(ctx, target)
}
