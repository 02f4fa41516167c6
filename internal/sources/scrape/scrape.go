// Package scrape implements the web scrape provider. It consumes documents
// from a Fetcher collaborator; cookies, sessions, and browser lifecycle are
// someone else's problem. A page reached through navigation is confirmed to
// belong to the title, so its payload is trusted.
package scrape

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/agentstation/trophycase/pkg/errors"
	"github.com/agentstation/trophycase/pkg/parse"
	"github.com/agentstation/trophycase/pkg/sources"
)

// Fetcher is the web content collaborator: it resolves a URL to raw markup
// and a search term to a results page that may be followed once.
type Fetcher interface {
	Page(ctx context.Context, url string) ([]byte, error)
	Search(ctx context.Context, query string) ([]byte, error)
}

// Source scrapes the title's achievement page.
type Source struct {
	fetcher Fetcher
}

// New creates the scrape provider.
func New(fetcher Fetcher) *Source {
	return &Source{fetcher: fetcher}
}

// ID returns the provider's identifier.
func (s *Source) ID() sources.ID {
	return sources.WebScrapeID
}

// Fetch pulls the achievement page for the title. A known URL is fetched
// directly; otherwise a search results page is followed exactly once, to the
// link whose text matches the title exactly (case-insensitive).
func (s *Source) Fetch(ctx context.Context, req *sources.Request) ([]sources.Payload, error) {
	if s.fetcher == nil {
		return nil, nil
	}

	pageURL := req.ScrapeURL
	if pageURL == "" {
		found, err := s.searchOnce(ctx, req.Title)
		if err != nil {
			return nil, errors.WrapSource(s.ID().String(), req.Title, err)
		}
		if found == "" {
			return nil, nil
		}
		pageURL = found
	}

	page, err := s.fetcher.Page(ctx, pageURL)
	if err != nil {
		return nil, errors.WrapSource(s.ID().String(), req.Title, err)
	}

	return []sources.Payload{{
		Data:    page,
		Shape:   parse.ShapeMarkup,
		Trusted: true,
		Origin:  pageURL,
	}}, nil
}

// searchOnce runs one search and returns the href of the result link whose
// text equals the title. Approximate matches are ignored.
func (s *Source) searchOnce(ctx context.Context, title string) (string, error) {
	results, err := s.fetcher.Search(ctx, title)
	if err != nil {
		return "", err
	}

	root, err := html.Parse(strings.NewReader(string(results)))
	if err != nil {
		return "", errors.WrapParse(parse.ShapeMarkup.String(), "search results", err)
	}

	want := strings.ToLower(strings.TrimSpace(title))
	var href string
	walk(root, func(n *html.Node) {
		if href != "" || n.Type != html.ElementNode || n.Data != "a" {
			return
		}
		if strings.ToLower(strings.TrimSpace(text(n))) != want {
			return
		}
		for _, attr := range n.Attr {
			if strings.EqualFold(attr.Key, "href") && attr.Val != "" {
				href = attr.Val
				return
			}
		}
	})
	return href, nil
}

// walk visits every node in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// text concatenates a subtree's text content.
func text(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}
