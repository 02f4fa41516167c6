// Package trophycase reconciles per-title achievement records scattered
// across cached files, remote schema services, scraped pages, emulation-layer
// save stores, and heuristic file discovery into one unified, persisted list.
package trophycase

import (
	"context"

	"github.com/agentstation/trophycase/internal/metastore"
	"github.com/agentstation/trophycase/internal/sources/cachefile"
	"github.com/agentstation/trophycase/internal/sources/emustore"
	"github.com/agentstation/trophycase/internal/sources/heuristic"
	"github.com/agentstation/trophycase/internal/sources/legacy"
	"github.com/agentstation/trophycase/internal/sources/schema"
	"github.com/agentstation/trophycase/internal/sources/scrape"
	"github.com/agentstation/trophycase/internal/transport"
	"github.com/agentstation/trophycase/pkg/achievements"
	"github.com/agentstation/trophycase/pkg/errors"
	"github.com/agentstation/trophycase/pkg/identity"
	"github.com/agentstation/trophycase/pkg/logging"
	"github.com/agentstation/trophycase/pkg/reconcile"
	"github.com/agentstation/trophycase/pkg/save"
	"github.com/agentstation/trophycase/pkg/sources"
)

// Client resolves titles to unified achievement sets.
type Client interface {
	// Resolve reconciles the achievement set for a (platform, title). The
	// returned set may be empty; the error is only ever a context error.
	Resolve(ctx context.Context, platform, title string) (*achievements.Set, error)

	// Identity returns the canonical storage location for a (platform, title).
	Identity(platform, title string) identity.Identity

	// Metadata exposes the per-title metadata store for this account.
	Metadata() *metastore.Store
}

// client is the internal implementation of the Client interface.
type client struct {
	config *config
	engine *reconcile.Engine
	meta   *metastore.Store
	index  *metastore.AppIndex
}

// New creates a Client with the given options.
func New(opts ...Option) (Client, error) {
	c := &client{config: defaultConfig()}

	for _, opt := range opts {
		if err := opt(c.config); err != nil {
			return nil, err
		}
	}
	if c.config.accountRoot == "" {
		return nil, errors.New("account root is required")
	}

	c.meta = metastore.New(c.config.accountRoot)
	if idx, err := c.meta.LoadAppIndex(); err == nil {
		c.index = idx
	}

	tc := transport.NewWithHTTPClient(c.config.httpClient)

	chain := c.config.chain
	if chain == nil {
		primary, fallback := schema.New(
			schemaClient(c.config.schemaURL, tc),
			schemaClient(c.config.fallbackURL, tc),
		)

		emuOpts := []emustore.Option{}
		if c.config.rootsReplaced {
			emuOpts = append(emuOpts, emustore.WithRoots(c.config.onlyRoots))
		}
		if c.config.appBase != "" {
			emuOpts = append(emuOpts, emustore.WithAppBase(c.config.appBase))
		}
		if len(c.config.extraRoots) > 0 {
			emuOpts = append(emuOpts, emustore.WithExtraRoots(c.config.extraRoots))
		}

		chain = sources.NewChain(
			cachefile.New(),
			legacy.New(),
			primary,
			fallback,
			scrape.New(scrape.NewHTTPFetcher(c.config.searchURL, tc)),
			emustore.New(emuOpts...),
			heuristic.New(),
		)
	}

	c.engine = reconcile.New(chain, save.NewWriter())
	return c, nil
}

// schemaClient builds an HTTP schema client, or nil when no URL is
// configured.
func schemaClient(url string, tc *transport.Client) schema.Client {
	if url == "" {
		return nil
	}
	return schema.NewHTTPClient(url, tc)
}

// Resolve implements Client.
func (c *client) Resolve(ctx context.Context, platform, title string) (*achievements.Set, error) {
	if c.config.logger != nil {
		ctx = logging.WithLogger(ctx, c.config.logger)
	}

	req := c.request(platform, title)
	return c.engine.Resolve(ctx, req)
}

// Identity implements Client.
func (c *client) Identity(platform, title string) identity.Identity {
	return identity.Resolve(c.config.accountRoot, platform, title)
}

// Metadata implements Client.
func (c *client) Metadata() *metastore.Store {
	return c.meta
}

// request assembles the provider request: resolved identity plus whatever the
// metadata store and app index know about the title.
func (c *client) request(platform, title string) *sources.Request {
	req := &sources.Request{
		AccountRoot: c.config.accountRoot,
		Platform:    platform,
		Title:       title,
		Identity:    identity.Resolve(c.config.accountRoot, platform, title),
	}

	if record, err := c.meta.Get(platform, title); err == nil {
		req.AppID = record.AppID
		req.InstallPath = record.InstallPath
		req.ScrapeURL = record.ScrapeURL
	}
	if req.AppID == "" {
		if id, ok := c.index.Lookup(title); ok {
			req.AppID = id
		}
	}
	return req
}
