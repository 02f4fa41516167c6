// Package sources defines the interfaces and types for achievement payload
// providers. A provider wraps one data origin (canonical cache, legacy
// per-platform cache, remote schema service, scraped page, emulation-layer
// store, heuristic file walk) and returns zero or more raw payloads together
// with a trust flag deciding whether unmatched records may be inserted as new
// entries.
package sources

import (
	"context"
	"slices"
	"sync"

	"github.com/agentstation/trophycase/pkg/identity"
	"github.com/agentstation/trophycase/pkg/parse"
)

// ID represents the identifier of a payload provider.
type ID string

// String returns the string representation of a provider id.
func (id ID) String() string {
	return string(id)
}

// Provider ids, in priority order (highest first).
const (
	CanonicalCacheID ID = "canonical_cache"
	LegacyCacheID    ID = "legacy_cache"
	RemoteSchemaID   ID = "remote_schema"
	RemoteFallbackID ID = "remote_fallback"
	WebScrapeID      ID = "web_scrape"
	EmulatorStoreID  ID = "emulator_store"
	HeuristicID      ID = "heuristic_scan"
)

// IDs returns all provider ids in priority order.
func IDs() []ID {
	return []ID{
		CanonicalCacheID,
		LegacyCacheID,
		RemoteSchemaID,
		RemoteFallbackID,
		WebScrapeID,
		EmulatorStoreID,
		HeuristicID,
	}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Request carries everything a provider needs to locate payloads for one
// (account, platform, title). Session state is passed explicitly; providers
// never read ambient globals.
type Request struct {
	// AccountRoot is the active session's storage root, under which
	// Achievements/ and Metadata/ live.
	AccountRoot string

	// Platform and Title identify the library entry as displayed.
	Platform string
	Title    string

	// Identity is the resolved canonical storage location.
	Identity identity.Identity

	// AppID is the title's external (remote-service) identifier from the
	// per-title metadata store, when known.
	AppID string

	// InstallPath is the directory the title launches from, when known.
	// Emulator-store and heuristic scans anchor on it.
	InstallPath string

	// ScrapeURL overrides page discovery for the web scrape provider.
	ScrapeURL string
}

// Payload is one raw result from a provider, to be parsed by the parser
// matching its declared shape.
type Payload struct {
	// Data is the raw bytes or text of the payload.
	Data []byte

	// Shape selects the parser.
	Shape parse.Shape

	// Trusted reports whether unmatched records from this payload may be
	// inserted as new entries. Untrusted payloads may only update fields on
	// existing entries.
	Trusted bool

	// Complete marks an already-reconciled set; the provider chain stops
	// after a complete payload. Only the canonical cache produces one.
	Complete bool

	// Origin names the file path or URL the payload came from, for
	// diagnostics.
	Origin string
}

// Source is one payload provider in the chain.
type Source interface {
	// ID returns the provider's identifier.
	ID() ID

	// Fetch retrieves raw payloads for the request. A missing backing store
	// is not an error: providers return (nil, nil) and the chain proceeds.
	Fetch(ctx context.Context, req *Request) ([]Payload, error)
}

// Chain is an ordered, thread-safe set of providers. Iteration follows
// registration order, which callers arrange by priority.
type Chain struct {
	mu      sync.RWMutex
	order   []ID
	sources map[ID]Source
}

// NewChain creates a Chain from providers in priority order.
func NewChain(srcs ...Source) *Chain {
	c := &Chain{sources: make(map[ID]Source, len(srcs))}
	for _, src := range srcs {
		c.Add(src)
	}
	return c
}

// Add appends a provider; re-adding an id replaces it in place.
func (c *Chain) Add(src Source) {
	if src == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	id := src.ID()
	if _, exists := c.sources[id]; !exists {
		c.order = append(c.order, id)
	}
	c.sources[id] = src
}

// Get returns a provider by id.
func (c *Chain) Get(id ID) (Source, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	src, found := c.sources[id]
	return src, found
}

// Len returns the number of providers.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sources)
}

// List returns the providers in priority order.
func (c *Chain) List() []Source {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list := make([]Source, 0, len(c.order))
	for _, id := range c.order {
		list = append(list, c.sources[id])
	}
	return list
}
