// Package schema implements the remote schema providers: the primary service
// and a secondary fallback, both keyed by the title's external app id. A
// schema declares names, descriptions, and icons but never unlock state. The
// fallback only runs when the primary yielded nothing for the same request.
package schema

import (
	"context"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/agentstation/trophycase/pkg/parse"
	"github.com/agentstation/trophycase/pkg/sources"
)

// Client fetches a raw declared-schema document for an app id.
type Client interface {
	Schema(ctx context.Context, appID string) ([]byte, error)
}

// achievementPaths are the places schema documents keep their achievement
// arrays, tried in order.
var achievementPaths = []string{
	"game.availableGameStats.achievements",
	"availableGameStats.achievements",
	"achievements",
	"data.achievements",
}

// Pair wires a primary and fallback schema source that share per-request
// success state. The state lasts one resolution: the primary clears its key
// on every attempt and the fallback consumes it, so a later resolution of the
// same title starts clean.
type Pair struct {
	mu        sync.Mutex
	succeeded map[string]bool
}

// New creates the primary and fallback providers over their clients. Either
// client may be nil, disabling that half.
func New(primary, fallback Client) (*Source, *Source) {
	pair := &Pair{succeeded: make(map[string]bool)}
	return &Source{id: sources.RemoteSchemaID, client: primary, pair: pair},
		&Source{id: sources.RemoteFallbackID, client: fallback, pair: pair, isFallback: true}
}

// Source is one half of the remote schema pair.
type Source struct {
	id         sources.ID
	client     Client
	pair       *Pair
	isFallback bool
}

// ID returns the provider's identifier.
func (s *Source) ID() sources.ID {
	return s.id
}

// Fetch pulls the declared schema for the request's app id. Requests without
// an app id yield nothing: the schema service is only trusted because it is
// scoped to the exact identifier.
func (s *Source) Fetch(ctx context.Context, req *sources.Request) ([]sources.Payload, error) {
	if req.AppID == "" {
		return nil, nil
	}

	key := req.Identity.Key()
	if s.isFallback {
		if s.pair.consume(key) {
			return nil, nil
		}
	} else {
		s.pair.reset(key)
	}

	if s.client == nil {
		return nil, nil
	}

	body, err := s.client.Schema(ctx, req.AppID)
	if err != nil {
		return nil, err
	}

	array := extractAchievements(body)
	if array == "" {
		return nil, nil
	}

	if !s.isFallback {
		s.pair.markDone(key)
	}

	return []sources.Payload{{
		Data:    []byte(array),
		Shape:   parse.ShapeArray,
		Trusted: true,
		Origin:  s.id.String() + ":" + req.AppID,
	}}, nil
}

// extractAchievements returns the raw achievements array from a schema
// document, or "".
func extractAchievements(body []byte) string {
	doc := gjson.ParseBytes(body)
	for _, path := range achievementPaths {
		if array := doc.Get(path); array.IsArray() && len(array.Array()) > 0 {
			return array.Raw
		}
	}
	if doc.IsArray() && len(doc.Array()) > 0 {
		return doc.Raw
	}
	return ""
}

// consume reports whether the primary produced a schema for the key during
// this resolution, clearing the entry either way.
func (p *Pair) consume(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	done := p.succeeded[key]
	delete(p.succeeded, key)
	return done
}

// reset clears any stale success state before a primary attempt.
func (p *Pair) reset(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.succeeded, key)
}

// markDone records primary success for the key.
func (p *Pair) markDone(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.succeeded[key] = true
}
