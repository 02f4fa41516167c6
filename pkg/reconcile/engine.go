// Package reconcile orchestrates the provider chain and folds heterogeneous
// achievement payloads into one unified set. No error in this package
// propagates as a fatal condition: the worst observable outcome is an empty
// or partially-populated list.
package reconcile

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/agentstation/trophycase/pkg/achievements"
	"github.com/agentstation/trophycase/pkg/errors"
	"github.com/agentstation/trophycase/pkg/logging"
	"github.com/agentstation/trophycase/pkg/parse"
	"github.com/agentstation/trophycase/pkg/sources"
)

// Writer persists a reconciled set at its canonical location. Implementations
// must serialize writes per canonical key.
type Writer interface {
	Persist(ctx context.Context, req *sources.Request, set *achievements.Set) error
}

// Engine pulls providers in priority order, merges their payloads, and hands
// the result to the writer.
type Engine struct {
	chain  *sources.Chain
	writer Writer
	group  singleflight.Group
}

// New creates an Engine over a provider chain. The writer may be nil, in
// which case results are returned without persistence.
func New(chain *sources.Chain, writer Writer) *Engine {
	return &Engine{
		chain:  chain,
		writer: writer,
	}
}

// Resolve reconciles the achievement set for one request. Concurrent calls
// for the same canonical key share a single execution. The returned set may
// be empty but is never nil; the returned error is only a context error.
func (e *Engine) Resolve(ctx context.Context, req *sources.Request) (*achievements.Set, error) {
	v, err, _ := e.group.Do(req.Identity.Key(), func() (any, error) {
		return e.resolve(ctx, req)
	})
	if err != nil {
		return achievements.NewSet(), err
	}
	return v.(*achievements.Set), nil
}

// resolve runs the provider chain once for a key.
func (e *Engine) resolve(ctx context.Context, req *sources.Request) (*achievements.Set, error) {
	log := logging.FromContext(ctx).With().
		Str("title", req.Title).
		Str("platform", req.Platform).
		Logger()

	set := achievements.NewSet()

	for _, src := range e.chain.List() {
		if err := ctx.Err(); err != nil {
			return set, errors.ErrCanceled
		}

		payloads, err := src.Fetch(ctx, req)
		if err != nil {
			// Source-unavailable is non-fatal; the chain proceeds.
			log.Debug().
				Err(err).
				Str("source", src.ID().String()).
				Msg("provider yielded no results")
			continue
		}

		for _, payload := range payloads {
			records := parse.Payload(payload.Shape, payload.Data)

			if payload.Complete {
				// Canonical fast path: the cache is already reconciled, no
				// other provider runs and nothing is rewritten. The provider
				// only emits a complete payload for a file that parsed.
				log.Debug().
					Str("origin", payload.Origin).
					Int("records", len(records)).
					Msg("canonical cache hit")
				return achievements.FromList(records), nil
			}
			if len(records) == 0 {
				continue
			}

			before := set.Len()
			mergeInto(set, records, payload.Trusted)
			log.Debug().
				Str("source", src.ID().String()).
				Str("origin", payload.Origin).
				Int("parsed", len(records)).
				Int("added", set.Len()-before).
				Msg("merged payload")
		}
	}

	e.persist(ctx, req, set)
	return set, nil
}

// persist hands the set to the writer. Failures are logged and swallowed;
// the in-memory result is still returned to the caller.
func (e *Engine) persist(ctx context.Context, req *sources.Request, set *achievements.Set) {
	if e.writer == nil || set.Len() == 0 {
		return
	}
	if err := e.writer.Persist(ctx, req, set); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("path", req.Identity.CanonicalFilePath).
			Msg("failed to persist reconciled set")
	}
}
