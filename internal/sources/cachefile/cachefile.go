// Package cachefile implements the highest-priority provider: the canonical
// reconciled cache at <account>/Achievements/<platform>/<title>/<title>.json.
// A hit short-circuits the rest of the chain.
package cachefile

import (
	"context"
	"os"

	"github.com/tidwall/gjson"

	"github.com/agentstation/trophycase/pkg/errors"
	"github.com/agentstation/trophycase/pkg/parse"
	"github.com/agentstation/trophycase/pkg/sources"
)

// Source reads the canonical cache file.
type Source struct{}

// New creates the canonical cache provider.
func New() *Source {
	return &Source{}
}

// ID returns the provider's identifier.
func (s *Source) ID() sources.ID {
	return sources.CanonicalCacheID
}

// Fetch reads the canonical file if present. The payload is marked Complete
// only when the file holds valid JSON, so a corrupt cache falls through to
// the rest of the chain instead of masking it.
func (s *Source) Fetch(_ context.Context, req *sources.Request) ([]sources.Payload, error) {
	path := req.Identity.CanonicalFilePath

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapSource(s.ID().String(), req.Title, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, errors.NewSourceError(s.ID().String(), req.Title,
			errors.NewParseError(parse.ShapeArray.String(), path, "invalid JSON in canonical cache", nil))
	}

	return []sources.Payload{{
		Data:     data,
		Shape:    parse.ShapeArray,
		Trusted:  true,
		Complete: true,
		Origin:   path,
	}}, nil
}
