// Package legacy implements the provider for the older per-platform cache
// layout: one JSON object per platform, keyed by title, kept at
// <account>/Achievements/<platformFolder>.json. It only matters when a title
// has no canonical file yet; the chain's canonical short-circuit keeps it
// from running otherwise.
package legacy

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/agentstation/trophycase/pkg/constants"
	"github.com/agentstation/trophycase/pkg/errors"
	"github.com/agentstation/trophycase/pkg/parse"
	"github.com/agentstation/trophycase/pkg/sources"
)

// Source reads the per-platform legacy store.
type Source struct{}

// New creates the legacy cache provider.
func New() *Source {
	return &Source{}
}

// ID returns the provider's identifier.
func (s *Source) ID() sources.ID {
	return sources.LegacyCacheID
}

// Fetch looks the title up in the platform's legacy object. Title keys in old
// files predate sanitization, so both the raw and sanitized title are tried,
// case-insensitively.
func (s *Source) Fetch(_ context.Context, req *sources.Request) ([]sources.Payload, error) {
	path := filepath.Join(
		req.AccountRoot,
		constants.AchievementsDir,
		req.Identity.PlatformFolder+constants.CacheExt,
	)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapSource(s.ID().String(), req.Title, err)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, errors.NewSourceError(s.ID().String(), req.Title,
			errors.NewParseError(parse.ShapeKeyed.String(), path, "legacy store is not an object", nil))
	}

	entry := lookupTitle(doc, req.Title, req.Identity.TitleFolder)
	if !entry.Exists() {
		return nil, nil
	}

	return []sources.Payload{{
		Data:    []byte(entry.Raw),
		Shape:   parse.ShapeArray,
		Trusted: true, // an earlier reconciliation of this exact title
		Origin:  path,
	}}, nil
}

// lookupTitle finds the title's entry under any of its historical keys.
func lookupTitle(doc gjson.Result, keys ...string) gjson.Result {
	var found gjson.Result
	doc.ForEach(func(key, value gjson.Result) bool {
		for _, candidate := range keys {
			if strings.EqualFold(strings.TrimSpace(key.String()), strings.TrimSpace(candidate)) {
				found = value
				return false
			}
		}
		return true
	})
	return found
}
