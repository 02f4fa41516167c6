// Package heuristic implements the last-resort provider: a bounded walk of
// the title's install tree (and a few parent levels, plus subfolders named
// after cracking/distribution groups) looking for files that might hold
// unlock state. Nothing found here is ever trusted to add new records; a
// heuristic hit may only update entries the trusted chain already produced.
package heuristic

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/agentstation/trophycase/pkg/constants"
	"github.com/agentstation/trophycase/pkg/logging"
	"github.com/agentstation/trophycase/pkg/parse"
	"github.com/agentstation/trophycase/pkg/sources"
)

// groupTokens mark sibling folders worth descending into when walking parent
// levels; distribution groups tend to keep save data beside the install dir.
var groupTokens = []string{
	"codex", "skidrow", "plaza", "cpy", "goldberg", "empress", "rune",
	"3dm", "reloaded", "fitgirl", "onlinefix", "steam_settings", "save",
}

// nameTokens gate which discovered non-JSON files get read at all.
var nameTokens = []string{"ach", "stat", "trophy", "unlock"}

// walkExtensions are the file types the walk inspects.
var walkExtensions = map[string]bool{
	".json": true, ".ini": true, ".txt": true,
	".log": true, ".dat": true, ".xml": true,
}

// Source walks the install tree.
type Source struct{}

// New creates the heuristic discovery provider.
func New() *Source {
	return &Source{}
}

// ID returns the provider's identifier.
func (s *Source) ID() sources.ID {
	return sources.HeuristicID
}

// Fetch walks the scan roots and reads every plausible file into an untrusted
// payload. Directories that raise access errors are skipped without aborting
// the scan.
func (s *Source) Fetch(ctx context.Context, req *sources.Request) ([]sources.Payload, error) {
	if req.InstallPath == "" {
		return nil, nil
	}

	var payloads []sources.Payload
	for _, root := range s.roots(req.InstallPath) {
		if err := ctx.Err(); err != nil {
			return payloads, err
		}
		payloads = append(payloads, walkRoot(ctx, root)...)
	}
	return payloads, nil
}

// roots returns the install dir plus group-token subfolders of a few parent
// levels. Parents themselves are not walked wholesale; that would sweep in
// unrelated titles installed beside this one.
func (s *Source) roots(installPath string) []string {
	roots := []string{installPath}

	parent := installPath
	for range constants.MaxParentLevels {
		next := filepath.Dir(parent)
		if next == parent {
			break
		}
		parent = next

		entries, err := os.ReadDir(parent)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := strings.ToLower(entry.Name())
			for _, token := range groupTokens {
				if strings.Contains(name, token) {
					roots = append(roots, filepath.Join(parent, entry.Name()))
					break
				}
			}
		}
	}
	return roots
}

// walkRoot walks one root to the depth limit, collecting payloads.
func walkRoot(ctx context.Context, root string) []sources.Payload {
	var payloads []sources.Payload

	_ = godirwalk.Walk(root, &godirwalk.Options{
		Unsorted: true,
		Callback: func(path string, de *godirwalk.Dirent) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if de.IsDir() {
				if depth(root, path) > constants.MaxWalkDepth {
					return filepath.SkipDir
				}
				return nil
			}
			if !relevantFile(path) {
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil || len(data) == 0 || len(data) > constants.MaxPayloadBytes {
				return nil
			}

			payloads = append(payloads, sources.Payload{
				Data:    data,
				Shape:   parse.ShapeForFile(path, data),
				Trusted: false,
				Origin:  path,
			})
			return nil
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			logging.FromContext(ctx).Debug().Err(err).Str("path", path).Msg("skipping unreadable path")
			return godirwalk.SkipNode
		},
	})

	return payloads
}

// depth counts directory levels between root and path.
func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// relevantFile applies the extension and name gates. Any JSON file qualifies;
// other extensions must also carry an achievement-ish name token.
func relevantFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if !walkExtensions[ext] {
		return false
	}
	if ext == ".json" {
		return true
	}
	name := strings.ToLower(filepath.Base(path))
	for _, token := range nameTokens {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}
