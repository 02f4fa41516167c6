// Package emustore implements the emulation-layer store provider. It scans
// known save-store roots plus folders near the title's launch path for
// candidate files, then decides per candidate whether its path demonstrably
// references the title's app id. Only such confirmed candidates may add new
// records; the rest may only update existing entries. Candidates whose parent
// folder is a numeric id for a different title are skipped outright. The
// id-in-path rule is a heuristic, not a strict identity guarantee: it is
// known to be occasionally both over- and under-inclusive.
package emustore

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/trophycase/pkg/constants"
	"github.com/agentstation/trophycase/pkg/logging"
	"github.com/agentstation/trophycase/pkg/parse"
	"github.com/agentstation/trophycase/pkg/sources"
)

// Source scans emulation-layer save stores.
type Source struct {
	roots   []string
	appBase string
}

// Option configures the emulator store provider.
type Option func(*Source)

// WithRoots replaces the default store roots.
func WithRoots(roots []string) Option {
	return func(s *Source) {
		s.roots = roots
	}
}

// WithExtraRoots appends store roots, typically from a RootsConfig.
func WithExtraRoots(roots []string) Option {
	return func(s *Source) {
		s.roots = append(s.roots, roots...)
	}
}

// WithAppBase sets the application's own base directory, which is scanned
// like a store root.
func WithAppBase(dir string) Option {
	return func(s *Source) {
		s.appBase = dir
	}
}

// New creates the emulator store provider with the known product roots.
func New(opts ...Option) *Source {
	s := &Source{roots: defaultRoots()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the provider's identifier.
func (s *Source) ID() sources.ID {
	return sources.EmulatorStoreID
}

// Fetch builds the candidate-file list across all scan roots and reads each
// surviving candidate into a payload. Unreadable roots and files are skipped,
// never fatal.
func (s *Source) Fetch(ctx context.Context, req *sources.Request) ([]sources.Payload, error) {
	log := logging.FromContext(ctx)

	var payloads []sources.Payload
	for _, c := range s.candidates(req) {
		if err := ctx.Err(); err != nil {
			return payloads, err
		}

		verdict := classify(c.rel, req.AppID)
		if verdict == verdictForeign {
			log.Debug().Str("path", c.path).Msg("skipping candidate for a different title")
			continue
		}

		data, err := os.ReadFile(c.path)
		if err != nil || len(data) == 0 || len(data) > constants.MaxPayloadBytes {
			continue
		}

		payloads = append(payloads, sources.Payload{
			Data:    data,
			Shape:   parse.ShapeForFile(c.path, data),
			Trusted: verdict == verdictTrusted,
			Origin:  c.path,
		})
	}
	return payloads, nil
}

// candidate is one possible unlock-state file, with its path kept relative to
// the scan root so classification only sees segments below the root.
type candidate struct {
	path string
	rel  string
}

// candidates enumerates possible unlock-state files: exact filename matches
// directly under each root, app-id and per-title subfolders, and loose
// *.json files one level down.
func (s *Source) candidates(req *sources.Request) []candidate {
	scanRoots := make([]string, 0, len(s.roots)+3)
	scanRoots = append(scanRoots, s.roots...)
	if req.InstallPath != "" {
		scanRoots = append(scanRoots, req.InstallPath, filepath.Dir(req.InstallPath))
	}
	if s.appBase != "" {
		scanRoots = append(scanRoots, s.appBase)
	}

	var out []candidate
	seen := make(map[string]bool)
	add := func(root, path string) {
		if path == "" || seen[path] {
			return
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = path
			}
			seen[path] = true
			out = append(out, candidate{path: path, rel: rel})
		}
	}

	for _, root := range scanRoots {
		if _, err := os.Stat(root); err != nil {
			continue
		}

		subdirs := []string{root}
		if req.AppID != "" {
			subdirs = append(subdirs, filepath.Join(root, req.AppID))
		}
		subdirs = append(subdirs,
			filepath.Join(root, req.Identity.TitleFolder),
			filepath.Join(root, req.Title),
		)
		// Stores lay saves out as <root>/<appid>/; numeric children are
		// enumerated so mismatched ids can be classified and skipped.
		if entries, err := os.ReadDir(root); err == nil {
			for _, entry := range entries {
				if entry.IsDir() && isNumeric(entry.Name()) {
					subdirs = append(subdirs, filepath.Join(root, entry.Name()))
				}
			}
		}

		for _, dir := range subdirs {
			for _, name := range candidateFiles {
				add(root, filepath.Join(dir, name))
			}
			if matches, err := filepath.Glob(filepath.Join(dir, "*.json")); err == nil {
				for _, m := range matches {
					add(root, m)
				}
			}
		}
	}
	return out
}

// verdict is the trust classification of one candidate path.
type verdict int

const (
	verdictUntrusted verdict = iota
	verdictTrusted
	verdictForeign
)

// classify inspects the candidate's path segments. A segment equal to the
// title's app id confirms the candidate; a purely numeric parent segment that
// differs marks it as belonging to another title.
func classify(path, appID string) verdict {
	dir := filepath.Dir(path)
	segments := strings.Split(dir, string(filepath.Separator))

	for i := len(segments) - 1; i >= 0; i-- {
		segment := segments[i]
		if segment == "" {
			continue
		}
		if appID != "" && segment == appID {
			return verdictTrusted
		}
		if isNumeric(segment) {
			// Numeric folder naming a different id: this save data belongs
			// to some other title.
			if appID != "" && segment != appID {
				return verdictForeign
			}
			return verdictUntrusted
		}
	}
	return verdictUntrusted
}

// isNumeric reports whether a path segment is digits only.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
