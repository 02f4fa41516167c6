// Package metastore reads and writes the per-title metadata records stored
// under <account>/Metadata/. A record holds external identifiers (the
// remote-service app id, a scrape URL, the install path) used to drive and
// trust providers.
package metastore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/agentstation/trophycase/pkg/constants"
	"github.com/agentstation/trophycase/pkg/errors"
	"github.com/agentstation/trophycase/pkg/identity"
)

// Record is one title's metadata.
type Record struct {
	// AppID is the remote-service numeric identifier, stored as text.
	AppID string `json:"appid,omitempty"`

	// InstallPath is the directory the title launches from.
	InstallPath string `json:"install_path,omitempty"`

	// ScrapeURL, when set, skips page discovery for the scrape provider.
	ScrapeURL string `json:"scrape_url,omitempty"`
}

// Store reads and writes metadata records under one account root.
type Store struct {
	root string
}

// New creates a Store for an account root.
func New(accountRoot string) *Store {
	return &Store{root: accountRoot}
}

// path is <account>/Metadata/<platformFolder>/<titleFolder>.json.
func (s *Store) path(platform, title string) string {
	return filepath.Join(
		s.root,
		constants.MetadataDir,
		identity.PlatformFolder(platform),
		identity.Sanitize(title)+constants.CacheExt,
	)
}

// Get returns the metadata record for a title. A missing record is returned
// as a zero Record with ErrNotFound.
func (s *Store) Get(platform, title string) (Record, error) {
	var record Record

	data, err := os.ReadFile(s.path(platform, title))
	if err != nil {
		if os.IsNotExist(err) {
			return record, errors.ErrNotFound
		}
		return record, errors.WrapIO("read", s.path(platform, title), err)
	}

	if err := json.Unmarshal(data, &record); err != nil {
		return record, errors.WrapParse("keyed", s.path(platform, title), err)
	}
	return record, nil
}

// Put writes the metadata record for a title, creating directories as needed.
func (s *Store) Put(platform, title string, record Record) error {
	path := s.path(platform, title)
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
