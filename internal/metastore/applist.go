package metastore

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/agentstation/trophycase/internal/transport"
	"github.com/agentstation/trophycase/pkg/constants"
	"github.com/agentstation/trophycase/pkg/errors"
)

// AppListURL is the public endpoint listing every app id and name. The
// endpoint takes no credentials.
const AppListURL = "https://api.steampowered.com/ISteamApps/GetAppList/v2/"

// appListFile is the on-disk index name under <account>/Metadata/.
const appListFile = "applist.csv"

// AppIndex maps normalized display names to app ids. It backs app-id lookup
// when a title's metadata record lacks one. Matching is exact,
// case-insensitive; no fuzzy matching is attempted.
type AppIndex struct {
	byName map[string]string
}

// Lookup returns the app id for a display name.
func (idx *AppIndex) Lookup(title string) (string, bool) {
	if idx == nil {
		return "", false
	}
	id, ok := idx.byName[strings.ToLower(strings.TrimSpace(title))]
	return id, ok
}

// Len returns the number of indexed names.
func (idx *AppIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.byName)
}

// indexPath is where the CSV index lives for this account.
func (s *Store) indexPath() string {
	return filepath.Join(s.root, constants.MetadataDir, appListFile)
}

// LoadAppIndex reads the CSV index written by RefreshAppIndex. A missing
// index returns ErrNotFound.
func (s *Store) LoadAppIndex() (*AppIndex, error) {
	f, err := os.Open(s.indexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrNotFound
		}
		return nil, errors.WrapIO("read", s.indexPath(), err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	idx := &AppIndex{byName: make(map[string]string)}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("freetext", s.indexPath(), err)
	}
	for i, row := range rows {
		if i == 0 && row[0] == "AppId" {
			continue // header
		}
		name := strings.ToLower(strings.TrimSpace(row[1]))
		if name == "" {
			continue
		}
		idx.byName[name] = row[0]
	}
	return idx, nil
}

// RefreshAppIndex fetches the public app list with bounded retry and rewrites
// the CSV index. An empty url falls back to AppListURL.
func (s *Store) RefreshAppIndex(ctx context.Context, client *transport.Client, url string) (*AppIndex, error) {
	if url == "" {
		url = AppListURL
	}

	body, err := client.GetWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}

	apps := gjson.GetBytes(body, "applist.apps")
	if !apps.IsArray() {
		return nil, errors.NewParseError("array", url, "missing applist.apps", nil)
	}

	idx := &AppIndex{byName: make(map[string]string)}
	var rows [][]string
	rows = append(rows, []string{"AppId", "Name"})

	apps.ForEach(func(_, app gjson.Result) bool {
		id := app.Get("appid").Int()
		name := strings.TrimSpace(app.Get("name").String())
		if id <= 0 || name == "" {
			return true
		}
		idStr := strconv.FormatInt(id, 10)
		idx.byName[strings.ToLower(name)] = idStr
		rows = append(rows, []string{idStr, name})
		return true
	})

	if err := s.writeIndex(rows); err != nil {
		return nil, err
	}
	return idx, nil
}

// writeIndex writes the CSV rows under Metadata/.
func (s *Store) writeIndex(rows [][]string) error {
	path := s.indexPath()
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		_ = f.Close()
		return errors.WrapIO("write", path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = f.Close()
		return errors.WrapIO("write", path, err)
	}
	return errors.WrapIO("close", path, f.Close())
}
