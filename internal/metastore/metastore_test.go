package metastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/trophycase/pkg/errors"
)

func TestGetMissingRecord(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.Get("PC", "Portal 2")
	assert.True(t, errors.IsNotFound(err))
}

func TestPutThenGet(t *testing.T) {
	store := New(t.TempDir())

	want := Record{
		AppID:       "620",
		InstallPath: "/games/portal2",
		ScrapeURL:   "https://example.com/portal2/achievements",
	}
	require.NoError(t, store.Put("PC", "Portal 2", want))

	got, err := store.Get("PC", "Portal 2")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPathUsesSanitizedSegments(t *testing.T) {
	root := t.TempDir()
	store := New(root)
	require.NoError(t, store.Put("PC", "Call of Duty: Black Ops 2", Record{AppID: "202990"}))

	want := filepath.Join(root, "Metadata", "PC (Microsoft Windows)", "Call of Duty - Black Ops 2.json")
	_, err := os.Stat(want)
	assert.NoError(t, err)
}

func TestGetMalformedRecord(t *testing.T) {
	root := t.TempDir()
	store := New(root)

	dir := filepath.Join(root, "Metadata", "PC (Microsoft Windows)")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.json"), []byte("{nope"), 0o644))

	_, err := store.Get("PC", "Broken")
	assert.Error(t, err)
	assert.False(t, errors.IsNotFound(err))
}
