// Package save persists reconciled achievement sets at their canonical
// paths. Writes are serialized per canonical key and staged through a
// temporary file so a partial write never corrupts a previously-good cache.
// Strict cross-process atomicity is not attempted; write-then-rename is the
// documented choice.
package save

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/agentstation/trophycase/pkg/achievements"
	"github.com/agentstation/trophycase/pkg/constants"
	"github.com/agentstation/trophycase/pkg/errors"
	"github.com/agentstation/trophycase/pkg/logging"
	"github.com/agentstation/trophycase/pkg/sources"
)

// Writer writes canonical cache files. The zero value is not usable; use
// NewWriter.
type Writer struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{
		locks: make(map[string]*sync.Mutex),
	}
}

// keyLock returns the mutex serializing writes for one canonical key.
// Cross-title requests stay fully independent.
func (w *Writer) keyLock(key string) *sync.Mutex {
	w.mu.Lock()
	defer w.mu.Unlock()
	lock, ok := w.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		w.locks[key] = lock
	}
	return lock
}

// Persist writes the set as an ordered JSON array at the request's canonical
// path, creating directories as needed. The returned error is informational:
// callers log it and still hand the in-memory set back to their caller.
func (w *Writer) Persist(ctx context.Context, req *sources.Request, set *achievements.Set) error {
	if set == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return errors.ErrCanceled
	}

	lock := w.keyLock(req.Identity.Key())
	lock.Lock()
	defer lock.Unlock()

	// Cancellation between lock acquisition and write would otherwise risk
	// replacing a good file mid-shutdown.
	if err := ctx.Err(); err != nil {
		return errors.ErrCanceled
	}

	path := req.Identity.CanonicalFilePath
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	data, err := json.MarshalIndent(set.List(), "", "  ")
	if err != nil {
		return errors.WrapIO("write", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.WrapIO("write", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("close", tmpName, err)
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("path", tmpName).Msg("chmod failed")
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("rename", path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", path).
		Int("records", set.Len()).
		Msg("persisted achievement cache")
	return nil
}
