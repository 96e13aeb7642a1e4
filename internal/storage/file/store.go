// Package file persists state as one JSON document per key inside a
// directory, the closest server-side analog of the browser's local storage.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/svaldez/stockwise/internal/storage"
)

type Store struct {
	fs  afero.Fs
	dir string
}

var _ storage.Store = (*Store)(nil)

// New opens a store rooted at dir on the OS filesystem, creating it if
// needed.
func New(dir string) (*Store, error) {
	return NewWithFs(afero.NewOsFs(), dir)
}

// NewWithFs is New with an injectable filesystem, used by tests with
// afero.MemMapFs.
func NewWithFs(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

func (s *Store) path(key string) string {
	// keys are fixed constants, but keep them path-safe anyway
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	raw, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return raw, nil
}

// Put writes through a temp file and renames so a crash mid-write never
// leaves a truncated document behind.
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	dst := s.path(key)
	tmp := dst + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, value, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, dst); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
