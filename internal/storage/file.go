package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/logger"
)

// DefaultDataPath is where the pool is saved unless -data says otherwise.
const DefaultDataPath = "user_files/bingo_data.json"

// Compile-time interface check.
var _ domain.PoolStore = (*FileStore)(nil)

// FileStore persists the pool as a single JSON document. Each Save
// replaces the whole file.
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load reads the snapshot. A missing file returns ErrNotFound; an
// unreadable document returns an error wrapping ErrCorruptSnapshot.
func (s *FileStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("file store: %s does not exist", s.path)
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", s.path, domain.ErrCorruptSnapshot, err)
	}

	s.log.Debug("file store: loaded %s (available=%d, drawn=%d)", s.path, len(snap.Available), len(snap.Drawn))
	return &snap, nil
}

// Save writes the snapshot to a temp file next to the target and renames
// it into place. Missing parent directories are created.
func (s *FileStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	s.log.Debug("file store: saved %s (available=%d, drawn=%d)", s.path, len(snap.Available), len(snap.Drawn))
	return nil
}
