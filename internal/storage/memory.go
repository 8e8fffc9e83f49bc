// Package storage provides pool snapshot persistence.
package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/logger"
)

// Compile-time interface check.
var _ domain.PoolStore = (*MemoryStore)(nil)

// MemoryStore keeps the last saved snapshot in memory. Used by tests and
// when saving is disabled. Safe for concurrent access.
type MemoryStore struct {
	mu    sync.RWMutex
	snap  *domain.Snapshot
	saves int
	log   *logger.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{log: log}
}

// Save stores a copy of the snapshot, replacing any previous one.
func (s *MemoryStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("memory store: saving (available=%d, drawn=%d)", len(snap.Available), len(snap.Drawn))
	s.snap = cloneSnapshot(snap)
	s.saves++
	return nil
}

// Load returns a copy of the last saved snapshot, or ErrNotFound.
func (s *MemoryStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap == nil {
		s.log.Debug("memory store: nothing saved yet")
		return nil, domain.ErrNotFound
	}
	return cloneSnapshot(s.snap), nil
}

// Saves returns how many times Save has been called.
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

func cloneSnapshot(snap *domain.Snapshot) *domain.Snapshot {
	return &domain.Snapshot{
		Available: slices.Clone(snap.Available),
		Drawn:     slices.Clone(snap.Drawn),
	}
}
