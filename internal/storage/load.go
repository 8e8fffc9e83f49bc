package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/pool"
)

// LoadPool restores the pool from store. When nothing has been saved it
// falls back to a fresh pool of 1..fallbackMax (empty for 0). Any other
// load failure is returned.
func LoadPool(ctx context.Context, store domain.PoolStore, fallbackMax int, opts ...pool.Option) (*pool.Pool, error) {
	snap, err := store.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return pool.New(fallbackMax, opts...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading pool: %w", err)
	}
	return pool.Restore(snap, opts...), nil
}
