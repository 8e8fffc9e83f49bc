// Package pool implements the bingo number pool: the undrawn numbers and
// the chronological history of drawn ones.
package pool

import (
	"math/rand/v2"
	"slices"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
)

// Option configures a Pool.
type Option func(*Pool)

// WithRand sets the random source used by Draw. Tests pass a seeded
// source to get a reproducible draw order.
func WithRand(r *rand.Rand) Option {
	return func(p *Pool) {
		p.rng = r
	}
}

// Pool holds two disjoint sequences: available numbers, kept sorted after
// every insert, and drawn numbers in the order they came out.
//
// A Pool is not safe for concurrent use. The owning event loop is its
// only writer.
type Pool struct {
	available []int
	drawn     []int
	rng       *rand.Rand
}

// New creates a pool holding 1..maxNumber. A maxNumber of zero or less
// yields an empty pool.
func New(maxNumber int, opts ...Option) *Pool {
	p := newPool(opts)
	if maxNumber > 0 {
		p.available = make([]int, maxNumber)
		for i := range p.available {
			p.available[i] = i + 1
		}
	}
	return p
}

// Restore rebuilds a pool from a saved snapshot. Both slices are copied;
// available keeps its saved order.
func Restore(snap *domain.Snapshot, opts ...Option) *Pool {
	p := newPool(opts)
	if snap != nil {
		p.available = slices.Clone(snap.Available)
		p.drawn = slices.Clone(snap.Drawn)
	}
	return p
}

func newPool(opts []Option) *Pool {
	p := &Pool{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pool) intN(n int) int {
	if p.rng != nil {
		return p.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Draw removes a uniformly random number from the available set and
// appends it to the history. ok is false when nothing is left.
func (p *Pool) Draw() (n int, ok bool) {
	if len(p.available) == 0 {
		return 0, false
	}
	idx := p.intN(len(p.available))
	n = p.available[idx]
	p.available = slices.Delete(p.available, idx, idx+1)
	p.drawn = append(p.drawn, n)
	return n, true
}

// UndoLastDraw moves the most recent draw back into the available set.
// ok is false when nothing has been drawn.
func (p *Pool) UndoLastDraw() (n int, ok bool) {
	if len(p.drawn) == 0 {
		return 0, false
	}
	last := len(p.drawn) - 1
	n = p.drawn[last]
	p.drawn = p.drawn[:last]
	p.insertAvailable(n)
	return n, true
}

// Add puts n into the available set. Duplicates are accepted: a number
// already available or already drawn can be added again.
func (p *Pool) Add(n int) {
	p.insertAvailable(n)
}

func (p *Pool) insertAvailable(n int) {
	p.available = append(p.available, n)
	slices.Sort(p.available)
}

// CheckStatus reports, position by position, whether each number has been
// drawn. allDrawn is true when every number was; an empty input is
// vacuously all drawn, so callers should reject it first.
func (p *Pool) CheckStatus(numbers []int) (statuses []domain.Status, allDrawn bool) {
	statuses = make([]domain.Status, len(numbers))
	allDrawn = true
	for i, n := range numbers {
		if slices.Contains(p.drawn, n) {
			statuses[i] = domain.Drawn
		} else {
			statuses[i] = domain.NotDrawn
			allDrawn = false
		}
	}
	return statuses, allDrawn
}

// Available returns a copy of the undrawn numbers.
func (p *Pool) Available() []int { return slices.Clone(p.available) }

// Drawn returns a copy of the draw history, oldest first.
func (p *Pool) Drawn() []int { return slices.Clone(p.drawn) }

// Last returns the most recently drawn number.
func (p *Pool) Last() (int, bool) {
	if len(p.drawn) == 0 {
		return 0, false
	}
	return p.drawn[len(p.drawn)-1], true
}

// Remaining returns how many numbers are left to draw.
func (p *Pool) Remaining() int { return len(p.available) }

// DrawnCount returns how many numbers have been drawn.
func (p *Pool) DrawnCount() int { return len(p.drawn) }

// Snapshot captures the pool for persistence.
func (p *Pool) Snapshot() *domain.Snapshot {
	// Non-nil slices so an empty pool encodes as [] rather than null.
	return &domain.Snapshot{
		Available: append([]int{}, p.available...),
		Drawn:     append([]int{}, p.drawn...),
	}
}
