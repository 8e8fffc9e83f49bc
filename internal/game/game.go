// Package game ties the number pool to persistence, voice announcements
// and sound cues. A Game is driven by a single goroutine (the REPL loop);
// it is not safe for concurrent use.
package game

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/logger"
	"github.com/hammamikhairi/bingoxdraw/internal/pool"
	"github.com/hammamikhairi/bingoxdraw/internal/speech"
)

// Option configures the game.
type Option func(*Game)

// WithAnnouncer sets the speech announcer. Defaults to a no-op.
func WithAnnouncer(a domain.Announcer) Option {
	return func(g *Game) {
		g.announcer = a
	}
}

// WithCues sets the sound cue player. Defaults to silence.
func WithCues(c domain.CuePlayer) Option {
	return func(g *Game) {
		g.cues = c
	}
}

// WithCatalog sets the voice catalog. Defaults to the built-in one.
func WithCatalog(c *speech.Catalog) Option {
	return func(g *Game) {
		g.catalog = c
	}
}

// WithPoolOptions passes options to pools created by Create.
func WithPoolOptions(opts ...pool.Option) Option {
	return func(g *Game) {
		g.poolOpts = opts
	}
}

// Game owns the pool and the side effects around it. Every mutation
// completes before its announcement or cue is issued, and a failing side
// effect never undoes or repeats a mutation.
type Game struct {
	pool      *pool.Pool
	store     domain.PoolStore
	announcer domain.Announcer
	cues      domain.CuePlayer
	catalog   *speech.Catalog
	voice     domain.VoiceLanguage
	poolOpts  []pool.Option
	log       *logger.Logger
}

// New creates a game around an existing pool.
func New(p *pool.Pool, store domain.PoolStore, log *logger.Logger, opts ...Option) *Game {
	g := &Game{
		pool:      p,
		store:     store,
		announcer: speech.NewNoOp(log),
		cues:      silentCues{},
		log:       log,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.catalog == nil {
		g.catalog = speech.BuiltinCatalog()
	}
	g.voice = g.catalog.Default()
	return g
}

type silentCues struct{}

func (silentCues) Play(domain.Cue) {}

// Draw picks a random available number. Returns ErrPoolEmpty, with no
// cue and no announcement, when nothing is left.
func (g *Game) Draw(ctx context.Context) (int, error) {
	if g.pool.Remaining() == 0 {
		g.log.Info("draw requested on empty pool")
		return 0, domain.ErrPoolEmpty
	}

	n, _ := g.pool.Draw()
	g.log.Info("drew %d (%d left)", n, g.pool.Remaining())

	g.cues.Play(domain.CueDraw)
	g.announcer.Announce(ctx, speech.LineDrawn(g.voice.Text, n), g.voice)
	return n, nil
}

// Undo returns the most recent draw to the available numbers. Pending
// speech is dropped so a cancelled number is never read out.
func (g *Game) Undo(ctx context.Context) (int, error) {
	n, ok := g.pool.UndoLastDraw()
	if !ok {
		g.log.Info("undo requested with no draws")
		return 0, domain.ErrNothingToUndo
	}
	g.announcer.Interrupt()
	g.cues.Play(domain.CueUndo)
	g.log.Info("cancelled draw of %d", n)
	return n, nil
}

// Add puts a number into the available set. Numbers already in play are
// accepted and become duplicates.
func (g *Game) Add(ctx context.Context, n int) {
	g.pool.Add(n)
	g.log.Info("added %d", n)
	g.announcer.Prefetch(ctx, g.voice, speech.LineDrawn(g.voice.Text, n))
}

// CheckResult is the outcome of checking a card's numbers.
type CheckResult struct {
	Numbers  []int
	Statuses []domain.Status
	Bingo    bool // every number has been drawn
}

// Check reports which numbers have been drawn and plays the win or loss
// cue. An empty list is rejected with ErrEmptyList.
func (g *Game) Check(ctx context.Context, numbers []int) (*CheckResult, error) {
	if len(numbers) == 0 {
		return nil, domain.ErrEmptyList
	}

	statuses, all := g.pool.CheckStatus(numbers)
	if all {
		g.cues.Play(domain.CueWin)
	} else {
		g.cues.Play(domain.CueLoss)
	}
	g.log.Info("checked %v: bingo=%v", numbers, all)

	return &CheckResult{Numbers: numbers, Statuses: statuses, Bingo: all}, nil
}

// Create replaces the pool with 1..maxNumber, clears the history and saves
// immediately. Announcements of the old game are dropped.
func (g *Game) Create(ctx context.Context, maxNumber int) error {
	if maxNumber < 0 {
		return fmt.Errorf("%w: max must not be negative, got %d", domain.ErrInvalidNumber, maxNumber)
	}
	g.pool = pool.New(maxNumber, g.poolOpts...)
	g.log.Info("created pool 1..%d", maxNumber)
	g.announcer.Interrupt()

	if err := g.Save(ctx); err != nil {
		return err
	}
	g.Warm(ctx)
	return nil
}

// Save writes the current pool to the store.
func (g *Game) Save(ctx context.Context) error {
	if err := g.store.Save(ctx, g.pool.Snapshot()); err != nil {
		return fmt.Errorf("saving pool: %w", err)
	}
	g.log.Debug("pool saved (available=%d, drawn=%d)", g.pool.Remaining(), g.pool.DrawnCount())
	return nil
}

// SetVoice switches the announcement language by label or 1-based index.
func (g *Game) SetVoice(ctx context.Context, label string) (domain.VoiceLanguage, error) {
	v, err := g.catalog.Lookup(label)
	if err != nil {
		return domain.VoiceLanguage{}, err
	}
	g.voice = v
	g.log.Info("voice set to %s (%s)", v.Label, v.Voice)
	g.Warm(ctx)
	return v, nil
}

// Warm prefetches announcements for every number still available in the
// current voice.
func (g *Game) Warm(ctx context.Context) {
	g.announcer.Prefetch(ctx, g.voice, speech.DrawLines(g.voice.Text, g.pool.Available())...)
}

// Voice returns the current announcement language.
func (g *Game) Voice() domain.VoiceLanguage { return g.voice }

// Catalog returns the voice catalog.
func (g *Game) Catalog() *speech.Catalog { return g.catalog }

// Available returns the undrawn numbers.
func (g *Game) Available() []int { return g.pool.Available() }

// Drawn returns the draw history, oldest first.
func (g *Game) Drawn() []int { return g.pool.Drawn() }

// Last returns the most recent draw.
func (g *Game) Last() (int, bool) { return g.pool.Last() }
