// Package speech announces drawn numbers through Azure text-to-speech.
package speech

import (
	"context"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/logger"
)

// Compile-time interface check.
var _ domain.Announcer = (*NoOp)(nil)

// NoOp is the announcer used when voice is disabled or not configured.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a no-op announcer.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Announce only logs what would have been said.
func (n *NoOp) Announce(ctx context.Context, text string, voice domain.VoiceLanguage) {
	n.log.Debug("speech no-op: would say %q (voice=%s)", text, voice.Voice)
}

// Prefetch does nothing.
func (n *NoOp) Prefetch(ctx context.Context, voice domain.VoiceLanguage, texts ...string) {}

// Interrupt does nothing.
func (n *NoOp) Interrupt() {}
