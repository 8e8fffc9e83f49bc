package domain

import "context"

// PoolStore persists pool snapshots. Load returns ErrNotFound when nothing
// has been saved yet.
type PoolStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// Announcer speaks text with a given voice. Implementations queue the
// request and return immediately; failures are theirs to log.
type Announcer interface {
	Announce(ctx context.Context, text string, voice VoiceLanguage)
	Prefetch(ctx context.Context, voice VoiceLanguage, texts ...string)
	// Interrupt drops queued announcements and cuts off the one playing.
	Interrupt()
}

// Cue identifies a fixed sound effect.
type Cue int

const (
	CueDraw Cue = iota
	CueUndo
	CueWin
	CueLoss
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueDraw:
		return "draw"
	case CueUndo:
		return "undo"
	case CueWin:
		return "win"
	case CueLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// CuePlayer plays sound cues without blocking the caller.
type CuePlayer interface {
	Play(cue Cue)
}

// IntentParser converts raw operator input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}
