// Package cue plays the short sound effects that accompany draws, undos
// and checks.
package cue

import (
	"math/rand/v2"
	"sync"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.CuePlayer = (*Player)(nil)
	_ domain.CuePlayer = Silent{}
)

// Sink is the audio output a Player writes to. *audio.Device satisfies it.
type Sink interface {
	Play(pcm []byte, volume float64) error
}

// sound is a pre-rendered cue.
type sound struct {
	pcm    []byte
	volume float64
}

// Player renders every cue once at construction and plays them on
// background goroutines so the caller never waits for audio.
type Player struct {
	sink   Sink
	log    *logger.Logger
	sounds map[domain.Cue][]sound
	wg     sync.WaitGroup
}

// NewPlayer pre-renders the cues for sink. Draw has two variants picked at
// random and plays quieter than the rest.
func NewPlayer(sink Sink, log *logger.Logger) *Player {
	return &Player{
		sink: sink,
		log:  log,
		sounds: map[domain.Cue][]sound{
			domain.CueDraw: {
				{pcm: render(drawChime), volume: 0.1},
				{pcm: render(drawChimeAlt), volume: 0.1},
			},
			domain.CueUndo: {{pcm: render(undoBlip), volume: 0.6}},
			domain.CueWin:  {{pcm: render(winFanfare), volume: 0.8}},
			domain.CueLoss: {{pcm: render(lossSlide), volume: 0.6}},
		},
	}
}

// Play starts the cue in the background. Playback errors are logged.
func (p *Player) Play(c domain.Cue) {
	variants := p.sounds[c]
	if len(variants) == 0 {
		p.log.Warn("cue: no sound for %s", c)
		return
	}
	s := variants[rand.IntN(len(variants))]

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.sink.Play(s.pcm, s.volume); err != nil {
			p.log.Error("cue: playing %s: %v", c, err)
		}
	}()
	p.log.Debug("cue: %s", c)
}

// Wait blocks until every started cue has finished playing.
func (p *Player) Wait() { p.wg.Wait() }

// Silent is the cue player used when sound is disabled or no audio device
// is available.
type Silent struct{}

// Play does nothing.
func (Silent) Play(domain.Cue) {}
