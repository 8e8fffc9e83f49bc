// Package audio owns the process-wide output device. Speech and sound
// cues share it: oto allows a single context per process.
package audio

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/bingoxdraw/internal/logger"
)

// Output format shared by TTS audio and generated cues. Matches Azure's
// riff-24khz-16bit-mono-pcm.
const (
	SampleRate   = 24000
	ChannelCount = 1
	BitDepth     = 16
)

// Device plays PCM data via oto. Several sounds may play at once; oto
// mixes them.
type Device struct {
	ctx    *oto.Context
	log    *logger.Logger
	mu     sync.Mutex
	active map[*oto.Player]struct{}
}

// NewDevice initializes the system audio context. Returns an error if the
// audio device is unavailable.
func NewDevice(log *logger.Logger) (*Device, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("audio device initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Device{ctx: ctx, log: log, active: make(map[*oto.Player]struct{})}, nil
}

// PlayWAV strips the RIFF header and plays the PCM payload at full
// volume. Blocks until playback finishes or Stop is called.
func (d *Device) PlayWAV(wavData []byte) error {
	pcm, err := ExtractPCM(wavData)
	if err != nil {
		return err
	}
	return d.Play(pcm, 1)
}

// Play plays raw signed 16-bit LE mono PCM at the given volume (0..1).
// Blocks until playback finishes or Stop is called.
func (d *Device) Play(pcm []byte, volume float64) error {
	player := d.ctx.NewPlayer(bytes.NewReader(pcm))
	player.SetVolume(volume)

	d.mu.Lock()
	d.active[player] = struct{}{}
	d.mu.Unlock()

	player.Play()
	d.log.Debug("audio device: playing %d bytes of PCM (volume=%.2f)", len(pcm), volume)

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	d.mu.Lock()
	delete(d.active, player)
	d.mu.Unlock()

	return player.Close()
}

// Stop interrupts everything currently playing. Safe to call concurrently
// and when nothing is playing.
func (d *Device) Stop() {
	d.mu.Lock()
	players := make([]*oto.Player, 0, len(d.active))
	for p := range d.active {
		players = append(players, p)
	}
	d.mu.Unlock()

	for _, p := range players {
		p.Pause()
	}
	if len(players) > 0 {
		d.log.Debug("audio device: interrupted %d sound(s)", len(players))
	}
}
