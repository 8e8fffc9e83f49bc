package cue

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hammamikhairi/bingoxdraw/internal/audio"
)

// note is one tone of a cue. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// fadeLen is the attack/release ramp applied to every note to avoid clicks.
const fadeLen = 4 * time.Millisecond

// render synthesizes a note sequence into signed 16-bit LE mono PCM at the
// audio device's sample rate.
func render(notes []note) []byte {
	var total int
	for _, n := range notes {
		total += samples(n.dur)
	}
	out := make([]byte, 0, total*2)

	fade := samples(fadeLen)
	for _, n := range notes {
		count := samples(n.dur)
		for i := range count {
			var v float64
			if n.freq > 0 {
				v = math.Sin(2 * math.Pi * n.freq * float64(i) / audio.SampleRate)
				v *= envelope(i, count, fade)
			}
			out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*0.8*math.MaxInt16)))
		}
	}
	return out
}

func samples(d time.Duration) int {
	return int(d.Seconds() * audio.SampleRate)
}

func envelope(i, count, fade int) float64 {
	switch {
	case fade <= 0:
		return 1
	case i < fade:
		return float64(i) / float64(fade)
	case i >= count-fade:
		return float64(count-1-i) / float64(fade)
	default:
		return 1
	}
}

// Pitches used by the cues (equal temperament, A4 = 440 Hz).
const (
	d4 = 293.66
	f4 = 349.23
	a4 = 440.00
	c5 = 523.25
	e5 = 659.25
	g5 = 783.99
	c6 = 1046.50
	e6 = 1318.51
	g6 = 1567.98
)

const (
	short = 70 * time.Millisecond
	mid   = 140 * time.Millisecond
	long  = 380 * time.Millisecond
)

var (
	drawChime    = []note{{c6, short}, {e6, mid}}
	drawChimeAlt = []note{{e6, short}, {g6, mid}}
	undoBlip     = []note{{g5, short}, {c5, mid}}
	winFanfare   = []note{{c5, mid}, {e5, mid}, {g5, mid}, {0, short}, {c6, long}}
	lossSlide    = []note{{a4, mid}, {f4, mid}, {d4, long}}
)
