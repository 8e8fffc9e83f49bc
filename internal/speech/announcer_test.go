package speech

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/logger"
)

type fakeSynth struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (f *fakeSynth) Synthesize(ctx context.Context, text, voice, locale string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, voice+"|"+text)
	if f.fail[text] {
		return nil, errors.New("synthesis down")
	}
	return []byte(voice + "|" + text), nil
}

func (f *fakeSynth) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeOutput struct {
	mu     sync.Mutex
	played []string
	stops  int
}

func (f *fakeOutput) PlayWAV(wav []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, string(wav))
	return nil
}

func (f *fakeOutput) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
}

func (f *fakeOutput) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.played...)
}

var english = domain.VoiceLanguage{Label: "English (US)", Text: "Number", Voice: "en-US-AvaNeural", Locale: "en-US"}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAnnouncerSpeaksInOrder(t *testing.T) {
	synth := &fakeSynth{}
	out := &fakeOutput{}
	a := NewAnnouncer(synth, out, logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)

	a.Announce(ctx, "Number 1!", english)
	a.Announce(ctx, "Number 2!", english)
	a.Announce(ctx, "Number 3!", english)

	waitFor(t, "three announcements", func() bool { return a.Spoken() == 3 })

	played := out.snapshot()
	want := []string{"en-US-AvaNeural|Number 1!", "en-US-AvaNeural|Number 2!", "en-US-AvaNeural|Number 3!"}
	for i := range want {
		if played[i] != want[i] {
			t.Fatalf("played[%d] = %q, want %q", i, played[i], want[i])
		}
	}
	if a.QueueLen() != 0 {
		t.Fatal("announcer should be idle")
	}
}

func TestAnnouncerUsesCache(t *testing.T) {
	synth := &fakeSynth{}
	out := &fakeOutput{}
	a := NewAnnouncer(synth, out, logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)

	a.Announce(ctx, "Number 5!", english)
	waitFor(t, "first", func() bool { return a.Spoken() == 1 })
	a.Announce(ctx, "Number 5!", english)
	waitFor(t, "second", func() bool { return a.Spoken() == 2 })

	if synth.count() != 1 {
		t.Fatalf("expected 1 synthesis call, got %d", synth.count())
	}
	if len(out.snapshot()) != 2 {
		t.Fatal("expected two playbacks")
	}
}

func TestAnnouncerSynthesisFailureIsSkipped(t *testing.T) {
	synth := &fakeSynth{fail: map[string]bool{"Number 8!": true}}
	out := &fakeOutput{}
	a := NewAnnouncer(synth, out, logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)

	a.Announce(ctx, "Number 8!", english)
	a.Announce(ctx, "Number 9!", english)
	waitFor(t, "both processed", func() bool { return a.Spoken() == 2 })

	played := out.snapshot()
	if len(played) != 1 || played[0] != "en-US-AvaNeural|Number 9!" {
		t.Fatalf("played = %v", played)
	}
}

func TestAnnouncerInterrupt(t *testing.T) {
	synth := &fakeSynth{}
	out := &fakeOutput{}
	a := NewAnnouncer(synth, out, logger.Discard())

	// Not started: items stay queued until Interrupt clears them.
	ctx := context.Background()
	a.Announce(ctx, "Number 1!", english)
	a.Announce(ctx, "Number 2!", english)
	if a.QueueLen() != 2 {
		t.Fatalf("queue len = %d", a.QueueLen())
	}
	a.Interrupt()
	if a.QueueLen() != 0 {
		t.Fatal("interrupt did not clear the queue")
	}
	if out.stops != 1 {
		t.Fatalf("expected output stop, got %d", out.stops)
	}
}

func TestAnnouncerCancelledContext(t *testing.T) {
	a := NewAnnouncer(&fakeSynth{}, &fakeOutput{}, logger.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a.Announce(ctx, "Number 1!", english)
	if a.QueueLen() != 0 {
		t.Fatal("announce after cancel should be dropped")
	}
}

func TestAnnouncerPrefetch(t *testing.T) {
	synth := &fakeSynth{}
	a := NewAnnouncer(synth, &fakeOutput{}, logger.Discard(), WithPrefetchWorkers(2))
	ctx := context.Background()

	texts := DrawLines(english.Text, []int{1, 2, 3, 4, 5})
	a.Prefetch(ctx, english, texts...)
	waitFor(t, "prefetch", func() bool { return a.Cache().Len() == len(texts) })

	// Second prefetch is a no-op.
	a.Prefetch(ctx, english, texts...)
	time.Sleep(20 * time.Millisecond)
	if synth.count() != len(texts) {
		t.Fatalf("expected %d synth calls, got %d", len(texts), synth.count())
	}
}

func TestNoOpAnnouncer(t *testing.T) {
	n := NewNoOp(logger.Discard())
	n.Announce(context.Background(), "Number 1!", english)
	n.Prefetch(context.Background(), english, "Number 1!")
}
