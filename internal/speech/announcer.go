package speech

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/logger"
)

// Compile-time interface check.
var _ domain.Announcer = (*Announcer)(nil)

// Synthesizer turns text into WAV audio. *AzureClient satisfies it.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice, locale string) ([]byte, error)
}

// Output plays WAV audio. *audio.Device satisfies it.
type Output interface {
	PlayWAV(wav []byte) error
	Stop()
}

// AnnouncerOption configures the Announcer.
type AnnouncerOption func(*Announcer)

// WithCacheDir sets the filesystem directory used for persistent audio
// caching. If empty, the disk layer is disabled (pure in-memory).
func WithCacheDir(dir string) AnnouncerOption {
	return func(a *Announcer) {
		a.cacheDir = dir
	}
}

// WithDiskWrite controls whether new cache entries are written to disk.
// Even when false, existing on-disk entries are still read.
func WithDiskWrite(enabled bool) AnnouncerOption {
	return func(a *Announcer) {
		a.diskWrite = enabled
	}
}

// WithPrefetchWorkers bounds how many synthesis requests Prefetch keeps in
// flight.
func WithPrefetchWorkers(n int) AnnouncerOption {
	return func(a *Announcer) {
		if n > 0 {
			a.prefetchSem = make(chan struct{}, n)
		}
	}
}

// Announcer serializes all speech output through one goroutine:
// queue -> synthesize (cached) -> play. Announcements are spoken in the
// order they were queued, one at a time.
type Announcer struct {
	tts   Synthesizer
	out   Output
	log   *logger.Logger
	cache *AudioCache

	mu          sync.Mutex
	queue       []Announcement
	notify      chan struct{}
	interrupted bool // set by Interrupt, cleared before each dequeue
	cacheDir    string
	diskWrite   bool
	prefetchSem chan struct{}
	spoken      int
}

// NewAnnouncer creates a speech dispatcher. Call Start to begin speaking.
func NewAnnouncer(tts Synthesizer, out Output, log *logger.Logger, opts ...AnnouncerOption) *Announcer {
	a := &Announcer{
		tts:         tts,
		out:         out,
		log:         log,
		notify:      make(chan struct{}, 1),
		diskWrite:   true,
		prefetchSem: make(chan struct{}, 4),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.cache = NewAudioCache(a.cacheDir, a.diskWrite, log)
	return a
}

// Announce queues text to be spoken with the given voice. Non-blocking.
func (a *Announcer) Announce(ctx context.Context, text string, voice domain.VoiceLanguage) {
	if ctx.Err() != nil {
		return
	}
	a.mu.Lock()
	a.queue = append(a.queue, Announcement{
		Text:     text,
		Voice:    voice.Voice,
		Locale:   voice.Locale,
		QueuedAt: time.Now(),
	})
	qLen := len(a.queue)
	a.mu.Unlock()

	a.log.Debug("announcer: queued (queue_len=%d, voice=%s): %s", qLen, voice.Voice, text)

	select {
	case a.notify <- struct{}{}:
	default: // already signaled
	}
}

// Interrupt drops everything queued and stops the current playback.
func (a *Announcer) Interrupt() {
	a.mu.Lock()
	a.queue = a.queue[:0]
	a.interrupted = true
	a.mu.Unlock()

	a.out.Stop()
	a.log.Debug("announcer: interrupted, queue cleared")
}

// QueueLen returns the number of pending announcements.
func (a *Announcer) QueueLen() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queue)
}

// Spoken returns how many announcements have finished, successfully or not.
func (a *Announcer) Spoken() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.spoken
}

// Cache returns the audio cache. Useful for stats/logging.
func (a *Announcer) Cache() *AudioCache { return a.cache }

// Start begins the processing goroutine. Non-blocking.
func (a *Announcer) Start(ctx context.Context) {
	go a.processLoop(ctx)
	a.log.Info("announcer started")
}

func (a *Announcer) processLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			a.log.Info("announcer stopped")
			return
		case <-a.notify:
			a.drain(ctx)
		}
	}
}

// drain speaks queued items until the queue is empty.
func (a *Announcer) drain(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		a.mu.Lock()
		a.interrupted = false
		if len(a.queue) == 0 {
			a.mu.Unlock()
			return
		}
		item := a.queue[0]
		a.queue = a.queue[1:]
		a.mu.Unlock()

		a.speak(ctx, item)

		a.mu.Lock()
		a.spoken++
		a.mu.Unlock()
	}
}

func (a *Announcer) speak(ctx context.Context, item Announcement) {
	a.log.Debug("announcer: speaking (waited=%s): %s",
		time.Since(item.QueuedAt).Round(time.Millisecond), item.Text)

	audio, err := a.synthesizeWithCache(ctx, item.Text, item.Voice, item.Locale)
	if err != nil {
		a.log.Error("announcer: synthesis failed: %v", err)
		return
	}

	a.mu.Lock()
	abort := a.interrupted
	a.mu.Unlock()
	if abort {
		a.log.Debug("announcer: skipping playback (interrupted)")
		return
	}

	if err := a.out.PlayWAV(audio); err != nil {
		a.log.Error("announcer: playback failed: %v", err)
	}
}

func (a *Announcer) synthesizeWithCache(ctx context.Context, text, voice, locale string) ([]byte, error) {
	if audio, ok := a.cache.Get(voice, text); ok {
		return audio, nil
	}
	audio, err := a.tts.Synthesize(ctx, text, voice, locale)
	if err != nil {
		return nil, err
	}
	a.cache.Put(voice, text, audio)
	return audio, nil
}

// Prefetch synthesizes texts in the background so later announcements play
// without a network round trip. Already cached texts are skipped. At most
// WithPrefetchWorkers requests run at once. Non-blocking.
func (a *Announcer) Prefetch(ctx context.Context, voice domain.VoiceLanguage, texts ...string) {
	var missing []string
	for _, text := range texts {
		if text != "" && !a.cache.Has(voice.Voice, text) {
			missing = append(missing, text)
		}
	}
	if len(missing) == 0 {
		return
	}
	a.log.Debug("prefetch: %d of %d texts not cached (voice=%s)", len(missing), len(texts), voice.Voice)

	go func() {
		var wg sync.WaitGroup
		for _, text := range missing {
			select {
			case <-ctx.Done():
				wg.Wait()
				return
			case a.prefetchSem <- struct{}{}:
			}
			wg.Add(1)
			go func(t string) {
				defer wg.Done()
				defer func() { <-a.prefetchSem }()
				audio, err := a.tts.Synthesize(ctx, t, voice.Voice, voice.Locale)
				if err != nil {
					a.log.Error("prefetch: synthesis failed: %v", err)
					return
				}
				a.cache.Put(voice.Voice, t, audio)
			}(text)
		}
		wg.Wait()
		a.log.Debug("prefetch: done (voice=%s, cached=%d)", voice.Voice, a.cache.Len())
	}()
}
