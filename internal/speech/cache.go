package speech

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/hammamikhairi/bingoxdraw/internal/logger"
)

const (
	// memTTL bounds how long a synthesized line stays in memory. A long
	// game that switches voices a few times would otherwise hold every
	// number in every voice. Expired lines are still found on disk.
	memTTL = 2 * time.Hour

	memCleanup = 10 * time.Minute
)

// AudioCache is a two-tier (memory + filesystem) cache of synthesized
// announcements, safe for concurrent use. Keys are
// sha256(voice + ":" + text), so "Number 7!" in two voices is stored
// twice and switching back and forth keeps both warm.
//
// The disk tier is always read when cacheDir is set. diskWrite only
// controls whether new entries are persisted, so a read-only cache still
// starts warm from previous games.
type AudioCache struct {
	mem       *gocache.Cache
	log       *logger.Logger
	cacheDir  string // empty disables the disk tier
	diskWrite bool
	hits      atomic.Int64
	misses    atomic.Int64
}

// NewAudioCache creates an audio cache rooted at cacheDir.
func NewAudioCache(cacheDir string, diskWrite bool, log *logger.Logger) *AudioCache {
	c := &AudioCache{
		mem:       gocache.New(memTTL, memCleanup),
		log:       log,
		cacheDir:  cacheDir,
		diskWrite: diskWrite,
	}

	if cacheDir != "" && diskWrite {
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			log.Error("cache: failed to create cache dir %s: %v", cacheDir, err)
		}
	}
	return c
}

// Get returns the cached WAV for text in voice. Disk hits are promoted to
// memory.
func (c *AudioCache) Get(voice, text string) ([]byte, bool) {
	key := hashKey(voice, text)

	if v, ok := c.mem.Get(key); ok {
		data := v.([]byte)
		c.hits.Add(1)
		c.log.Debug("cache hit (mem): %s (%d bytes)", truncateForLog(text, 40), len(data))
		return data, true
	}

	if c.cacheDir != "" {
		if data, ok := c.readDisk(key); ok {
			c.mem.SetDefault(key, data)
			c.hits.Add(1)
			c.log.Debug("cache hit (disk): %s (%d bytes)", truncateForLog(text, 40), len(data))
			return data, true
		}
	}

	c.misses.Add(1)
	return nil, false
}

// Put stores audio in memory, and on disk when diskWrite is set.
func (c *AudioCache) Put(voice, text string, audio []byte) {
	key := hashKey(voice, text)
	c.mem.SetDefault(key, audio)
	c.log.Debug("cache store (mem): %s (%d bytes, %d entries)", truncateForLog(text, 40), len(audio), c.mem.ItemCount())

	if c.cacheDir != "" && c.diskWrite {
		c.writeDisk(key, audio)
	}
}

// Has reports whether either tier holds the line. It does not count as a
// hit or miss.
func (c *AudioCache) Has(voice, text string) bool {
	key := hashKey(voice, text)
	if _, ok := c.mem.Get(key); ok {
		return true
	}
	return c.cacheDir != "" && c.existsOnDisk(key)
}

// Len returns the number of in-memory entries.
func (c *AudioCache) Len() int { return c.mem.ItemCount() }

// Stats returns hit and miss counts.
func (c *AudioCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func hashKey(voice, text string) string {
	h := sha256.Sum256([]byte(voice + ":" + text))
	return hex.EncodeToString(h[:])
}

func (c *AudioCache) diskPath(key string) string {
	return filepath.Join(c.cacheDir, key+".wav")
}

func (c *AudioCache) readDisk(key string) ([]byte, bool) {
	data, err := os.ReadFile(c.diskPath(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *AudioCache) writeDisk(key string, audio []byte) {
	path := c.diskPath(key)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		c.log.Error("cache: disk write failed for %s: %v", path, err)
		return
	}
	c.log.Debug("cache store (disk): %s (%d bytes)", key[:12], len(audio))
}

func (c *AudioCache) existsOnDisk(key string) bool {
	_, err := os.Stat(c.diskPath(key))
	return err == nil
}

func truncateForLog(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
