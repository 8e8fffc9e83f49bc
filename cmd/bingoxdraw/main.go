// BingoXDraw is a bingo number drawing helper with spoken announcements.
//
// Usage:
//
//	bingoxdraw [-max N] [-voice LABEL] [-verbose] [-quiet] [-no-speech] [-no-sound]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/bingoxdraw/internal/audio"
	"github.com/hammamikhairi/bingoxdraw/internal/conversation"
	"github.com/hammamikhairi/bingoxdraw/internal/cue"
	"github.com/hammamikhairi/bingoxdraw/internal/display"
	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/game"
	"github.com/hammamikhairi/bingoxdraw/internal/logger"
	"github.com/hammamikhairi/bingoxdraw/internal/speech"
	"github.com/hammamikhairi/bingoxdraw/internal/storage"
)

func main() {
	dataPath := flag.String("data", storage.DefaultDataPath, "file the pool is saved to")
	maxNumber := flag.Int("max", 0, "size of a fresh pool when no saved data exists")
	secretsPath := flag.String("secrets", speech.DefaultSecretsPath, "env file with SPEECH_KEY and SPEECH_REGION")
	catalogPath := flag.String("voices", speech.DefaultCatalogPath, "voice language catalog (JSON, comments allowed)")
	voiceLabel := flag.String("voice", "", "voice language label or index to start with")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".bingo-logs/bingo.log", "file to write logs to (use \"stderr\" to log to console)")
	noSpeech := flag.Bool("no-speech", false, "disable text-to-speech even if Azure keys are set")
	noSound := flag.Bool("no-sound", false, "disable sound cues")
	noSave := flag.Bool("no-save", false, "keep the pool in memory only")
	diskCache := flag.Bool("disk-cache", true, "persist TTS audio cache to disk (reads from disk even when false)")
	cacheDir := flag.String("cache-dir", ".bingo-cache", "directory for persistent TTS audio cache")
	flag.Parse()

	// Direct logs to a file by default so the prompt stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		f, err := openLogFile(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	log := logger.New(logger.LevelFromFlags(*verbose, *quiet), logOut)

	if err := godotenv.Load(*secretsPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("no secrets file at %s, relying on environment", *secretsPath)
		} else {
			log.Warn("reading %s: %v", *secretsPath, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	var store domain.PoolStore
	if *noSave {
		store = storage.NewMemoryStore(log)
	} else {
		store = storage.NewFileStore(*dataPath, log)
	}

	p, err := storage.LoadPool(ctx, store, *maxNumber)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	catalog, fromFile, err := speech.LoadCatalog(*catalogPath)
	if err != nil {
		log.Error("voice catalog: %v (using built-in voices)", err)
		catalog = speech.BuiltinCatalog()
	} else if !fromFile {
		log.Info("no voice catalog at %s, using built-in voices", *catalogPath)
	}

	key, region := speechCredentials()
	wantSpeech := !*noSpeech && key != "" && region != ""
	if !*noSpeech && !wantSpeech {
		log.Info("TTS disabled: set %s and %s (in %s or the environment) to enable",
			speech.EnvSpeechKey, speech.EnvSpeechRegion, *secretsPath)
	}

	var device *audio.Device
	if wantSpeech || !*noSound {
		device, err = audio.NewDevice(log)
		if err != nil {
			log.Error("audio device init failed, running silent: %v", err)
			device = nil
		}
	}

	var cues domain.CuePlayer = cue.Silent{}
	if device != nil && !*noSound {
		cues = cue.NewPlayer(device, log)
	}

	var announcer domain.Announcer = speech.NewNoOp(log)
	var tts *speech.Announcer
	muted := true
	if wantSpeech && device != nil {
		client := speech.NewAzureClient(key, region, log)
		tts = speech.NewAnnouncer(client, device, log,
			speech.WithCacheDir(*cacheDir),
			speech.WithDiskWrite(*diskCache),
		)
		tts.Start(ctx)
		announcer = tts
		muted = false
		log.Info("TTS enabled (region=%s)", region)
	}

	g := game.New(p, store, log,
		game.WithAnnouncer(announcer),
		game.WithCues(cues),
		game.WithCatalog(catalog),
	)
	if *voiceLabel != "" {
		if _, err := g.SetVoice(ctx, *voiceLabel); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (using %s)\n", err, g.Voice().Label)
		}
	}
	g.Warm(ctx)

	ui := display.NewUI()
	app := &cliApp{
		game:   g,
		parser: conversation.NewKeywordParser(log),
		log:    log,
		ui:     ui,
		muted:  muted,
	}
	ui.SetStatus(app.status())

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'draw' to withdraw a number, 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// App logic runs on its own goroutine; it is the only caller of g.
	appDone := make(chan struct{})
	go func() {
		defer close(appDone)
		if !ui.WaitReady() {
			return
		}
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal and blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
	<-appDone

	// Save on every exit path, including Ctrl-C.
	if err := g.Save(context.Background()); err != nil {
		log.Error("final save: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if tts != nil {
		hits, misses := tts.Cache().Stats()
		log.Info("pool saved, bye (tts cache: %d hits, %d misses, %d spoken)", hits, misses, tts.Spoken())
	} else {
		log.Info("pool saved, bye")
	}
}

// openLogFile opens path for appending, creating its directory first.
func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// speechCredentials reads the Azure key and region, preferring the
// SPEECH_* names over the AZURE_SPEECH_* ones.
func speechCredentials() (key, region string) {
	key = os.Getenv(speech.EnvSpeechKey)
	if key == "" {
		key = os.Getenv(speech.EnvAzureSpeechKey)
	}
	region = os.Getenv(speech.EnvSpeechRegion)
	if region == "" {
		region = os.Getenv(speech.EnvAzureSpeechRegion)
	}
	return key, region
}
