package speech

import "time"

// Audio format requested from Azure. Must match the audio device:
// 24 kHz, 16-bit, mono.
const DefaultAudioFormat = "riff-24khz-16bit-mono-pcm"

// Env var names for Azure Speech credentials. The AZURE_-prefixed names
// are accepted as a fallback.
const (
	EnvSpeechKey         = "SPEECH_KEY"
	EnvSpeechRegion      = "SPEECH_REGION"
	EnvAzureSpeechKey    = "AZURE_SPEECH_KEY"
	EnvAzureSpeechRegion = "AZURE_SPEECH_REGION"
)

// Default locations of the operator-editable config files.
const (
	DefaultSecretsPath = "user_files/secrets.env"
	DefaultCatalogPath = "user_files/voice_languages.json"
)

// Announcement is a queued item waiting to be spoken.
type Announcement struct {
	Text     string
	Voice    string // Azure voice name
	Locale   string
	QueuedAt time.Time
}
