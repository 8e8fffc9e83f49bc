package domain

// Snapshot is the persisted state of a number pool. The JSON field names
// match the data files written by earlier BingoXDraw releases.
type Snapshot struct {
	Available []int `json:"bingo_numbers"`
	Drawn     []int `json:"withdrawn_numbers"`
}

// Status reports whether a checked number has been drawn.
type Status int

const (
	NotDrawn Status = iota
	Drawn
)

// String returns the label shown to the operator.
func (s Status) String() string {
	switch s {
	case Drawn:
		return "Withdrawn"
	default:
		return "Not Withdrawn"
	}
}

// VoiceLanguage is one entry of the voice catalog.
type VoiceLanguage struct {
	Label  string // shown to the operator, e.g. "English (US)"
	Text   string // spoken before the number, e.g. "Number"
	Voice  string // Azure voice name, e.g. "en-US-AvaNeural"
	Locale string // xml:lang for the SSML envelope
}
