package domain

// IntentType classifies what the operator wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentDraw
	IntentUndo
	IntentAdd
	IntentCheck
	IntentCreate
	IntentVoice
	IntentShow
	IntentSave
	IntentHelp
	IntentQuit
	IntentConfirm // "yes" to a pending prompt
	IntentDeny    // "no" to a pending prompt
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentDraw:
		return "draw"
	case IntentUndo:
		return "undo"
	case IntentAdd:
		return "add"
	case IntentCheck:
		return "check"
	case IntentCreate:
		return "create"
	case IntentVoice:
		return "voice"
	case IntentShow:
		return "show"
	case IntentSave:
		return "save"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	case IntentConfirm:
		return "confirm"
	case IntentDeny:
		return "deny"
	default:
		return "unknown"
	}
}

// Intent represents a parsed operator action.
type Intent struct {
	Type    IntentType
	Numbers []int  // parsed arguments for add, check, and create
	Payload string // raw argument text, e.g. a voice label
}
