package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrPoolEmpty       = errors.New("no numbers left to draw")
	ErrNothingToUndo   = errors.New("no draw to cancel")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrEmptyList       = errors.New("no numbers given")
	ErrUnknownVoice    = errors.New("unknown voice language")
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
	ErrInvalidList     = errors.New("invalid number list")
)
