package conversation

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantNumbers []int
		wantPayload string
	}{
		// Draw
		{"draw", domain.IntentDraw, nil, ""},
		{"D", domain.IntentDraw, nil, ""},
		{"next", domain.IntentDraw, nil, ""},

		// Undo
		{"undo", domain.IntentUndo, nil, ""},
		{"cancel", domain.IntentUndo, nil, ""},

		// Add
		{"add 42", domain.IntentAdd, []int{42}, ""},
		{"a -3", domain.IntentAdd, []int{-3}, ""},
		{"+ 7", domain.IntentAdd, []int{7}, ""},
		{"+91", domain.IntentAdd, []int{91}, ""},

		// Check
		{"check 3,7", domain.IntentCheck, []int{3, 7}, ""},
		{"check 3, 7  12", domain.IntentCheck, []int{3, 7, 12}, ""},
		{"? 1 2", domain.IntentCheck, []int{1, 2}, ""},

		// Create
		{"new 75", domain.IntentCreate, []int{75}, ""},
		{"create 0", domain.IntentCreate, []int{0}, ""},

		// Voice
		{"voice", domain.IntentVoice, nil, ""},
		{"voice English (US)", domain.IntentVoice, nil, "English (US)"},
		{"v 2", domain.IntentVoice, nil, "2"},

		// Misc
		{"list", domain.IntentShow, nil, ""},
		{"status", domain.IntentShow, nil, ""},
		{"save", domain.IntentSave, nil, ""},
		{"help", domain.IntentHelp, nil, ""},
		{"?", domain.IntentHelp, nil, ""},
		{"quit", domain.IntentQuit, nil, ""},
		{"Q", domain.IntentQuit, nil, ""},
		{"yes", domain.IntentConfirm, nil, ""},
		{"n", domain.IntentDeny, nil, ""},

		// Unknown
		{"shuffle everything", domain.IntentUnknown, nil, "shuffle everything"},
		{"", domain.IntentUnknown, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			if !slices.Equal(intent.Numbers, tt.wantNumbers) {
				t.Errorf("input=%q: got numbers %v, want %v", tt.input, intent.Numbers, tt.wantNumbers)
			}
			if intent.Payload != tt.wantPayload {
				t.Errorf("input=%q: got payload %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
		})
	}
}

func TestKeywordParserInvalidInput(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	tests := []struct {
		input   string
		wantErr error
	}{
		{"add seven", domain.ErrInvalidNumber},
		{"add 4.5", domain.ErrInvalidNumber},
		{"new", domain.ErrInvalidNumber},
		{"new lots", domain.ErrInvalidNumber},
		{"check 1, x", domain.ErrInvalidList},
		{"? 4 five", domain.ErrInvalidList},
		{"check", domain.ErrEmptyList},
		{"check , ,", domain.ErrEmptyList},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parser.Parse(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("input=%q: got %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseNumberList(t *testing.T) {
	got, err := ParseNumberList(" 10;11,  12 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []int{10, 11, 12}) {
		t.Fatalf("got %v", got)
	}
}
