// Package conversation turns operator input into intents.
package conversation

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches operator input to intents using keywords and
// simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

// argKind says what a rule expects after its keyword.
type argKind int

const (
	argNone argKind = iota
	argNumber
	argList
	argText
)

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
	arg    argKind
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(draw|d|next|withdraw)$`), domain.IntentDraw, argNone},
		{regexp.MustCompile(`(?i)^(undo|u|cancel)$`), domain.IntentUndo, argNone},
		{regexp.MustCompile(`(?i)^(?:add|a)\s+(.+)$`), domain.IntentAdd, argNumber},
		{regexp.MustCompile(`^\+\s*(.+)$`), domain.IntentAdd, argNumber},
		{regexp.MustCompile(`(?i)^(?:check|c)(?:\s+(.*))?$`), domain.IntentCheck, argList},
		{regexp.MustCompile(`^\?\s*(.+)$`), domain.IntentCheck, argList},
		{regexp.MustCompile(`(?i)^(?:new|create)(?:\s+(.*))?$`), domain.IntentCreate, argNumber},
		{regexp.MustCompile(`(?i)^(?:voice|voices|v)(?:\s+(.+))?$`), domain.IntentVoice, argText},
		{regexp.MustCompile(`(?i)^(list|show|status|ls)$`), domain.IntentShow, argNone},
		{regexp.MustCompile(`(?i)^(save|w)$`), domain.IntentSave, argNone},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp, argNone},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.IntentQuit, argNone},
		{regexp.MustCompile(`(?i)^(y|yes|sim|ok)$`), domain.IntentConfirm, argNone},
		{regexp.MustCompile(`(?i)^(n|no|não|nao)$`), domain.IntentDeny, argNone},
	}
	return p
}

// Parse converts operator input into an intent. A malformed number wraps
// domain.ErrInvalidNumber and a malformed check list wraps
// domain.ErrInvalidList. A check without numbers yields domain.ErrEmptyList.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)

		var arg string
		if len(m) > 1 {
			arg = strings.TrimSpace(m[1])
		}

		intent := &domain.Intent{Type: rule.intent, Payload: arg}
		switch rule.arg {
		case argNumber:
			n, err := ParseNumber(arg)
			if err != nil {
				return nil, err
			}
			intent.Numbers = []int{n}
		case argList:
			nums, err := ParseNumberList(arg)
			if err != nil {
				return nil, err
			}
			intent.Numbers = nums
		case argNone:
			intent.Payload = ""
		}
		return intent, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

// ParseNumber parses a single integer.
func ParseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: expected a number", domain.ErrInvalidNumber)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, s)
	}
	return n, nil
}

// listSep splits on commas and/or whitespace.
var listSep = regexp.MustCompile(`[\s,;]+`)

// ParseNumberList parses integers separated by commas or spaces, e.g.
// "3, 7 12". Any bad element rejects the whole list with
// domain.ErrInvalidList.
func ParseNumberList(s string) ([]int, error) {
	var nums []int
	for _, field := range listSep.Split(strings.TrimSpace(s), -1) {
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidList, field)
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return nil, domain.ErrEmptyList
	}
	return nums, nil
}
