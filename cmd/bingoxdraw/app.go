package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hammamikhairi/bingoxdraw/internal/display"
	"github.com/hammamikhairi/bingoxdraw/internal/domain"
	"github.com/hammamikhairi/bingoxdraw/internal/game"
	"github.com/hammamikhairi/bingoxdraw/internal/logger"
)

// screen is the part of display.UI the app writes to.
type screen interface {
	InputChan() <-chan string
	SetStatus(display.Status)
	PrintChat(text string)
	PrintDraw(text string)
	PrintNumbers(label string, nums []int)
	PrintHint(text string)
	PrintUrgent(text string)
	PrintWin(text string)
}

// pendingKind is an action waiting for a yes/no answer.
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingUndo
	pendingCreate
)

type cliApp struct {
	game   *game.Game
	parser domain.IntentParser
	log    *logger.Logger
	ui     screen
	muted  bool // speech disabled

	pending    pendingKind
	pendingMax int // pool size for pendingCreate
}

func (a *cliApp) run(ctx context.Context) {
	a.showNumbers()

	uiCh := a.ui.InputChan()
	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		if a.handleInput(ctx, input) {
			return
		}
	}
}

// handleInput processes one line. Returns true when the operator quits.
func (a *cliApp) handleInput(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	intent, err := a.parser.Parse(ctx, input)
	if err != nil {
		a.log.Info("rejected input %q: %v", input, err)
		a.pending = pendingNone
		a.showInputError(err)
		return false
	}

	a.log.Debug("intent: %s (numbers=%v, payload=%q)", intent.Type, intent.Numbers, intent.Payload)
	quit := a.handleIntent(ctx, intent)
	a.ui.SetStatus(a.status())
	return quit
}

func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	// Anything other than an answer drops a pending question.
	if intent.Type != domain.IntentConfirm && intent.Type != domain.IntentDeny && a.pending != pendingNone {
		a.ui.PrintHint("Previous question dismissed.")
		a.pending = pendingNone
	}

	switch intent.Type {
	case domain.IntentDraw:
		a.draw(ctx)
	case domain.IntentUndo:
		a.askUndo()
	case domain.IntentAdd:
		a.add(ctx, intent.Numbers[0])
	case domain.IntentCheck:
		a.check(ctx, intent.Numbers)
	case domain.IntentCreate:
		a.askCreate(intent.Numbers[0])
	case domain.IntentVoice:
		a.voice(ctx, intent.Payload)
	case domain.IntentShow:
		a.showNumbers()
	case domain.IntentSave:
		a.save(ctx)
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentConfirm:
		a.confirm(ctx)
	case domain.IntentDeny:
		a.deny()
	case domain.IntentQuit:
		a.ui.PrintChat("Saving and closing. Bye!")
		return true
	default:
		a.ui.PrintHint(fmt.Sprintf("Unknown command %q. Type 'help' for the list.", intent.Payload))
	}
	return false
}

func (a *cliApp) draw(ctx context.Context) {
	n, err := a.game.Draw(ctx)
	if errors.Is(err, domain.ErrPoolEmpty) {
		a.ui.PrintUrgent("No more numbers left to withdraw!")
		return
	}
	a.ui.PrintDraw(fmt.Sprintf("Withdrew number: %d", n))
	a.showNumbers()
}

func (a *cliApp) askUndo() {
	last, ok := a.game.Last()
	if !ok {
		a.ui.PrintUrgent("No withdrawal to cancel!")
		return
	}
	a.pending = pendingUndo
	a.ui.PrintHint(fmt.Sprintf("This will cancel the last withdrawal (%d). Proceed? (y/n)", last))
}

func (a *cliApp) askCreate(maxNumber int) {
	if maxNumber < 0 {
		a.showInputError(fmt.Errorf("%w: max must not be negative", domain.ErrInvalidNumber))
		return
	}
	a.pending = pendingCreate
	a.pendingMax = maxNumber
	a.ui.PrintHint(fmt.Sprintf("This will override the bingo numbers with 1..%d. Proceed? (y/n)", maxNumber))
}

func (a *cliApp) confirm(ctx context.Context) {
	kind := a.pending
	a.pending = pendingNone

	switch kind {
	case pendingUndo:
		n, err := a.game.Undo(ctx)
		if err != nil {
			a.ui.PrintUrgent("No withdrawal to cancel!")
			return
		}
		a.ui.PrintChat(fmt.Sprintf("Canceled withdrawal of number: %d", n))
		a.showNumbers()
	case pendingCreate:
		if err := a.game.Create(ctx, a.pendingMax); err != nil {
			a.log.Error("create: %v", err)
			a.ui.PrintUrgent(fmt.Sprintf("Created the numbers but could not save: %v", err))
		} else {
			a.ui.PrintChat(fmt.Sprintf("Created bingo numbers 1..%d.", a.pendingMax))
		}
		a.showNumbers()
	default:
		a.ui.PrintHint("Nothing to confirm.")
	}
}

func (a *cliApp) deny() {
	if a.pending == pendingNone {
		a.ui.PrintHint("Nothing to cancel.")
		return
	}
	a.pending = pendingNone
	a.ui.PrintHint("Okay, left as is.")
}

func (a *cliApp) add(ctx context.Context, n int) {
	a.game.Add(ctx, n)
	a.ui.PrintChat(fmt.Sprintf("Added number: %d", n))
	a.showNumbers()
}

func (a *cliApp) check(ctx context.Context, nums []int) {
	res, err := a.game.Check(ctx, nums)
	if err != nil {
		a.showInputError(err)
		return
	}
	for i, n := range res.Numbers {
		a.ui.PrintHint(fmt.Sprintf("%d: %s", n, res.Statuses[i]))
	}
	if res.Bingo {
		a.ui.PrintWin("BINGO!!!!!!!!!!!!")
	} else {
		a.ui.PrintUrgent("Not bingo :(")
	}
}

func (a *cliApp) voice(ctx context.Context, label string) {
	if label == "" {
		current := a.game.Voice().Label
		a.ui.PrintChat("Voice languages:")
		for i, l := range a.game.Catalog().Labels() {
			marker := "  "
			if l == current {
				marker = "* "
			}
			a.ui.PrintHint(fmt.Sprintf("%s%d. %s", marker, i+1, l))
		}
		if a.muted {
			a.ui.PrintHint("Speech is off; the choice applies once Azure keys are configured.")
		}
		return
	}

	v, err := a.game.SetVoice(ctx, label)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Unknown voice %q. Type 'voice' to list them.", label))
		return
	}
	a.ui.PrintChat(fmt.Sprintf("Voice set to %s.", v.Label))
}

func (a *cliApp) save(ctx context.Context) {
	if err := a.game.Save(ctx); err != nil {
		a.log.Error("save: %v", err)
		a.ui.PrintUrgent(fmt.Sprintf("Could not save: %v", err))
		return
	}
	a.ui.PrintChat("Saved.")
}

func (a *cliApp) showNumbers() {
	a.ui.PrintNumbers("Bingo Numbers", a.game.Available())
	a.ui.PrintNumbers("Withdrawn Bingo Numbers", a.game.Drawn())
}

func (a *cliApp) showInputError(err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyList), errors.Is(err, domain.ErrInvalidList):
		a.ui.PrintUrgent("Invalid input. Please enter a valid list of numbers.")
	case errors.Is(err, domain.ErrInvalidNumber):
		a.ui.PrintUrgent("Invalid input. Please enter a valid number.")
	default:
		a.ui.PrintUrgent(err.Error())
	}
}

func (a *cliApp) showHelp() {
	a.ui.PrintChat("Commands:")
	for _, line := range []string{
		"draw, d          withdraw a random number",
		"undo, u          cancel the last withdrawal (asks first)",
		"add N, +N        add a number to the pool",
		"check 3, 7, 12   check whether numbers were withdrawn",
		"new N            start over with numbers 1..N (asks first)",
		"voice [label|N]  list or choose the announcement voice",
		"list             show both number lists",
		"save             save now (also saved on quit)",
		"quit, q          save and exit",
	} {
		a.ui.PrintHint(line)
	}
}

func (a *cliApp) status() display.Status {
	last, hasLast := a.game.Last()
	return display.Status{
		Available: len(a.game.Available()),
		Drawn:     len(a.game.Drawn()),
		Last:      last,
		HasLast:   hasLast,
		Voice:     a.game.Voice().Label,
		Muted:     a.muted,
	}
}
