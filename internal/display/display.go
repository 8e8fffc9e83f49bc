// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type manages a status bar and an input prompt at the bottom of
// the terminal. All application output is printed above the rendered area
// via Program.Println / Printf, so concurrent writes never garble the
// display.
package display

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	lastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle: muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	// Drawn number announcement: soft mint, bold.
	drawStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

const prompt = "bingo> "

// Status is what the bar shows. The app pushes a fresh copy after every
// command; the UI never reads game state directly.
type Status struct {
	Available int
	Drawn     int
	Last      int
	HasLast   bool
	Voice     string
	Muted     bool // speech disabled
}

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking).  Other goroutines may
// safely call [UI.Println], [UI.Printf], [UI.SetStatus] and read from
// [UI.InputChan] at any time after [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	done    atomic.Bool

	mu     sync.Mutex
	status Status
}

// NewUI creates the display. Call Run() to start.
func NewUI() *UI {
	return &UI{
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// Println prints a line above the prompt. Thread-safe. Falls back to
// fmt.Println before the program starts or after it exits.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt. Thread-safe.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// SetStatus updates the status bar. Thread-safe.
func (u *UI) SetStatus(s Status) {
	u.mu.Lock()
	u.status = s
	u.mu.Unlock()
	if u.program != nil && !u.done.Load() {
		u.program.Send(statusMsg(s))
	}
}

// ── Styled print helpers ─────────────────────────────────────────

// PrintChat prints a conversational line.
func (u *UI) PrintChat(text string) {
	u.Println(chatStyle.Render("  " + text))
}

// PrintDraw prints a drawn number prominently.
func (u *UI) PrintDraw(text string) {
	u.Println(drawStyle.Render("  " + text))
}

// PrintNumbers prints a labelled, comma-joined list of numbers.
func (u *UI) PrintNumbers(label string, nums []int) {
	body := JoinNumbers(nums)
	if body == "" {
		body = secondaryStyle.Render("(none)")
	} else {
		body = primaryStyle.Render(body)
	}
	u.Println(labelStyle.Render("  "+label+": ") + body)
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintWin prints the bingo celebration line.
func (u *UI) PrintWin(text string) {
	u.Println(winStyle.Render("  " + text))
}

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("bingo") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running. Returns
// false if Run exited before becoming ready.
func (u *UI) WaitReady() bool {
	select {
	case <-u.readyCh:
		return true
	case <-u.quitCh:
		return false
	}
}

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop.  Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	// Plain-text prompt: lipgloss-styled prompts add ANSI bytes that break
	// textinput's width math for long input.
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60 // updated on first WindowSizeMsg

	u.mu.Lock()
	initial := u.status
	u.mu.Unlock()

	m := newModel(ti, u.inputCh, u.readyCh, u.PrintUserInput)
	m.status = initial

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	echoFn  func(string) // prints user input into scrollback
	status  Status
	width   int
}

func newModel(ti textinput.Model, inputCh chan<- string, readyCh chan struct{}, echo func(string)) model {
	return model{
		input:   ti,
		inputCh: inputCh,
		readyCh: readyCh,
		echoFn:  echo,
	}
}

// Messages.
type statusMsg Status

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		signalReady(m.readyCh),
		tea.SetWindowTitle(m.titleStr()),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) != "" {
				m.inputCh <- v
				// Echo from a Cmd so it runs outside Update.
				echoFn := m.echoFn
				return m, func() tea.Msg {
					echoFn(v)
					return nil
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > len(prompt) {
			m.input.Width = msg.Width - len(prompt)
		}
		return m, nil

	case statusMsg:
		m.status = Status(msg)
		return m, tea.SetWindowTitle(m.titleStr())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) titleStr() string {
	if !m.status.HasLast {
		return "BingoXDraw"
	}
	return "BingoXDraw — last: " + strconv.Itoa(m.status.Last)
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.renderBar())
	b.WriteByte('\n')
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	s := m.status
	sep := sepStyle.Render("  │  ")

	last := labelStyle.Render("last: ") + secondaryStyle.Render("—")
	if s.HasLast {
		last = labelStyle.Render("last: ") + lastStyle.Render(strconv.Itoa(s.Last))
	}

	avail := labelStyle.Render("left: ") + primaryStyle.Render(strconv.Itoa(s.Available))
	if s.Available == 0 {
		avail = labelStyle.Render("left: ") + emptyStyle.Render("0")
	}

	voice := s.Voice
	if s.Muted {
		voice += " (muted)"
	}

	parts := []string{
		last,
		avail,
		labelStyle.Render("drawn: ") + primaryStyle.Render(strconv.Itoa(s.Drawn)),
		labelStyle.Render("voice: ") + secondaryStyle.Render(voice),
	}
	content := " " + strings.Join(parts, sep) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}

// ── Helpers ──────────────────────────────────────────────────────

// JoinNumbers renders numbers as "1, 2, 3".
func JoinNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
