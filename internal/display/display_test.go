package display

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func TestJoinNumbers(t *testing.T) {
	tests := []struct {
		in   []int
		want string
	}{
		{nil, ""},
		{[]int{7}, "7"},
		{[]int{1, 2, 30}, "1, 2, 30"},
	}
	for _, tt := range tests {
		if got := JoinNumbers(tt.in); got != tt.want {
			t.Errorf("JoinNumbers(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func testModel() (model, chan string) {
	ch := make(chan string, 1)
	m := newModel(textinput.New(), ch, make(chan struct{}), func(string) {})
	return m, ch
}

func TestModelStatusMsg(t *testing.T) {
	m, _ := testModel()

	next, _ := m.Update(statusMsg(Status{Available: 70, Drawn: 5, Last: 42, HasLast: true, Voice: "English (US)"}))
	view := next.(model).View()

	for _, want := range []string{"42", "70", "5", "English (US)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if got := next.(model).titleStr(); got != "BingoXDraw — last: 42" {
		t.Errorf("title = %q", got)
	}
}

func TestModelMutedVoice(t *testing.T) {
	m, _ := testModel()
	next, _ := m.Update(statusMsg(Status{Voice: "English (US)", Muted: true}))
	if !strings.Contains(next.(model).View(), "(muted)") {
		t.Fatal("muted marker missing")
	}
}

func TestModelEnterSendsInput(t *testing.T) {
	m, ch := testModel()
	m.input.Focus()
	m.input.SetValue("draw")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected echo command")
	}
	select {
	case got := <-ch:
		if got != "draw" {
			t.Fatalf("sent %q", got)
		}
	default:
		t.Fatal("nothing sent on input channel")
	}
	if next.(model).input.Value() != "" {
		t.Fatal("input not reset")
	}
}

func TestModelEnterIgnoresBlank(t *testing.T) {
	m, ch := testModel()
	m.input.SetValue("   ")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	select {
	case got := <-ch:
		t.Fatalf("blank input sent: %q", got)
	default:
	}
}
