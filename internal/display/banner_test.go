package display

import (
	"strings"
	"testing"
)

func TestRenderBannerCentres(t *testing.T) {
	out := renderBanner("ab\nabcd\n", 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// Widest line is 4 wide, so both lines get (10-4)/2 = 3 spaces.
	for _, l := range lines {
		if !strings.HasPrefix(l, "   ") || strings.HasPrefix(l, "    ") {
			t.Errorf("line %q not padded by 3", l)
		}
	}
}

func TestRenderBannerNarrowTerminal(t *testing.T) {
	out := renderBanner("abcdef", 3)
	if strings.HasPrefix(out, " ") {
		t.Fatalf("unexpected padding: %q", out)
	}
}
