package speech

import (
	"slices"
	"testing"
)

func TestLineDrawn(t *testing.T) {
	tests := []struct {
		prefix string
		n      int
		want   string
	}{
		{"Número", 42, "Número 42!"},
		{"Number", 7, "Number 7!"},
		{"", 3, "3!"},
	}
	for _, tt := range tests {
		if got := LineDrawn(tt.prefix, tt.n); got != tt.want {
			t.Errorf("LineDrawn(%q, %d) = %q, want %q", tt.prefix, tt.n, got, tt.want)
		}
	}
}

func TestDrawLines(t *testing.T) {
	got := DrawLines("Number", []int{1, 2})
	if !slices.Equal(got, []string{"Number 1!", "Number 2!"}) {
		t.Fatalf("got %v", got)
	}
}
