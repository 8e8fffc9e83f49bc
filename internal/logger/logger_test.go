package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{LevelOff, false, false},
		{LevelNormal, false, true},
		{LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)
			log.Debug("dbg %d", 1)
			log.Info("inf %d", 2)

			out := buf.String()
			if got := strings.Contains(out, "[DBG] "); got != tt.wantDebug {
				t.Errorf("debug written=%v, want %v (out=%q)", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "[INF] "); got != tt.wantInfo {
				t.Errorf("info written=%v, want %v (out=%q)", got, tt.wantInfo, out)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelOff, &buf)
	log.Warn("hidden")
	log.SetLevel(LevelNormal)
	log.Warn("shown")

	if log.GetLevel() != LevelNormal {
		t.Fatalf("expected level normal, got %s", log.GetLevel())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Fatal("message logged while level was off")
	}
	if !strings.Contains(buf.String(), "[WRN] ") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		verbose, quiet bool
		want           Level
	}{
		{false, false, LevelNormal},
		{true, false, LevelVerbose},
		{false, true, LevelOff},
		{true, true, LevelOff},
	}
	for _, tt := range tests {
		if got := LevelFromFlags(tt.verbose, tt.quiet); got != tt.want {
			t.Errorf("LevelFromFlags(%v, %v) = %s, want %s", tt.verbose, tt.quiet, got, tt.want)
		}
	}
}
