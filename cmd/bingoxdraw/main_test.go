package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenLogFileCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bingo.log")
	f, err := openLogFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	f.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestOpenLogFileDirError(t *testing.T) {
	// A regular file where the directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := openLogFile(filepath.Join(blocker, "logs", "bingo.log")); err == nil {
		t.Fatal("expected an error when the log directory cannot be created")
	}
}
