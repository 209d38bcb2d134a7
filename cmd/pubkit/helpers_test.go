package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-pubkit/internal/config"
)

// fixedNow is 2024-01-15, 25 Dey 1402.
var fixedNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

// testEnv returns an Environment writing to buffers with colors off.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Now:     func() time.Time { return fixedNow },
		Stdout:  stdout,
		Stderr:  stderr,
		Config:  config.DefaultConfig(),
		NoColor: true,
	}
	return env, stdout, stderr
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
