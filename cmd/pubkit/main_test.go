package main

// Notes:
// - run: dispatch and exit codes are tested through buffers. main itself
//   only wires automaxprocs and signals and is not tested.

import (
	"context"
	"strings"
	"testing"
)

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "no arguments", args: nil, wantCode: ExitUsage, wantStderr: "Usage: pubkit"},
		{name: "unknown command", args: []string{"convert"}, wantCode: ExitUsage, wantStderr: "Unknown command: convert"},
		{name: "version", args: []string{"version"}, wantCode: ExitSuccess, wantStdout: "pubkit dev"},
		{name: "help", args: []string{"help"}, wantCode: ExitSuccess, wantStdout: "Commands:"},
		{name: "help for command", args: []string{"help", "serve"}, wantCode: ExitSuccess, wantStdout: "Usage: pubkit serve"},
		{name: "help unknown command", args: []string{"help", "nope"}, wantCode: ExitUsage, wantStderr: "Unknown command: nope"},
		{name: "command -h", args: []string{"bidi", "-h"}, wantCode: ExitSuccess, wantStderr: "Usage: pubkit bidi"},
		{name: "unknown flag", args: []string{"bidi", "--nope", "a.md"}, wantCode: ExitUsage, wantStderr: "Error: invalid usage"},
		{name: "missing bidi input", args: []string{"bidi"}, wantCode: ExitGeneral, wantStderr: "expected <input> [output]"},
		{name: "bidi input not found", args: []string{"bidi", "does-not-exist.md"}, wantCode: ExitGeneral, wantStderr: "input file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := run(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("run() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{args: nil, want: false},
		{args: []string{"serve", "-v"}, want: true},
		{args: []string{"dates", "--verbose", "a", "b"}, want: true},
		{args: []string{"bidi", "--", "-v"}, want: false},
		{args: []string{"bidi", "-vq"}, want: false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%q) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
