package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		common commonFlags
		want   []string
		absent []string
	}{
		{
			name:   "default",
			want:   []string{"info", "done-msg", "Warning: careful", "Error: broken"},
			absent: []string{"detail"},
		},
		{
			name:   "verbose",
			common: commonFlags{verbose: true},
			want:   []string{"info", "detail", "done-msg"},
		},
		{
			name:   "quiet keeps errors only",
			common: commonFlags{quiet: true, verbose: true},
			want:   []string{"Error: broken"},
			absent: []string{"info", "detail", "done-msg", "careful"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			p := newPrinter(&buf, true, tt.common)
			p.Info("info")
			p.Detail("detail")
			p.Success("done-msg")
			p.Warning("careful")
			p.Error("broken")

			got := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output %q missing %q", got, w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(got, a) {
					t.Errorf("output %q should not contain %q", got, a)
				}
			}
		})
	}
}

func TestPrinter_NoColorHasNoEscapes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := newPrinter(&buf, false, commonFlags{noColor: true})
	p.Success("done-msg")
	p.Error("broken")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("output %q contains ANSI escapes", buf.String())
	}
}

func TestPrinter_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := newPrinter(&buf, true, commonFlags{})
	p.Table([]string{"FOLDER", "DATE"}, [][]string{
		{"001-Item", "2024-01-15"},
		{"a", "۲۵ دی ۱۴۰۲"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}
	want := []string{
		"  FOLDER    DATE",
		"  001-Item  2024-01-15",
		"  a         ۲۵ دی ۱۴۰۲",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
