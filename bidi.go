package pubkit

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-pubkit/internal/bidi"
	"github.com/alnah/go-pubkit/internal/fileutil"
)

// BidiResult describes one FixBidiFile run.
type BidiResult struct {
	Input   string
	Output  string
	Stats   bidi.Stats
	Changed bool
	Persian bool // input contains Arabic-script letters
}

// FixBidiFile wraps the Latin parenthesized spans of a Markdown file in
// LTR markers and writes the result to out, or back to in when out is
// empty. The output is written even when nothing changed.
func FixBidiFile(in, out string) (*BidiResult, error) {
	if out == "" {
		out = in
	}

	data, err := os.ReadFile(in) // #nosec G304 -- user-provided input
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, in)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	fixed, stats := bidi.FixWithStats(string(data))

	if err := fileutil.WriteFileAtomic(out, []byte(fixed)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return &BidiResult{
		Input:   in,
		Output:  out,
		Stats:   stats,
		Changed: fixed != string(data),
		Persian: bidi.ContainsPersian(string(data)),
	}, nil
}
