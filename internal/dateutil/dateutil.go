// Package dateutil parses Gregorian dates and renders them in the Jalali
// (Persian solar) calendar with Persian digits.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDateFormat indicates a malformed token format.
var ErrInvalidDateFormat = errors.New("invalid date format")

// layoutTokens maps format tokens to Go reference-time fragments,
// longest token first so that MMMM wins over MMM and MM.
var layoutTokens = []struct {
	token, layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Layout converts a token format such as "MMM D, YYYY" to a Go layout.
// Text inside brackets is copied literally; other characters pass through.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: empty format", ErrInvalidDateFormat)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if after, ok := strings.CutPrefix(rest, "["); ok {
			literal, tail, closed := strings.Cut(after, "]")
			if !closed {
				return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, format)
			}
			b.WriteString(literal)
			rest = tail
			continue
		}

		n := 1
		fragment := rest[:1]
		for _, t := range layoutTokens {
			if strings.HasPrefix(rest, t.token) {
				n, fragment = len(t.token), t.layout
				break
			}
		}
		b.WriteString(fragment)
		rest = rest[n:]
	}

	return b.String(), nil
}
