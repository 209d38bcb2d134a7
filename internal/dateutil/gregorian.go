package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnparsableDate indicates that no accepted Gregorian format matched.
var ErrUnparsableDate = errors.New("unparsable date")

// GregorianFormats lists the accepted input formats in priority order.
// The first format that parses wins. Single-letter day and month tokens
// accept both padded and unpadded values.
var GregorianFormats = []string{
	"YYYY-M-D",     // 2024-01-15 (metadata.yml)
	"MMM D, YYYY",  // Jan 15, 2024
	"MMMM D, YYYY", // January 15, 2024
	"D MMM YYYY",   // 15 Jan 2024
	"D MMMM YYYY",  // 15 January 2024
}

// gregorianLayouts holds GregorianFormats converted to Go layouts.
var gregorianLayouts = mustLayouts(GregorianFormats)

func mustLayouts(formats []string) []string {
	layouts := make([]string, 0, len(formats))
	for _, f := range formats {
		layout, err := Layout(f)
		if err != nil {
			panic(fmt.Sprintf("dateutil: bad built-in format %q: %v", f, err))
		}
		layouts = append(layouts, layout)
	}
	return layouts
}

// ParseGregorian parses s with the first matching entry of GregorianFormats.
// Surrounding whitespace is ignored. The result is at midnight UTC.
func ParseGregorian(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnparsableDate)
	}

	for _, layout := range gregorianLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableDate, s)
}
