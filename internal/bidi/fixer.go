// Package bidi fixes the rendering of Latin text in parentheses inside
// right-to-left Persian prose.
//
// The LaTeX bidi package mirrors parentheses around left-to-right runs
// embedded in right-to-left paragraphs. Fix wraps each parenthesized span
// holding Latin letters in \LR{...} so it is typeset left to right.
// Markdown links, images, code, raw LaTeX blocks and spans already wrapped
// in \LR or \textenglish are first swapped for placeholder tokens by a
// Protector, then restored once the wrapping rule has run.
package bidi

import (
	"regexp"
	"strings"
)

// Marker is the LaTeX command that forces left-to-right direction.
const Marker = `\LR`

var (
	// parenthesized matches a single-level (...) span with a Latin letter.
	// Nested parentheses are not balanced: "(a (b) c)" matches "(a (b)".
	parenthesized = regexp.MustCompile(`\(([^)]*[A-Za-z][^)]*)\)`)

	latinLetter   = regexp.MustCompile(`[A-Za-z]`)
	persianLetter = regexp.MustCompile(`[\x{0600}-\x{06FF}]`)
)

// Stats reports what one Fix pass did.
type Stats struct {
	Protected int // spans hidden from the wrapping rule
	Wrapped   int // spans wrapped in Marker
	URLs      int // parenthesized URLs left unchanged
}

// Fix wraps every parenthesized span containing Latin letters in \LR{...},
// leaving URLs and protected constructs unchanged.
func Fix(text string) string {
	out, _ := FixWithStats(text)
	return out
}

// FixWithStats is Fix that also reports counts for the pass.
func FixWithStats(text string) (string, Stats) {
	var stats Stats

	p := NewProtector(text)
	for _, class := range ProtectedClasses {
		text = p.Protect(text, class)
	}
	stats.Protected = p.Len()

	text = parenthesized.ReplaceAllStringFunc(text, func(span string) string {
		content := span[1 : len(span)-1]
		if IsURL(content) {
			stats.URLs++
			return span
		}
		if !ContainsLatin(content) {
			return span
		}
		stats.Wrapped++
		return Marker + "{(" + content + ")}"
	})

	return p.Restore(text), stats
}

// IsURL reports whether the content of a parenthesized span is a URL.
func IsURL(content string) bool {
	return strings.Contains(content, "://") ||
		strings.HasPrefix(strings.TrimSpace(content), "http")
}

// ContainsLatin reports whether s contains an ASCII letter.
func ContainsLatin(s string) bool {
	return latinLetter.MatchString(s)
}

// ContainsPersian reports whether s contains a character of the Arabic
// Unicode block, which covers Persian letters and digits.
func ContainsPersian(s string) bool {
	return persianLetter.MatchString(s)
}
