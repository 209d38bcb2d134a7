package bidi

import (
	"regexp"
	"strconv"
	"strings"
)

// Class is a construct whose matches are hidden from the wrapping rule.
type Class struct {
	Name    string
	Pattern *regexp.Regexp
}

// ProtectedClasses lists the protected constructs in priority order.
var ProtectedClasses = []Class{
	{Name: "link", Pattern: regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)},
	{Name: "image", Pattern: regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)},
	{Name: "fenced-code", Pattern: regexp.MustCompile("(?s)```[^`]*```")},
	{Name: "inline-code", Pattern: regexp.MustCompile("`[^`]+`")},
	{Name: "latex-block", Pattern: regexp.MustCompile("(?s)```\\{=latex\\}.*?```")},
	{Name: "lr-wrapped", Pattern: regexp.MustCompile(`\\LR\{[^}]*\([^)]*[A-Za-z][^)]*\)[^}]*\}`)},
	{Name: "textenglish", Pattern: regexp.MustCompile(`\\textenglish\{[^}]*\([^)]*[A-Za-z][^)]*\)[^}]*\}`)},
}

// sentinelRange is the Unicode private use area searched for a delimiter
// rune absent from the input.
const (
	sentinelFirst rune = 0xE000
	sentinelLast  rune = 0xF8FF
)

// Protector holds the protected-span table of one transform pass.
// Tokens have the form <s>PROTECTED_<n><s> where <s> is a rune that does
// not occur in the text the Protector was created for, so a token can
// never match legitimate content.
type Protector struct {
	sentinel string
	spans    []string
}

// NewProtector creates a Protector whose tokens cannot collide with text.
func NewProtector(text string) *Protector {
	s := sentinelFirst
	for s < sentinelLast && strings.ContainsRune(text, s) {
		s++
	}
	return &Protector{sentinel: string(s)}
}

// Len returns the number of protected spans.
func (p *Protector) Len() int {
	return len(p.spans)
}

func (p *Protector) token(i int) string {
	return p.sentinel + "PROTECTED_" + strconv.Itoa(i) + p.sentinel
}

// Protect replaces every match of class in text with a fresh token.
// Matches are computed once on the incoming text. Each one replaces only
// the first remaining occurrence of its exact text, so duplicate spans
// elsewhere are left for their own matches.
func (p *Protector) Protect(text string, class Class) string {
	for _, match := range class.Pattern.FindAllString(text, -1) {
		idx := strings.Index(text, match)
		if idx < 0 {
			continue
		}
		tok := p.token(len(p.spans))
		p.spans = append(p.spans, match)
		text = text[:idx] + tok + text[idx+len(match):]
	}
	return text
}

// Restore substitutes every token with its original text. Newer spans are
// restored first: a later class may have captured text that already held
// an older token, which is then resolved by the following iterations.
func (p *Protector) Restore(text string) string {
	for i := len(p.spans) - 1; i >= 0; i-- {
		text = strings.ReplaceAll(text, p.token(i), p.spans[i])
	}
	return text
}
