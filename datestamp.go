package pubkit

import (
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-pubkit/internal/dateutil"
)

// DefaultMacro is the control word defined by the date stamp.
const DefaultMacro = "jalalidate"

// UnknownDate is the macro body used when the date cannot be produced.
const UnknownDate = "تاریخ نامشخص"

var macroName = regexp.MustCompile(`^[A-Za-z]+$`)

// latexEscaper works in a single pass; replacement text is never rescanned.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`#`, `\#`,
	`$`, `\$`,
	`%`, `\%`,
	`&`, `\&`,
	`_`, `\_`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes the characters with special meaning to LaTeX.
func EscapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

// JalaliDateMacro returns a \def line binding macro to the Jalali
// rendering of now, e.g. \def\jalalidate{۲۵ دی ۱۴۰۲}. An empty or invalid
// macro name uses DefaultMacro. It never fails: a zero time or any panic
// during conversion yields FallbackMacro.
func JalaliDateMacro(now time.Time, macro string) (line string) {
	macro = normalizeMacro(macro)

	defer func() {
		if recover() != nil {
			line = FallbackMacro(macro)
		}
	}()

	if now.IsZero() {
		return FallbackMacro(macro)
	}

	date := dateutil.FormatJalali(now)
	if date == "" {
		return FallbackMacro(macro)
	}
	return define(macro, EscapeLaTeX(date))
}

// DateStampLine is JalaliDateMacro for the time returned by now.
// A nil or panicking clock yields FallbackMacro.
func DateStampLine(now func() time.Time, macro string) (line string) {
	defer func() {
		if recover() != nil {
			line = FallbackMacro(macro)
		}
	}()

	if now == nil {
		return FallbackMacro(macro)
	}
	return JalaliDateMacro(now(), macro)
}

// FallbackMacro defines macro as UnknownDate.
func FallbackMacro(macro string) string {
	return define(normalizeMacro(macro), UnknownDate)
}

func define(macro, body string) string {
	return `\def\` + macro + `{` + body + `}`
}

func normalizeMacro(macro string) string {
	if !macroName.MatchString(macro) {
		return DefaultMacro
	}
	return macro
}
