package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// printer writes command output, coloring status lines.
// Colors are off when the writer is not a terminal, when NO_COLOR is set
// or when --no-color is passed.
type printer struct {
	out     io.Writer
	quiet   bool
	verbose bool
	green   *color.Color
	yellow  *color.Color
	red     *color.Color
	bold    *color.Color
}

func newPrinter(out io.Writer, noColor bool, common commonFlags) *printer {
	p := &printer{
		out:     out,
		quiet:   common.quiet,
		verbose: common.verbose,
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgRed),
		bold:    color.New(color.Bold),
	}
	if noColor || common.noColor {
		for _, c := range []*color.Color{p.green, p.yellow, p.red, p.bold} {
			c.DisableColor()
		}
	}
	return p
}

// Info prints a plain line unless quiet.
func (p *printer) Info(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Detail prints a plain line in verbose mode only.
func (p *printer) Detail(format string, args ...any) {
	if !p.verbose || p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a green line unless quiet.
func (p *printer) Success(format string, args ...any) {
	if p.quiet {
		return
	}
	p.green.Fprintf(p.out, format+"\n", args...)
}

// Warning prints a yellow "Warning:" line unless quiet.
func (p *printer) Warning(format string, args ...any) {
	if p.quiet {
		return
	}
	p.yellow.Fprintf(p.out, "Warning: "+format+"\n", args...)
}

// Error prints a red "Error:" line, quiet or not.
func (p *printer) Error(format string, args ...any) {
	p.red.Fprintf(p.out, "Error: "+format+"\n", args...)
}

// Table prints aligned rows under a bold header unless quiet.
func (p *printer) Table(headers []string, rows [][]string) {
	if p.quiet {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = displayWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && displayWidth(cell) > widths[i] {
				widths[i] = displayWidth(cell)
			}
		}
	}

	p.bold.Fprintln(p.out, "  "+padRow(headers, widths))
	for _, row := range rows {
		fmt.Fprintln(p.out, "  "+padRow(row, widths))
	}
}

func padRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cell)
		if i < len(cells)-1 && i < len(widths) {
			b.WriteString(strings.Repeat(" ", max(widths[i]-displayWidth(cell), 0)))
		}
	}
	return b.String()
}

// displayWidth counts runes, which is close enough for Latin and Persian
// cells in a monospace terminal.
func displayWidth(s string) int {
	return utf8.RuneCountInString(s)
}
