package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pubkit <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  bidi       Wrap Latin parenthesized spans of a Markdown file in \\LR{}")
	fmt.Fprintln(w, "  dates      Replace listing dates of a rendered site with Jalali dates")
	fmt.Fprintln(w, "  mindmap    Swap the font and inject the theme script of a mind-map page")
	fmt.Fprintln(w, "  datestamp  Print a LaTeX macro holding today's Jalali date")
	fmt.Fprintln(w, "  serve      Serve a directory over HTTP for local preview")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pubkit help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show details")
	fmt.Fprintln(w, "      --no-color            Disable colored output")
}

func printBidiUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pubkit bidi <input> [output] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Wrap parenthesized spans containing Latin letters in \\LR{...}.")
	fmt.Fprintln(w, "Links, images, code, raw LaTeX and existing markers are left unchanged.")
	fmt.Fprintln(w, "Without output, the input file is modified in place.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --stats               Report protected, wrapped and URL spans")
	printCommonUsage(w)
}

func printDatesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pubkit dates <source-dir> <site-dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read the date of every metadata.yml below source-dir and replace the")
	fmt.Fprintln(w, "listing dates of the HTML pages below site-dir with Jalali dates.")
	fmt.Fprintln(w, "Both directories default to dates.sourceDir and dates.siteDir of the config.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example: pubkit dates source output/site")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -m, --metadata <name>     Sidecar file name (default: metadata.yml)")
	fmt.Fprintln(w, "  -n, --dry-run             Report changes without writing")
	printCommonUsage(w)
}

func printMindmapUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pubkit mindmap [input] [output] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Set the mind-map font to Vazirmatn and inject the theme detection and")
	fmt.Fprintln(w, "auto-fit script into an exported markmap page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Exported page (default: source/Episode-02/mindmap.html)")
	fmt.Fprintln(w, "  output    Rewritten page (default: source/Episode-02/mindmap_auto.html)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with snippets/ and styles/ overrides")
	printCommonUsage(w)
}

func printDatestampUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pubkit datestamp [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print \\def\\jalalidate{...} with the Jalali date in Persian digits.")
	fmt.Fprintln(w, "When the date cannot be computed the macro holds a fixed placeholder;")
	fmt.Fprintln(w, "the command always exits 0.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --date <YYYY-MM-DD>   Gregorian date (default: today)")
	fmt.Fprintln(w, "      --macro <name>        Macro name (default: jalalidate)")
	printCommonUsage(w)
}

func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pubkit serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve a directory over HTTP. Busy ports are skipped; client disconnects")
	fmt.Fprintln(w, "are not logged. Stop with Ctrl+C.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --dir <path>          Directory to serve (default: .)")
	fmt.Fprintln(w, "      --host <addr>         Interface to bind (default: all)")
	fmt.Fprintln(w, "  -p, --port <n>            First port to try (default: 8000)")
	fmt.Fprintln(w, "      --attempts <n>        Consecutive ports to try (default: 10)")
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "bidi":
		printBidiUsage(env.Stdout)
	case "dates":
		printDatesUsage(env.Stdout)
	case "mindmap":
		printMindmapUsage(env.Stdout)
	case "datestamp":
		printDatestampUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: pubkit version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: pubkit help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
