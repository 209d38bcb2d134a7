package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	noColor bool
}

// bidiFlags holds flags for the bidi command.
type bidiFlags struct {
	common commonFlags
	stats  bool
}

// datesFlags holds flags for the dates command.
type datesFlags struct {
	common       commonFlags
	metadataFile string
	dryRun       bool
}

// mindmapFlags holds flags for the mindmap command.
type mindmapFlags struct {
	common    commonFlags
	assetPath string
}

// datestampFlags holds flags for the datestamp command.
type datestampFlags struct {
	common commonFlags
	date   string
	macro  string
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common   commonFlags
	dir      string
	host     string
	port     int
	attempts int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show details")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlagSet parses args, marking parse failures as usage errors.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

func parseBidiFlags(args []string, w io.Writer) (*bidiFlags, []string, error) {
	f := &bidiFlags{}
	fs := newFlagSet("bidi", w, printBidiUsage)
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.stats, "stats", false, "report protected, wrapped and URL spans")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseDatesFlags(args []string, w io.Writer) (*datesFlags, []string, error) {
	f := &datesFlags{}
	fs := newFlagSet("dates", w, printDatesUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.metadataFile, "metadata", "m", "", "sidecar file name (default: metadata.yml)")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "report changes without writing")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseMindmapFlags(args []string, w io.Writer) (*mindmapFlags, []string, error) {
	f := &mindmapFlags{}
	fs := newFlagSet("mindmap", w, printMindmapUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding the embedded snippets")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseDatestampFlags(args []string, w io.Writer) (*datestampFlags, []string, error) {
	f := &datestampFlags{}
	fs := newFlagSet("datestamp", w, printDatestampUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.date, "date", "d", "", "Gregorian date YYYY-MM-DD (default: today)")
	fs.StringVar(&f.macro, "macro", "", "macro name without backslash")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseServeFlags(args []string, w io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := newFlagSet("serve", w, printServeUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.dir, "dir", "d", "", "directory to serve")
	fs.StringVar(&f.host, "host", "", "interface to bind (default: all)")
	fs.IntVarP(&f.port, "port", "p", 0, "first port to try")
	fs.IntVar(&f.attempts, "attempts", 0, "number of consecutive ports to try")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
