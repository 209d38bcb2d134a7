package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-pubkit"
	"github.com/alnah/go-pubkit/internal/hints"
)

// runDates localizes the listing dates of a rendered site.
func runDates(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseDatesFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	env.NoColor = env.NoColor || f.common.noColor

	if len(positional) > 2 {
		printDatesUsage(env.Stderr)
		return fmt.Errorf("%w: expected <source-dir> <site-dir>", ErrMissingArgs)
	}

	cfg, err := loadConfig(f.common.config, env)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		cfg.Dates.SourceDir = positional[0]
	}
	if len(positional) > 1 {
		cfg.Dates.SiteDir = positional[1]
	}
	if f.metadataFile != "" {
		cfg.Dates.MetadataFile = f.metadataFile
	}
	if cfg.Dates.SourceDir == "" || cfg.Dates.SiteDir == "" {
		printDatesUsage(env.Stderr)
		return fmt.Errorf("%w: expected <source-dir> <site-dir>", ErrMissingArgs)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p := newPrinter(env.Stdout, env.NoColor, f.common)
	warn := newPrinter(env.Stderr, env.NoColor, f.common)

	p.Info("Reading dates from %s files in %s...", cfg.Dates.MetadataFile, cfg.Dates.SourceDir)

	res, err := pubkit.LocalizeDates(ctx, pubkit.LocalizeOptions{
		SourceDir:    cfg.Dates.SourceDir,
		SiteDir:      cfg.Dates.SiteDir,
		MetadataFile: cfg.Dates.MetadataFile,
		DryRun:       f.dryRun,
	})
	switch {
	case errors.Is(err, pubkit.ErrSourceDirNotFound):
		return fmt.Errorf("%w%s", err, hints.ForSourceDir())
	case errors.Is(err, pubkit.ErrSiteDirNotFound):
		return fmt.Errorf("%w%s", err, hints.ForSiteDir())
	}
	if res != nil {
		for _, w := range res.Warnings {
			warn.Warning("could not read %s: %v", w.Path, w.Err)
		}
	}
	if errors.Is(err, pubkit.ErrNoDates) {
		warn.Warning("no dates found in %s files", cfg.Dates.MetadataFile)
		return nil
	}
	if err != nil {
		return err
	}

	printDateTable(p, res)

	if len(res.Pages) == 0 {
		p.Info("No HTML files found in %s", cfg.Dates.SiteDir)
		return nil
	}

	for _, page := range res.Pages {
		switch {
		case page.Err != nil:
			warn.Error("processing %s: %v", page.Path, page.Err)
		case page.Changed && f.dryRun:
			p.Info("Would convert dates in %s (%d)", page.Path, page.Replaced)
		case page.Changed:
			p.Info("Converted dates in %s", page.Path)
			p.Detail("  %s page, %d date(s) replaced", page.Mode, page.Replaced)
		}
	}

	if f.dryRun {
		p.Success("Dry run: dates would change in %d file(s)", res.Changed())
	} else {
		p.Success("Successfully converted dates in %d file(s)", res.Changed())
	}
	if n := res.Failed(); n > 0 {
		warn.Warning("%d file(s) could not be processed", n)
	}
	return nil
}

// printDateTable lists every folder with its raw and localized date.
func printDateTable(p *printer, res *pubkit.LocalizeResult) {
	folders := res.Folders()
	p.Info("Found dates for %d folders:", len(folders))

	rows := make([][]string, 0, len(folders))
	for _, folder := range folders {
		localized := res.Localized[folder]
		if localized == "" {
			localized = "(unparsable)"
		}
		rows = append(rows, []string{folder, res.Dates[folder], localized})
	}
	p.Table([]string{"FOLDER", "DATE", "JALALI"}, rows)
}
