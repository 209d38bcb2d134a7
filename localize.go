package pubkit

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-pubkit/internal/dateutil"
	"github.com/alnah/go-pubkit/internal/fileutil"
	"github.com/alnah/go-pubkit/internal/metadata"
	"github.com/alnah/go-pubkit/internal/pipeline"
)

// IndexPageName is the file name of listing pages.
const IndexPageName = "index.html"

// PagePattern selects the rendered pages below the site directory.
const PagePattern = "**/*.html"

// PageMode tells how a page's listing dates are attributed to folders.
type PageMode int

const (
	// PageItem pages take the date of the folder they live in.
	PageItem PageMode = iota
	// PageIndex pages attribute each listing date to the closest item link.
	PageIndex
)

func (m PageMode) String() string {
	if m == PageIndex {
		return "index"
	}
	return "item"
}

// LocalizeOptions configures LocalizeDates.
type LocalizeOptions struct {
	SourceDir    string
	SiteDir      string
	MetadataFile string // sidecar file name; empty = metadata.yml
	DryRun       bool   // report changes without writing
}

// PageResult describes one rendered page.
type PageResult struct {
	Path     string
	Mode     PageMode
	Folder   string // item pages only
	Replaced int    // listing-date divs rewritten
	Changed  bool
	Err      error
}

// LocalizeResult describes one LocalizeDates run.
type LocalizeResult struct {
	// Dates maps folder names to the raw Gregorian dates of their sidecars.
	Dates map[string]string
	// Localized maps folder names to their Jalali rendering; unparsable
	// dates map to "".
	Localized map[string]string
	// Pages lists every rendered page in lexical order.
	Pages []PageResult
	// Warnings lists sidecar files that could not be read.
	Warnings []metadata.Warning
}

// Folders returns the folder names of Dates in sorted order.
func (r *LocalizeResult) Folders() []string {
	folders := make([]string, 0, len(r.Dates))
	for f := range r.Dates {
		folders = append(folders, f)
	}
	sort.Strings(folders)
	return folders
}

// Changed counts the pages whose content changed.
func (r *LocalizeResult) Changed() int {
	n := 0
	for _, p := range r.Pages {
		if p.Changed && p.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts the pages that could not be processed.
func (r *LocalizeResult) Failed() int {
	n := 0
	for _, p := range r.Pages {
		if p.Err != nil {
			n++
		}
	}
	return n
}

// LocalizeDates replaces the Gregorian listing dates of a rendered site
// with their Jalali rendering, using the date fields of the sidecar files
// in the source tree. Pages are processed one at a time in lexical order
// and only changed pages are written. A page that cannot be read or
// written is recorded in its PageResult and does not stop the run.
//
// When no sidecar carries a date, the result is returned with ErrNoDates.
func LocalizeDates(ctx context.Context, opts LocalizeOptions) (*LocalizeResult, error) {
	if !fileutil.DirExists(opts.SourceDir) {
		return nil, fmt.Errorf("%w: %s", ErrSourceDirNotFound, opts.SourceDir)
	}
	if !fileutil.DirExists(opts.SiteDir) {
		return nil, fmt.Errorf("%w: %s", ErrSiteDirNotFound, opts.SiteDir)
	}

	scan, err := metadata.Scan(ctx, opts.SourceDir, opts.MetadataFile)
	if err != nil {
		return nil, err
	}

	result := &LocalizeResult{
		Dates:     scan.Dates,
		Localized: make(map[string]string, len(scan.Dates)),
		Warnings:  scan.Warnings,
	}
	for folder, date := range scan.Dates {
		localized, _ := dateutil.LocalizeGregorian(date)
		result.Localized[folder] = localized
	}

	if len(scan.Dates) == 0 {
		return result, ErrNoDates
	}

	pages, err := findPages(opts.SiteDir)
	if err != nil {
		return nil, err
	}

	for _, rel := range pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		page := localizePage(filepath.Join(opts.SiteDir, filepath.FromSlash(rel)), rel, scan.Dates, result.Localized, opts.DryRun)
		result.Pages = append(result.Pages, page)
	}

	return result, nil
}

// findPages lists the HTML pages below siteDir as slash-separated
// relative paths in lexical order.
func findPages(siteDir string) ([]string, error) {
	pages, err := doublestar.Glob(os.DirFS(siteDir), PagePattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", siteDir, err)
	}
	sort.Strings(pages)
	return pages, nil
}

// pageFolder returns the mode of a page and, for item pages, its folder:
// the parent directory name, or the file stem for pages directly in the
// site root.
func pageFolder(rel string) (PageMode, string) {
	base := path.Base(rel)
	if base == IndexPageName {
		return PageIndex, ""
	}

	dir := path.Dir(rel)
	if dir == "." {
		return PageItem, strings.TrimSuffix(base, path.Ext(base))
	}
	return PageItem, path.Base(dir)
}

func localizePage(full, rel string, dates, localized map[string]string, dryRun bool) PageResult {
	mode, folder := pageFolder(rel)
	res := PageResult{Path: full, Mode: mode, Folder: folder}

	data, err := os.ReadFile(full) // #nosec G304 -- discovered below the site directory
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		return res
	}
	content := string(data)

	var out string
	switch mode {
	case PageIndex:
		out, res.Replaced = pipeline.RewriteIndexDates(content, dates)
	default:
		date := localized[folder]
		if date == "" {
			return res
		}
		out, res.Replaced = pipeline.RewriteItemDates(content, date)
	}

	if out == content {
		return res
	}
	res.Changed = true

	if dryRun {
		return res
	}
	if err := fileutil.WriteFileAtomic(full, []byte(out)); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return res
}
