// Package metadata builds the folder to publication date lookup from the
// metadata.yml sidecar files of a source tree.
package metadata

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-pubkit/internal/yamlutil"
)

// DefaultFileName is the sidecar file name searched in the source tree.
const DefaultFileName = "metadata.yml"

// dateKey is the metadata field holding the Gregorian publication date.
const dateKey = "date"

// Warning records a sidecar file that could not be read.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("could not read %s: %v", w.Path, w.Err)
}

// Result is the outcome of a Scan.
type Result struct {
	// Dates maps a folder name to the raw date string of its sidecar.
	Dates map[string]string
	// Files is the number of sidecar files found.
	Files int
	// Warnings lists sidecars that were skipped.
	Warnings []Warning
}

// Folders returns the folder names of Dates in sorted order.
func (r *Result) Folders() []string {
	folders := make([]string, 0, len(r.Dates))
	for f := range r.Dates {
		folders = append(folders, f)
	}
	sort.Strings(folders)
	return folders
}

// Scan finds every fileName below sourceDir and maps the name of the
// folder holding it to its date field. A missing sourceDir yields an empty
// result. Sidecars without a date are ignored; unreadable ones are
// recorded as warnings. When two folders share a name the later path in
// lexical order wins.
func Scan(ctx context.Context, sourceDir, fileName string) (*Result, error) {
	if fileName == "" {
		fileName = DefaultFileName
	}

	result := &Result{Dates: map[string]string{}}

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", sourceDir, err)
	}
	if info, err := os.Stat(absSource); err != nil || !info.IsDir() {
		return result, nil
	}

	matches, err := doublestar.Glob(os.DirFS(absSource), path.Join("**", fileName))
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", sourceDir, err)
	}
	sort.Strings(matches)

	for _, rel := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		full := filepath.Join(absSource, filepath.FromSlash(rel))
		result.Files++

		data, err := os.ReadFile(full) // #nosec G304 -- path discovered under sourceDir
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Path: full, Err: err})
			continue
		}

		date, ok := ParseDate(data)
		if !ok {
			continue
		}
		result.Dates[filepath.Base(filepath.Dir(full))] = date
	}

	return result, nil
}

// ParseDate extracts the top-level date field of a sidecar file.
// Valid YAML is decoded with yamlutil; anything else falls back to a
// line scan of "key: value" pairs.
func ParseDate(data []byte) (string, bool) {
	fields, err := yamlutil.Fields(data)
	if err != nil {
		return scanDate(string(data))
	}

	v, ok := fields[dateKey]
	if !ok {
		return "", false
	}
	return stringify(v)
}

func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(val)
		return s, s != ""
	case time.Time:
		return val.Format("2006-01-02"), true
	default:
		return fmt.Sprint(val), true
	}
}

// scanDate reads "key: value" lines, skipping comments and stripping
// quotes. The last date line wins.
func scanDate(content string) (string, bool) {
	var date string
	found := false

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) != dateKey {
			continue
		}
		date = strings.Trim(strings.TrimSpace(value), `"'`)
		found = true
	}

	return date, found && date != ""
}
