package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-pubkit/internal/dateutil"
)

// LinkSearchWindow is how many characters before a listing-date div are
// searched for the link naming its folder.
const LinkSearchWindow = 500

var (
	// ListingDatePattern matches a listing-date div. Groups: opening tag
	// with leading whitespace, date text, trailing whitespace with closing tag.
	ListingDatePattern = regexp.MustCompile(`(?s)(<div class="listing-date">\s*)(.*?)(\s*</div>)`)

	// LinkPattern matches a relative link to an item folder. Group 1 is the
	// folder name.
	LinkPattern = regexp.MustCompile(`<a href="\./([^/]+)/`)
)

// RewriteIndexDates localizes the listing-date divs of an index page.
// Each div is attributed to the closest item link in the LinkSearchWindow
// characters before it, and the Gregorian date of that folder is rendered
// in the Jalali calendar. Divs with no link, an unknown folder, an
// unparsable date, or an already localized value are left untouched.
// Returns the rewritten content and the number of divs changed.
func RewriteIndexDates(content string, dates map[string]string) (string, int) {
	matches := ListingDatePattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content))

	last, changed := 0, 0
	for _, m := range matches {
		start := m[0]
		folder, ok := folderBefore(content, start)
		if !ok {
			continue
		}
		gregorian, ok := dates[folder]
		if !ok {
			continue
		}
		localized, ok := dateutil.LocalizeGregorian(gregorian)
		if !ok {
			continue
		}

		current := strings.TrimSpace(content[m[4]:m[5]])
		if localized == current {
			continue
		}

		b.WriteString(content[last:m[4]])
		b.WriteString(localized)
		last = m[5]
		changed++
	}

	if changed == 0 {
		return content, 0
	}
	b.WriteString(content[last:])
	return b.String(), changed
}

// RewriteItemDates replaces the text of every listing-date div with
// localized, keeping the whitespace around it. Returns the rewritten
// content and the number of divs found.
func RewriteItemDates(content, localized string) (string, int) {
	count := 0
	out := ListingDatePattern.ReplaceAllStringFunc(content, func(div string) string {
		count++
		sub := ListingDatePattern.FindStringSubmatch(div)
		return sub[1] + localized + sub[3]
	})
	return out, count
}

// folderBefore returns the folder of the last item link that starts in
// the window before offset.
func folderBefore(content string, offset int) (string, bool) {
	from := windowStart(content, offset, LinkSearchWindow)

	links := LinkPattern.FindAllStringSubmatch(content[from:offset], -1)
	if len(links) == 0 {
		return "", false
	}
	return links[len(links)-1][1], true
}

// windowStart walks back n runes from offset and returns the byte index.
func windowStart(s string, offset, n int) int {
	i := offset
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return i
}
