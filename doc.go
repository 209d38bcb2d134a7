// Package pubkit holds the publishing steps of a Persian-language content
// site: fixing bidirectional parentheses in Markdown sources, localizing
// listing dates in the rendered site, post-processing the exported
// mind-map page, and emitting the LaTeX date stamp used by the book build.
//
// # Quick Start
//
// Fix the parentheses of a chapter in place:
//
//	res, err := pubkit.FixBidiFile("chapter.md", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Stats.Wrapped, "spans wrapped")
//
// Localize every listing date of a rendered site:
//
//	res, err := pubkit.LocalizeDates(ctx, pubkit.LocalizeOptions{
//	    SourceDir: "source",
//	    SiteDir:   "output/site",
//	})
//
// Emit the date macro for the LaTeX preamble:
//
//	fmt.Println(pubkit.DateStampLine(time.Now, ""))
//
// # Failure Model
//
// Missing or unreadable inputs are errors. Unparsable domain data (a date
// string in a sidecar file, a page without a known folder) is skipped and
// leaves the content unchanged. The date stamp never fails: any problem
// yields a fallback macro so the document build keeps going.
//
// # Writes
//
// Every output file is written atomically through a temporary file in the
// destination directory, so an interrupted run never leaves a truncated
// page behind.
package pubkit
