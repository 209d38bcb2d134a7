// Package pipeline holds the text rewrites applied to rendered site pages.
//
// Two families of rewrites live here:
//   - listing dates: Gregorian dates in listing-date divs are replaced by
//     their Jalali rendering, either per index entry or for a whole page
//   - mind-maps: the exported markmap page gets a new root font and the
//     theme-detection and auto-fit script
//
// The functions are pure string transforms; reading and writing files is
// left to the root pubkit package.
package pipeline
