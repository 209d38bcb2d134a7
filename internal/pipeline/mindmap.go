package pipeline

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InsertionStrategy identifies where the mind-map script was placed.
type InsertionStrategy int

// Strategies in the order they are tried.
const (
	// StrategyNone means no insertion point was found.
	StrategyNone InsertionStrategy = iota
	// StrategyLegacyBlock replaces the exported dark-mode check.
	StrategyLegacyBlock
	// StrategyMarkmapAnchor inserts before the markmap bootstrap call.
	StrategyMarkmapAnchor
	// StrategyLastScriptTag inserts before the last </script>.
	StrategyLastScriptTag
)

func (s InsertionStrategy) String() string {
	switch s {
	case StrategyLegacyBlock:
		return "legacy dark-mode block"
	case StrategyMarkmapAnchor:
		return "markmap anchor"
	case StrategyLastScriptTag:
		return "last script tag"
	default:
		return "none"
	}
}

// scriptIndent separates inserted code from the anchor that follows it.
const scriptIndent = "\n            "

var (
	// FontPattern matches the exported root font-family rule.
	FontPattern = regexp.MustCompile(`(?s)html \{\s+font-family:[^;]+;\s+\}`)

	legacyDarkModePattern = regexp.MustCompile(
		`(?s)if \(window\.matchMedia\("\(prefers-color-scheme: dark\)"\)\.matches\) \{[^}]+\}`)
	markmapAnchorPattern = regexp.MustCompile(`\}\)\(\(\) => window\.markmap,null,\{`)
)

// insertion is one way of placing a script into a document.
type insertion struct {
	strategy InsertionStrategy
	apply    func(content, script string) (string, bool)
}

var insertions = []insertion{
	{StrategyLegacyBlock, replaceLegacyBlock},
	{StrategyMarkmapAnchor, insertBeforeAnchor},
	{StrategyLastScriptTag, insertBeforeLastScript},
}

// SwapFont replaces every root font-family rule with block.
// Reports whether a rule was found.
func SwapFont(content, block string) (string, bool) {
	if !FontPattern.MatchString(content) {
		return content, false
	}
	return FontPattern.ReplaceAllLiteralString(content, block), true
}

// InjectScript places script into content using the first strategy that
// finds its insertion point. With StrategyNone the content is returned
// unchanged.
func InjectScript(content, script string) (string, InsertionStrategy) {
	for _, ins := range insertions {
		if out, ok := ins.apply(content, script); ok {
			return out, ins.strategy
		}
	}
	return content, StrategyNone
}

func replaceLegacyBlock(content, script string) (string, bool) {
	if !legacyDarkModePattern.MatchString(content) {
		return content, false
	}
	return legacyDarkModePattern.ReplaceAllLiteralString(content, script), true
}

func insertBeforeAnchor(content, script string) (string, bool) {
	if !markmapAnchorPattern.MatchString(content) {
		return content, false
	}
	out := markmapAnchorPattern.ReplaceAllStringFunc(content, func(anchor string) string {
		return script + scriptIndent + anchor
	})
	return out, true
}

func insertBeforeLastScript(content, script string) (string, bool) {
	idx := lastScriptEnd(content)
	if idx < 0 {
		return content, false
	}
	return content[:idx] + script + scriptIndent + content[idx:], true
}

// lastScriptEnd returns the byte offset of the last </script> end tag, or
// -1. Script bodies are read as raw text, so tags spelled out inside a
// script do not count.
func lastScriptEnd(content string) int {
	z := html.NewTokenizer(strings.NewReader(content))

	offset, last := 0, -1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				return -1
			}
			return last
		}

		raw := z.Raw()
		if tt == html.EndTagToken {
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.Script {
				last = offset
			}
		}
		offset += len(raw)
	}
}

// MindmapOptions configures ConvertMindmap.
type MindmapOptions struct {
	// FontBlock replaces the root font-family rule. Empty skips the swap.
	FontBlock string
	// Script is the code injected into the page.
	Script string
}

// MindmapResult is the outcome of ConvertMindmap.
type MindmapResult struct {
	Content   string
	Strategy  InsertionStrategy
	FontFound bool
}

// ConvertMindmap swaps the font rule and injects the script.
func ConvertMindmap(content string, opts MindmapOptions) MindmapResult {
	var res MindmapResult
	if opts.FontBlock != "" {
		content, res.FontFound = SwapFont(content, opts.FontBlock)
	}
	res.Content, res.Strategy = InjectScript(content, opts.Script)
	return res
}
