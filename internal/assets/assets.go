package assets

import "strings"

// Built-in asset names.
const (
	SnippetThemeDetect = "theme-detect"
	SnippetAutofit     = "autofit"
	StyleFont          = "font"
)

// MindmapAssets holds the pieces injected into a mind-map page.
type MindmapAssets struct {
	// Script is the theme-detection code followed by the auto-fit code.
	Script string
	// FontBlock replaces the root font-family rule.
	FontBlock string
}

// LoadMindmapAssets loads the mind-map snippets and font rule from loader.
func LoadMindmapAssets(loader Loader) (*MindmapAssets, error) {
	script, err := MindmapScript(loader)
	if err != nil {
		return nil, err
	}

	font, err := loader.Load(Style, StyleFont)
	if err != nil {
		return nil, err
	}

	return &MindmapAssets{Script: script, FontBlock: trimEOL(font)}, nil
}

// MindmapScript joins the theme-detection and auto-fit snippets with a
// blank line between them.
func MindmapScript(loader Loader) (string, error) {
	theme, err := loader.Load(Snippet, SnippetThemeDetect)
	if err != nil {
		return "", err
	}
	autofit, err := loader.Load(Snippet, SnippetAutofit)
	if err != nil {
		return "", err
	}
	return trimEOL(theme) + "\n\n" + trimEOL(autofit), nil
}

func trimEOL(s string) string {
	return strings.TrimRight(s, "\r\n")
}
