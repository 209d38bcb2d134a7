package pubkit

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-pubkit/internal/assets"
	"github.com/alnah/go-pubkit/internal/fileutil"
	"github.com/alnah/go-pubkit/internal/pipeline"
)

// InsertionStrategy reports where the mind-map script was placed.
type InsertionStrategy = pipeline.InsertionStrategy

// Insertion strategies, in the order they are tried.
const (
	StrategyNone          = pipeline.StrategyNone
	StrategyLegacyBlock   = pipeline.StrategyLegacyBlock
	StrategyMarkmapAnchor = pipeline.StrategyMarkmapAnchor
	StrategyLastScriptTag = pipeline.StrategyLastScriptTag
)

// MindmapOptions configures ConvertMindmapFile.
type MindmapOptions struct {
	// AssetsDir overrides the embedded snippets and font rule.
	// Empty uses the embedded assets only.
	AssetsDir string
}

// MindmapResult describes one ConvertMindmapFile run.
type MindmapResult struct {
	Input        string
	Output       string
	Strategy     InsertionStrategy
	FontFound    bool
	CustomAssets bool // AssetsDir was set and loaded
}

// ConvertMindmapFile rewrites an exported markmap page: the root font
// becomes the configured font rule and the theme-detection and auto-fit
// script is injected. The output is written even with StrategyNone; the
// caller decides whether to warn.
func ConvertMindmapFile(in, out string, opts MindmapOptions) (*MindmapResult, error) {
	resolver, err := assets.NewResolver(opts.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssets, err)
	}
	defer resolver.Close()

	bundle, err := assets.LoadMindmapAssets(resolver)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssets, err)
	}

	data, err := os.ReadFile(in) // #nosec G304 -- user-provided input
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, in)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	res := pipeline.ConvertMindmap(string(data), pipeline.MindmapOptions{
		FontBlock: bundle.FontBlock,
		Script:    bundle.Script,
	})

	if err := fileutil.WriteFileAtomic(out, []byte(res.Content)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return &MindmapResult{
		Input:        in,
		Output:       out,
		Strategy:     res.Strategy,
		FontFound:    res.FontFound,
		CustomAssets: resolver.Overridden(),
	}, nil
}
