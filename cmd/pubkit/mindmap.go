package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-pubkit"
	"github.com/alnah/go-pubkit/internal/config"
	"github.com/alnah/go-pubkit/internal/hints"
)

// runMindmap post-processes an exported mind-map page.
func runMindmap(args []string, env *Environment) error {
	f, positional, err := parseMindmapFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	env.NoColor = env.NoColor || f.common.noColor

	if len(positional) > 2 {
		printMindmapUsage(env.Stderr)
		return fmt.Errorf("%w: expected [input] [output]", ErrUsage)
	}

	cfg, err := loadConfig(f.common.config, env)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		cfg.Mindmap.Input = positional[0]
	}
	if len(positional) > 1 {
		cfg.Mindmap.Output = positional[1]
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	res, err := pubkit.ConvertMindmapFile(cfg.Mindmap.Input, cfg.Mindmap.Output, pubkit.MindmapOptions{
		AssetsDir: cfg.Assets.BasePath,
	})
	switch {
	case errors.Is(err, pubkit.ErrInputNotFound):
		return fmt.Errorf("%w%s", err, hints.ForMindmapInput(config.DefaultMindmapInput))
	case errors.Is(err, pubkit.ErrAssets):
		return fmt.Errorf("%w%s", err, hints.ForAssetsDir())
	case err != nil:
		return err
	}

	p := newPrinter(env.Stdout, env.NoColor, f.common)
	warn := newPrinter(env.Stderr, env.NoColor, f.common)

	if res.CustomAssets {
		p.Detail("Assets overridden from %s", cfg.Assets.BasePath)
	}
	if res.Strategy == pubkit.StrategyNone {
		warn.Warning("could not find insertion point, output may be incorrect")
	} else {
		p.Detail("Script inserted at the %s", res.Strategy)
	}
	if !res.FontFound {
		warn.Warning("no root font-family rule in %s, font left unchanged", res.Input)
	}

	p.Success("Successfully converted %s to %s", res.Input, res.Output)
	if res.FontFound {
		p.Info("Font-family has been changed to Vazirmatn.")
	}
	if res.Strategy != pubkit.StrategyNone {
		p.Info("Auto-fit functionality has been added for node expand/collapse events.")
	}
	return nil
}
