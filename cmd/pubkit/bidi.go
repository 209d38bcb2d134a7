package main

import (
	"fmt"

	"github.com/alnah/go-pubkit"
)

// runBidi fixes the parenthesized Latin spans of one Markdown file.
func runBidi(args []string, env *Environment) error {
	f, positional, err := parseBidiFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	env.NoColor = env.NoColor || f.common.noColor

	if len(positional) < 1 || len(positional) > 2 {
		printBidiUsage(env.Stderr)
		return fmt.Errorf("%w: expected <input> [output]", ErrMissingArgs)
	}
	if _, err := loadConfig(f.common.config, env); err != nil {
		return err
	}

	in, out := positional[0], ""
	if len(positional) == 2 {
		out = positional[1]
	}

	res, err := pubkit.FixBidiFile(in, out)
	if err != nil {
		return err
	}

	p := newPrinter(env.Stdout, env.NoColor, f.common)
	p.Success("Fixed bidirectional parentheses in: %s", res.Input)
	if res.Output != res.Input {
		p.Detail("Written to %s", res.Output)
	}
	if f.stats {
		p.Info("  wrapped:   %d", res.Stats.Wrapped)
		p.Info("  protected: %d", res.Stats.Protected)
		p.Info("  urls:      %d", res.Stats.URLs)
		if !res.Persian {
			warn := newPrinter(env.Stderr, env.NoColor, f.common)
			warn.Warning("no Persian text in %s", res.Input)
		}
	}
	return nil
}
