package main

import (
	"fmt"
	"time"

	"github.com/alnah/go-pubkit"
)

// dateFlagLayout is the layout of --date.
const dateFlagLayout = "2006-01-02"

// runDatestamp prints the \def line. It always succeeds: bad flags, a bad
// --date or an unreadable config print a warning on stderr and the
// placeholder macro or the default macro name.
func runDatestamp(args []string, env *Environment) error {
	f, _, err := parseDatestampFlags(args, env.Stderr)
	if err != nil {
		if exitCodeFor(err) == ExitSuccess {
			return err
		}
		warn := newPrinter(env.Stderr, env.NoColor, commonFlags{})
		warn.Warning("%v", err)
		fmt.Fprintln(env.Stdout, pubkit.FallbackMacro(""))
		return nil
	}
	env.NoColor = env.NoColor || f.common.noColor
	warn := newPrinter(env.Stderr, env.NoColor, f.common)

	macro := pubkit.DefaultMacro
	if cfg, err := loadConfig(f.common.config, env); err != nil {
		warn.Warning("%v", err)
	} else {
		macro = cfg.DateStamp.Macro
	}
	if f.macro != "" {
		macro = f.macro
	}

	now := env.Now
	if f.date != "" {
		day, err := time.ParseInLocation(dateFlagLayout, f.date, time.Local)
		if err != nil {
			warn.Warning("invalid --date %q, want YYYY-MM-DD", f.date)
			day = time.Time{}
		}
		now = func() time.Time { return day }
	}

	fmt.Fprintln(env.Stdout, pubkit.DateStampLine(now, macro))
	return nil
}
