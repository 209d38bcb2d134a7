package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pubkit"
	"github.com/alnah/go-pubkit/internal/config"
	"github.com/alnah/go-pubkit/internal/server"
)

// Exit codes for the pubkit CLI.
// bidi and dates report missing arguments, missing inputs and I/O
// failures with the general code 1.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // Missing input, I/O failure, server failure
	ExitUsage   = 2 // Invalid flags, arguments or config
)

var (
	// ErrUsage reports invalid flags or arguments.
	ErrUsage = errors.New("invalid usage")
	// ErrMissingArgs reports a wrong argument count for bidi or dates.
	ErrMissingArgs = errors.New("missing arguments")
)

// exitCodeFor returns the exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	// I/O and runtime failures (exit 1)
	if errors.Is(err, ErrMissingArgs) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pubkit.ErrInputNotFound) ||
		errors.Is(err, pubkit.ErrReadInput) ||
		errors.Is(err, pubkit.ErrWriteOutput) ||
		errors.Is(err, pubkit.ErrSourceDirNotFound) ||
		errors.Is(err, pubkit.ErrSiteDirNotFound) ||
		errors.Is(err, server.ErrServeDirNotFound) ||
		errors.Is(err, server.ErrNoAvailablePort) {
		return ExitGeneral
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, pubkit.ErrAssets) {
		return ExitUsage
	}

	return ExitGeneral
}
