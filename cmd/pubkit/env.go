package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-pubkit/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	// Config is the base the config file and environment are applied to.
	Config  *config.Config
	NoColor bool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  config.DefaultConfig(),
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}
