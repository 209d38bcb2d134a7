package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-pubkit/internal/config"
	"github.com/alnah/go-pubkit/internal/hints"
)

// envPrefix marks the environment variables read by pubkit.
const envPrefix = "PUBKIT_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // PUBKIT_CONFIG: config file name or path
	ServeDir   string // PUBKIT_SERVE_DIR: directory served by serve
	Port       int    // PUBKIT_PORT: first port tried by serve
	AssetsDir  string // PUBKIT_ASSETS_DIR: mind-map asset override
	Macro      string // PUBKIT_MACRO: datestamp macro name
}

// knownEnvVars lists valid PUBKIT_* environment variables.
var knownEnvVars = map[string]bool{
	"PUBKIT_CONFIG":     true,
	"PUBKIT_SERVE_DIR":  true,
	"PUBKIT_PORT":       true,
	"PUBKIT_ASSETS_DIR": true,
	"PUBKIT_MACRO":      true,
}

// loadEnvConfig reads configuration from environment variables.
// A PUBKIT_PORT that is not a positive integer is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("PUBKIT_CONFIG"),
		ServeDir:   os.Getenv("PUBKIT_SERVE_DIR"),
		AssetsDir:  os.Getenv("PUBKIT_ASSETS_DIR"),
		Macro:      os.Getenv("PUBKIT_MACRO"),
	}

	if port := os.Getenv("PUBKIT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			cfg.Port = p
		}
	}

	return cfg
}

// warnUnknownEnvVars reports PUBKIT_* variables that pubkit does not read,
// such as PUBKIT_SERVEDIR for PUBKIT_SERVE_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides cfg with the variables that are set.
// Flags are merged afterwards: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ServeDir != "" {
		cfg.Serve.Dir = env.ServeDir
	}
	if env.Port != 0 {
		cfg.Serve.Port = env.Port
	}
	if env.AssetsDir != "" {
		cfg.Assets.BasePath = env.AssetsDir
	}
	if env.Macro != "" {
		cfg.DateStamp.Macro = env.Macro
	}
}

// loadConfig resolves the configuration of a command: the file named by
// --config or PUBKIT_CONFIG over env.Config, then the environment.
// The caller merges its flags and calls Validate.
func loadConfig(flagConfig string, env *Environment) (*config.Config, error) {
	ec := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg := config.DefaultConfig()
	if env.Config != nil {
		base := *env.Config
		cfg = &base
	}

	name := flagConfig
	if name == "" {
		name = ec.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(ec, cfg)
	return cfg, nil
}
