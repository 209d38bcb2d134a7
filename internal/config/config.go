// Package config loads the optional YAML settings shared by the pubkit
// commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-pubkit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-pubkit"

// Field limits.
const (
	MaxPathLength  = 4096
	MaxHostLength  = 253 // RFC 1035
	MaxMacroLength = 64
	MaxAttempts    = 100
)

// Defaults.
const (
	DefaultMetadataFile  = "metadata.yml"
	DefaultMindmapInput  = "source/Episode-02/mindmap.html"
	DefaultMindmapOutput = "source/Episode-02/mindmap_auto.html"
	DefaultMacro         = "jalalidate"
	DefaultServeDir      = "."
	DefaultPort          = 8000
	DefaultAttempts      = 10
)

// macroName accepts TeX control words.
var macroName = regexp.MustCompile(`^[A-Za-z]+$`)

// Config holds the settings of every command.
type Config struct {
	Dates     DatesConfig     `yaml:"dates"`
	Mindmap   MindmapConfig   `yaml:"mindmap"`
	DateStamp DateStampConfig `yaml:"datestamp"`
	Serve     ServeConfig     `yaml:"serve"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// DatesConfig configures the listing-date localizer.
type DatesConfig struct {
	SourceDir    string `yaml:"sourceDir"`    // Empty = must be given on the command line
	SiteDir      string `yaml:"siteDir"`      // Empty = must be given on the command line
	MetadataFile string `yaml:"metadataFile"` // Sidecar file name (default: metadata.yml)
}

// MindmapConfig configures the mind-map post-processor.
type MindmapConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// DateStampConfig configures the LaTeX date macro.
type DateStampConfig struct {
	Macro string `yaml:"macro"` // Control word name without backslash (default: jalalidate)
}

// ServeConfig configures the development file server.
type ServeConfig struct {
	Dir      string `yaml:"dir"`
	Host     string `yaml:"host"`     // Empty = all interfaces
	Port     int    `yaml:"port"`     // First port tried (default: 8000)
	Attempts int    `yaml:"attempts"` // Consecutive ports tried (default: 10)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Dates:     DatesConfig{MetadataFile: DefaultMetadataFile},
		Mindmap:   MindmapConfig{Input: DefaultMindmapInput, Output: DefaultMindmapOutput},
		DateStamp: DateStampConfig{Macro: DefaultMacro},
		Serve:     ServeConfig{Dir: DefaultServeDir, Port: DefaultPort, Attempts: DefaultAttempts},
	}
}

// Validate checks every section. LoadConfig calls it after decoding.
func (c *Config) Validate() error {
	for _, check := range []func() error{
		c.validatePaths,
		c.Dates.validate,
		c.DateStamp.validate,
		c.Serve.validate,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validatePaths() error {
	for field, value := range map[string]string{
		"dates.sourceDir":    c.Dates.SourceDir,
		"dates.siteDir":      c.Dates.SiteDir,
		"dates.metadataFile": c.Dates.MetadataFile,
		"mindmap.input":      c.Mindmap.Input,
		"mindmap.output":     c.Mindmap.Output,
		"serve.dir":          c.Serve.Dir,
		"assets.basePath":    c.Assets.BasePath,
	} {
		if err := validateFieldLength(field, value, MaxPathLength); err != nil {
			return err
		}
	}
	return nil
}

func (d DatesConfig) validate() error {
	if d.MetadataFile == "" || strings.ContainsAny(d.MetadataFile, "/\\") {
		return invalid("dates.metadataFile", "must be a plain file name, got %q", d.MetadataFile)
	}
	return nil
}

func (d DateStampConfig) validate() error {
	if err := validateFieldLength("datestamp.macro", d.Macro, MaxMacroLength); err != nil {
		return err
	}
	if !macroName.MatchString(d.Macro) {
		return invalid("datestamp.macro", "must be letters only, got %q", d.Macro)
	}
	return nil
}

func (s ServeConfig) validate() error {
	if err := validateFieldLength("serve.host", s.Host, MaxHostLength); err != nil {
		return err
	}
	switch {
	case s.Port < 1 || s.Port > 65535:
		return invalid("serve.port", "must be between 1 and 65535, got %d", s.Port)
	case s.Attempts < 1 || s.Attempts > MaxAttempts:
		return invalid("serve.attempts", "must be between 1 and %d, got %d", MaxAttempts, s.Attempts)
	case s.Port+s.Attempts-1 > 65535:
		return invalid("serve.attempts", "port range ends at %d", s.Port+s.Attempts-1)
	}
	return nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidValue, field, fmt.Sprintf(format, args...))
}

func validateFieldLength(field, value string, limit int) error {
	if n := len(value); n > limit {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, field, n, limit)
	}
	return nil
}

// LoadConfig reads a config file on top of DefaultConfig. An argument
// containing a path separator is read as is; a bare name is looked up
// in SearchPaths. An empty file yields the defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	path, err := locate(nameOrPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	err = yamlutil.Decode(data, cfg, yamlutil.Strict)
	if err != nil && !errors.Is(err, yamlutil.ErrEmpty) {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func locate(nameOrPath string) (string, error) {
	switch {
	case nameOrPath == "":
		return "", ErrEmptyConfigName
	case strings.ContainsAny(nameOrPath, "/\\"):
		return nameOrPath, nil
	}

	tried := SearchPaths(nameOrPath)
	for _, p := range tried {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// SearchPaths lists the files tried for a config name: the working
// directory first, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	dirs := []string{""}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, AppDirName))
	}

	var paths []string
	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".yml"} {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}
