// Package yamlutil decodes the YAML documents pubkit reads: its own config
// file and the metadata.yml sidecars of a listing.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxSize is the largest document Decode accepts.
const MaxSize = 1 << 20

var (
	ErrEmpty      = errors.New("empty YAML document")
	ErrTooLarge   = errors.New("YAML document too large")
	ErrNotMapping = errors.New("YAML document is not a mapping")
)

// Mode controls how unknown keys are handled.
type Mode int

const (
	Lenient Mode = iota // unknown keys are ignored
	Strict              // unknown keys are an error
)

// Decode decodes a single document into v, which must be a non-nil pointer.
func Decode(data []byte, v any, mode Mode) error {
	switch {
	case len(bytes.TrimSpace(data)) == 0:
		return ErrEmpty
	case len(data) > MaxSize:
		return fmt.Errorf("%w: %d bytes, max %d", ErrTooLarge, len(data), MaxSize)
	}

	var opts []yaml.DecodeOption
	if mode == Strict {
		opts = append(opts, yaml.Strict())
	}

	if err := yaml.NewDecoder(bytes.NewReader(data), opts...).Decode(v); err != nil {
		return fmt.Errorf("decoding YAML: %w", err)
	}
	return nil
}

// Fields decodes a mapping document and returns its top-level keys.
func Fields(data []byte) (map[string]any, error) {
	var doc any
	if err := Decode(data, &doc, Lenient); err != nil {
		return nil, err
	}

	fields, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}
	return fields, nil
}
