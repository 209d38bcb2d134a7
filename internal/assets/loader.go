package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed snippets/*.js styles/*.css
var builtin embed.FS

// Kind selects the directory and extension of an asset.
type Kind int

const (
	Snippet Kind = iota // snippets/<name>.js
	Style               // styles/<name>.css
)

func (k Kind) String() string {
	if k == Style {
		return "style"
	}
	return "snippet"
}

func (k Kind) file(name string) string {
	if k == Style {
		return "styles/" + name + ".css"
	}
	return "snippets/" + name + ".js"
}

// Loader loads assets by kind and name.
type Loader interface {
	Load(kind Kind, name string) (string, error)
}

// FSLoader reads assets from a file system laid out like the embedded tree.
type FSLoader struct {
	fsys fs.FS
	root *os.Root // nil for the embedded tree
}

// Embedded returns a loader for the built-in assets.
func Embedded() *FSLoader {
	return &FSLoader{fsys: builtin}
}

// OpenDir returns a loader confined to dir. Close releases the directory.
func OpenDir(dir string) (*FSLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	return &FSLoader{fsys: root.FS(), root: root}, nil
}

// Load returns the content of the named asset.
func (l *FSLoader) Load(kind Kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := fs.ReadFile(l.fsys, kind.file(name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s %q: %v", ErrAssetRead, kind, name, err)
	}
	return string(data), nil
}

// Close releases the override directory, if any.
func (l *FSLoader) Close() error {
	if l.root == nil {
		return nil
	}
	return l.root.Close()
}

// Resolver reads an override directory first and falls back to the
// embedded assets for files the directory does not have.
type Resolver struct {
	override *FSLoader // nil without an override directory
	embedded *FSLoader
}

// NewResolver returns a Resolver. An empty dir uses the embedded assets only.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{embedded: Embedded()}
	if dir == "" {
		return r, nil
	}

	override, err := OpenDir(dir)
	if err != nil {
		return nil, err
	}
	r.override = override
	return r, nil
}

// Load implements Loader. Only ErrNotFound falls back; a bad name or a
// read failure in the override directory is returned.
func (r *Resolver) Load(kind Kind, name string) (string, error) {
	if r.override == nil {
		return r.embedded.Load(kind, name)
	}

	content, err := r.override.Load(kind, name)
	if errors.Is(err, ErrNotFound) {
		return r.embedded.Load(kind, name)
	}
	return content, err
}

// Overridden reports whether an override directory is in use.
func (r *Resolver) Overridden() bool { return r.override != nil }

// Close releases the override directory.
func (r *Resolver) Close() error {
	if r.override == nil {
		return nil
	}
	return r.override.Close()
}

var (
	_ Loader = (*FSLoader)(nil)
	_ Loader = (*Resolver)(nil)
)
