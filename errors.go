package pubkit

import "errors"

// Sentinel errors for file-level operations.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrReadInput     = errors.New("failed to read input")
	ErrWriteOutput   = errors.New("failed to write output")

	// Date localization errors.
	ErrSourceDirNotFound = errors.New("source directory not found")
	ErrSiteDirNotFound   = errors.New("site directory not found")
	ErrNoDates           = errors.New("no dates found in metadata files")

	// Asset loading errors.
	ErrAssets = errors.New("failed to load mind-map assets")
)
