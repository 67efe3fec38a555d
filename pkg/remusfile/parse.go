// SPDX-License-Identifier: MPL-2.0

package remusfile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kaplanz/remus/pkg/cueutil"
)

// FileName is the catalog file remus looks for, starting in the working
// directory and walking toward the filesystem root.
const FileName = "remusfile.cue"

//go:embed remusfile_schema.cue
var remusfileSchema string

// ErrNotFound is returned by Find when no catalog file exists between the
// start directory and the filesystem root.
var ErrNotFound = errors.New("no remusfile found")

// Parse reads and parses a recipe catalog from the given path.
func Parse(path string) (*Remusfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read remusfile at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses catalog content from bytes. The content is unified
// against the embedded CUE schema, decoded, and then structurally
// validated; all definition errors found are returned together.
func ParseBytes(data []byte, path string) (*Remusfile, error) {
	file, err := cueutil.Decode[Remusfile](remusfileSchema, data, "#Remusfile", path)
	if err != nil {
		return nil, err
	}
	file.FilePath = path

	if errs := file.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return file, nil
}

// Find locates the nearest catalog file, walking from dir up toward the
// filesystem root. Returns the absolute path of the first match, or
// ErrNotFound when no ancestor directory contains one.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve search directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %s or any parent directory", ErrNotFound, dir)
		}
		dir = parent
	}
}
