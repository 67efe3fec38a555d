// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/kaplanz/remus/internal/config"
	"github.com/kaplanz/remus/internal/registry"
	"github.com/kaplanz/remus/pkg/remusfile"
	"github.com/kaplanz/remus/pkg/types"
)

// loadCatalog locates, parses, and validates the recipe catalog, returning
// the registry the invocation operates on plus the parsed file for
// commands that need the raw model (dump). The registry is rebuilt fresh
// on every process start; nothing is cached between invocations.
func loadCatalog() (*registry.Registry, *remusfile.Remusfile, error) {
	path := catalogFile
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		path, err = remusfile.Find(cwd)
		if err != nil {
			return nil, nil, err
		}
	}

	file, err := remusfile.Parse(path)
	if err != nil {
		return nil, nil, err
	}

	reg, err := registry.New(file)
	if err != nil {
		return nil, nil, err
	}
	return reg, file, nil
}

// loadConfig loads the remus configuration, falling back to defaults when
// loading fails. Load errors are surfaced as a warning rather than
// aborting: a broken config file should not make every recipe unrunnable.
func loadConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		return config.DefaultConfig()
	}
	return cfg
}

// invocationError wraps a resolution, definition, or binding failure in
// the reserved invocation exit code, keeping it distinguishable from any
// recipe step's own exit code.
func invocationError(err error) error {
	return &ExitError{Code: types.ExitCodeInvocation, Err: err}
}
