// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kaplanz/remus/internal/bind"
	"github.com/kaplanz/remus/internal/executor"
	"github.com/kaplanz/remus/internal/plan"
	"github.com/kaplanz/remus/pkg/remusfile"
)

// runRecipe is the root command's execution path: resolve the requested
// (or default) recipe, expand its dependency plan, bind arguments for
// every plan entry, then hand the bound steps to the executor. Each stage
// that fails before a process is spawned exits with the reserved
// invocation code; once steps run, the exit code mirrors the child's.
func runRecipe(ctx context.Context, args []string) error {
	cfg := loadConfig()

	reg, _, err := loadCatalog()
	if err != nil {
		return invocationError(err)
	}

	var recipe *remusfile.Recipe
	if len(args) == 0 {
		recipe, err = reg.Default()
	} else {
		recipe, err = reg.Lookup(remusfile.RecipeName(args[0]))
		args = args[1:]
	}
	if err != nil {
		return invocationError(err)
	}

	entries, err := plan.Build(reg, recipe, args)
	if err != nil {
		return invocationError(err)
	}

	steps := make([]executor.Step, len(entries))
	for i, entry := range entries {
		bound, bindErr := bind.Bind(entry.Recipe, entry.Args)
		if bindErr != nil {
			return invocationError(bindErr)
		}
		steps[i] = executor.Step{Recipe: entry.Recipe.Name, Commands: bound.Commands}
	}

	mode, err := executor.ParseShellMode(shellOverride)
	if err != nil {
		return invocationError(err)
	}
	if mode == "" {
		mode, err = executor.ParseShellMode(cfg.Shell.Mode)
		if err != nil {
			return invocationError(err)
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose || cfg.UI.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	exec, err := executor.New(executor.Options{
		Mode:      mode,
		Shell:     cfg.Shell.Path,
		ShellArgs: cfg.Shell.Args,
		Logger:    logger,
	})
	if err != nil {
		return invocationError(err)
	}

	code, err := exec.Run(ctx, steps)
	if err != nil {
		var stepErr *executor.StepError
		if errors.As(err, &stepErr) {
			return &ExitError{Code: code, Err: err}
		}
		if code.IsSuccess() {
			code = 1
		}
		return &ExitError{Code: code, Err: err}
	}
	return nil
}
