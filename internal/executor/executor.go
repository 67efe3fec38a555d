// SPDX-License-Identifier: MPL-2.0

// Package executor runs an execution plan's bound command lines, strictly
// in order. One process is spawned and awaited at a time, standard streams
// pass through unmodified, and the first non-zero exit halts the remaining
// plan with that step's code. Two shell modes are supported: native
// (system shell via os/exec) and virtual (built-in POSIX interpreter).
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kaplanz/remus/pkg/remusfile"
	"github.com/kaplanz/remus/pkg/types"
)

// ErrInvalidShellMode is the sentinel error wrapped by InvalidShellModeError.
var ErrInvalidShellMode = errors.New("invalid shell mode")

// ShellMode selects how command lines are executed.
type ShellMode string

const (
	// ModeNative executes command lines with the system shell.
	ModeNative ShellMode = "native"
	// ModeVirtual executes command lines with the built-in mvdan/sh
	// POSIX interpreter, independent of any shell on the host.
	ModeVirtual ShellMode = "virtual"
)

type (
	// InvalidShellModeError is returned when a ShellMode value is not recognized.
	// It wraps ErrInvalidShellMode for errors.Is() compatibility.
	InvalidShellModeError struct {
		Value ShellMode
	}

	// Step is one entry of an execution plan after binding: a recipe name
	// (for reporting) and its fully rendered command lines.
	Step struct {
		Recipe   remusfile.RecipeName
		Commands []string
	}

	// Options configures an Executor. The zero value is usable: native
	// mode, process-wide standard streams, and a warn-level logger.
	Options struct {
		// Mode selects native or virtual execution. Empty means native.
		Mode ShellMode
		// Shell overrides the system shell binary (native mode only).
		Shell string
		// ShellArgs overrides the arguments passed before each command
		// line (native mode only). Defaults to the shell's "-c" form.
		ShellArgs []string
		// Stdin, Stdout, Stderr replace the process streams, mainly for tests.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		// Logger receives step tracing at debug level.
		Logger *log.Logger
	}

	// Executor runs plan steps sequentially.
	Executor struct {
		mode      ShellMode
		shell     string
		shellArgs []string
		stdin     io.Reader
		stdout    io.Writer
		stderr    io.Writer
		logger    *log.Logger
	}
)

// Error implements the error interface for InvalidShellModeError.
func (e *InvalidShellModeError) Error() string {
	return fmt.Sprintf("invalid shell mode %q (valid: native, virtual)", e.Value)
}

// Unwrap returns ErrInvalidShellMode for errors.Is() compatibility.
func (e *InvalidShellModeError) Unwrap() error { return ErrInvalidShellMode }

// IsValid returns whether the ShellMode is one of the defined modes.
// The zero value ("") is valid and means ModeNative.
func (m ShellMode) IsValid() (bool, []error) {
	switch m {
	case ModeNative, ModeVirtual, "":
		return true, nil
	default:
		return false, []error{&InvalidShellModeError{Value: m}}
	}
}

// ParseShellMode parses a string into a ShellMode. Empty input returns the
// zero value, which serves as the "no override" sentinel.
func ParseShellMode(value string) (ShellMode, error) {
	mode := ShellMode(value)
	if isValid, errs := mode.IsValid(); !isValid {
		return "", errs[0]
	}
	return mode, nil
}

// New creates an Executor from options.
func New(opts Options) (*Executor, error) {
	if isValid, errs := opts.Mode.IsValid(); !isValid {
		return nil, errs[0]
	}
	e := &Executor{
		mode:      opts.Mode,
		shell:     opts.Shell,
		shellArgs: opts.ShellArgs,
		stdin:     opts.Stdin,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		logger:    opts.Logger,
	}
	if e.mode == "" {
		e.mode = ModeNative
	}
	if e.stdin == nil {
		e.stdin = os.Stdin
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	if e.logger == nil {
		e.logger = log.New(os.Stderr)
		e.logger.SetLevel(log.WarnLevel)
	}
	return e, nil
}

// Run executes the plan's steps in order. On the first non-zero exit it
// stops, returning that step's exit code and a StepError locating the
// failure; no further steps run. A cancelled context terminates the
// running child and surfaces its termination status the same way.
func (e *Executor) Run(ctx context.Context, steps []Step) (types.ExitCode, error) {
	for i, step := range steps {
		for _, command := range step.Commands {
			e.logger.Debug("running", "recipe", step.Recipe, "command", command)

			code, err := e.runCommand(ctx, command)
			if err != nil {
				return code, fmt.Errorf("recipe %q: %w", step.Recipe, err)
			}
			if !code.IsSuccess() {
				return code, &StepError{Index: i, Recipe: step.Recipe, Code: code}
			}
		}
	}
	return 0, nil
}

// runCommand dispatches a single command line to the selected shell mode.
func (e *Executor) runCommand(ctx context.Context, command string) (types.ExitCode, error) {
	switch e.mode {
	case ModeVirtual:
		return e.runVirtual(ctx, command)
	default:
		return e.runNative(ctx, command)
	}
}
