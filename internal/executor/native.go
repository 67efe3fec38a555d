// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/kaplanz/remus/pkg/types"
)

// runNative executes one command line with the system shell. Streams are
// passed through, not captured, so child output interleaves with the
// terminal exactly as if the command had been typed there.
func (e *Executor) runNative(ctx context.Context, command string) (types.ExitCode, error) {
	shell, shellArgs, err := e.getShell()
	if err != nil {
		return 1, err
	}

	cmd := exec.CommandContext(ctx, shell, append(shellArgs, command)...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		return exitCodeFromError(err)
	}
	return 0, nil
}

// getShell resolves the shell binary and its command-string arguments:
// the configured override first, then %COMSPEC% on Windows, then $SHELL,
// then "sh" from PATH.
func (e *Executor) getShell() (string, []string, error) {
	if e.shell != "" {
		args := e.shellArgs
		if len(args) == 0 {
			args = []string{"-c"}
		}
		return e.shell, args, nil
	}

	if runtime.GOOS == "windows" {
		comspec := os.Getenv("COMSPEC")
		if comspec == "" {
			comspec = "cmd"
		}
		return comspec, []string{"/C"}, nil
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		return shell, []string{"-c"}, nil
	}
	if path, err := exec.LookPath("sh"); err == nil {
		return path, []string{"-c"}, nil
	}
	return "", nil, errors.New("no usable shell found (set shell.path in the remus config, or export SHELL)")
}

// exitCodeFromError maps a process failure to its exit code. A child
// terminated by a signal reports the conventional 128+signal code, so the
// invoker sees the same status a shell would report.
func exitCodeFromError(err error) (types.ExitCode, error) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return types.ExitCode(128 + int(status.Signal())), nil
		}
		return types.ExitCode(exitErr.ExitCode()), nil
	}
	return 1, fmt.Errorf("failed to execute command: %w", err)
}
