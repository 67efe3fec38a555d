// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/kaplanz/remus/pkg/types"
)

// runVirtual executes one command line with the built-in mvdan/sh POSIX
// interpreter. This mode needs no shell on the host, which keeps recipe
// behavior identical across machines (and makes executor tests hermetic).
func (e *Executor) runVirtual(ctx context.Context, command string) (types.ExitCode, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "remusfile")
	if err != nil {
		return 1, fmt.Errorf("command syntax error: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return 1, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	runner, err := interp.New(
		interp.Dir(workDir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(e.stdin, e.stdout, e.stderr),
	)
	if err != nil {
		return 1, fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return types.ExitCode(exitStatus), nil
		}
		return 1, fmt.Errorf("command execution failed: %w", err)
	}
	return 0, nil
}
