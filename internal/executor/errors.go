// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"errors"
	"fmt"

	"github.com/kaplanz/remus/pkg/remusfile"
	"github.com/kaplanz/remus/pkg/types"
)

// ErrStepFailed is the sentinel error wrapped by StepError.
var ErrStepFailed = errors.New("recipe step failed")

// StepError reports the plan step whose command exited non-zero. The
// overall invocation's exit code equals Code; later steps never ran.
type StepError struct {
	// Index is the step's position in the execution plan.
	Index int
	// Recipe is the recipe the failing command belongs to.
	Recipe remusfile.RecipeName
	// Code is the child process's exit code.
	Code types.ExitCode
}

// Error implements the error interface for StepError.
func (e *StepError) Error() string {
	return fmt.Sprintf("recipe %q (step %d) failed with exit code %d", e.Recipe, e.Index+1, e.Code)
}

// Unwrap returns ErrStepFailed for errors.Is() compatibility.
func (e *StepError) Unwrap() error { return ErrStepFailed }
