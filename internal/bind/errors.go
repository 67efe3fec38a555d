// SPDX-License-Identifier: MPL-2.0

package bind

import (
	"errors"
	"fmt"

	"github.com/kaplanz/remus/pkg/remusfile"
)

// ErrBind is the sentinel error wrapped by every binding failure. Binding
// errors are invocation-time: the catalog is well formed, the supplied
// arguments just don't fit the recipe's parameters.
var ErrBind = errors.New("cannot bind arguments")

type (
	// MissingArgumentError is returned when a required parameter (no
	// default, not variadic) has no argument at its position.
	MissingArgumentError struct {
		Recipe    remusfile.RecipeName
		Parameter remusfile.ParameterName
	}

	// TooManyArgumentsError is returned when more arguments are supplied
	// than the recipe declares parameters, with no variadic parameter to
	// absorb the excess.
	TooManyArgumentsError struct {
		Recipe remusfile.RecipeName
		Given  int
		Max    int
	}
)

// Error implements the error interface for MissingArgumentError.
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("recipe %q: missing argument for parameter %q", e.Recipe, e.Parameter)
}

// Unwrap returns ErrBind for errors.Is() compatibility.
func (e *MissingArgumentError) Unwrap() error { return ErrBind }

// Error implements the error interface for TooManyArgumentsError.
func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("recipe %q: too many arguments: got %d, accepts at most %d", e.Recipe, e.Given, e.Max)
}

// Unwrap returns ErrBind for errors.Is() compatibility.
func (e *TooManyArgumentsError) Unwrap() error { return ErrBind }
