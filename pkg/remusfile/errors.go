// SPDX-License-Identifier: MPL-2.0

package remusfile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDefinition is the sentinel error wrapped by every definition-time
// catalog error, both the per-recipe structural errors in this package and
// the cross-recipe errors raised at registry construction. Callers use
// errors.Is(err, ErrDefinition) to distinguish a broken catalog from an
// invocation-time failure.
var ErrDefinition = errors.New("invalid recipe catalog")

type (
	// DuplicateParameterError is returned when a recipe declares the same
	// parameter name twice.
	DuplicateParameterError struct {
		Recipe    RecipeName
		Parameter ParameterName
	}

	// VariadicPositionError is returned when a variadic parameter is not
	// the recipe's last parameter, or when more than one is declared.
	VariadicPositionError struct {
		Recipe    RecipeName
		Parameter ParameterName
	}

	// RequiredAfterDefaultError is returned when a required parameter
	// follows a defaulted one. Positional binding consumes arguments left
	// to right, so such a parameter could never receive a value once the
	// preceding default kicks in.
	RequiredAfterDefaultError struct {
		Recipe    RecipeName
		Parameter ParameterName
	}

	// UnknownPlaceholderError is returned when a body line references a
	// placeholder that is not a declared parameter of the recipe.
	UnknownPlaceholderError struct {
		Recipe      RecipeName
		Placeholder ParameterName
		Line        string
	}

	// MalformedPlaceholderError is returned when a body line contains an
	// unterminated or empty placeholder.
	MalformedPlaceholderError struct {
		Recipe RecipeName
		Line   string
	}

	// ValidationErrors aggregates all definition errors found in a catalog,
	// so the user sees every problem in one pass instead of fixing them
	// one at a time.
	ValidationErrors []error
)

// Error implements the error interface for DuplicateParameterError.
func (e *DuplicateParameterError) Error() string {
	return fmt.Sprintf("recipe %q: duplicate parameter %q", e.Recipe, e.Parameter)
}

// Unwrap returns ErrDefinition for errors.Is() compatibility.
func (e *DuplicateParameterError) Unwrap() error { return ErrDefinition }

// Error implements the error interface for VariadicPositionError.
func (e *VariadicPositionError) Error() string {
	return fmt.Sprintf("recipe %q: variadic parameter %q must be the last parameter", e.Recipe, e.Parameter)
}

// Unwrap returns ErrDefinition for errors.Is() compatibility.
func (e *VariadicPositionError) Unwrap() error { return ErrDefinition }

// Error implements the error interface for RequiredAfterDefaultError.
func (e *RequiredAfterDefaultError) Error() string {
	return fmt.Sprintf("recipe %q: required parameter %q follows a parameter with a default", e.Recipe, e.Parameter)
}

// Unwrap returns ErrDefinition for errors.Is() compatibility.
func (e *RequiredAfterDefaultError) Unwrap() error { return ErrDefinition }

// Error implements the error interface for UnknownPlaceholderError.
func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("recipe %q: body line %q references undeclared parameter %q", e.Recipe, e.Line, e.Placeholder)
}

// Unwrap returns ErrDefinition for errors.Is() compatibility.
func (e *UnknownPlaceholderError) Unwrap() error { return ErrDefinition }

// Error implements the error interface for MalformedPlaceholderError.
func (e *MalformedPlaceholderError) Error() string {
	return fmt.Sprintf("recipe %q: body line %q contains a malformed placeholder", e.Recipe, e.Line)
}

// Unwrap returns ErrDefinition for errors.Is() compatibility.
func (e *MalformedPlaceholderError) Unwrap() error { return ErrDefinition }

// Error implements the error interface for ValidationErrors.
func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return v[0].Error()
	}
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d catalog errors:\n  %s", len(v), strings.Join(msgs, "\n  "))
}

// Unwrap exposes the aggregated errors to errors.Is and errors.As.
func (v ValidationErrors) Unwrap() []error { return v }
