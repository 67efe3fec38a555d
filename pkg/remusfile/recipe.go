// SPDX-License-Identifier: MPL-2.0

package remusfile

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/kaplanz/remus/pkg/types"
)

var (
	// ErrInvalidRecipeName is the sentinel error wrapped by InvalidRecipeNameError.
	ErrInvalidRecipeName = errors.New("invalid recipe name")
	// ErrInvalidParameterName is the sentinel error wrapped by InvalidParameterNameError.
	ErrInvalidParameterName = errors.New("invalid parameter name")

	// recipeNamePattern matches valid recipe and alias names: a letter
	// followed by letters, digits, hyphens, or underscores.
	recipeNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	// parameterNamePattern matches valid parameter names. Hyphens are
	// excluded so parameter names stay usable as placeholder identifiers.
	parameterNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

type (
	// RecipeName identifies a recipe (or alias) within a catalog.
	RecipeName string

	// InvalidRecipeNameError is returned when a RecipeName value is invalid.
	// It wraps ErrInvalidRecipeName for errors.Is() compatibility.
	InvalidRecipeNameError struct {
		Value RecipeName
	}

	// ParameterName identifies a declared recipe parameter.
	ParameterName string

	// InvalidParameterNameError is returned when a ParameterName value is invalid.
	// It wraps ErrInvalidParameterName for errors.Is() compatibility.
	InvalidParameterNameError struct {
		Value ParameterName
	}

	// Parameter is a declared positional parameter of a recipe.
	Parameter struct {
		// Name is the parameter name, referenced from the body as {{name}}.
		Name ParameterName `json:"name" toml:"name"`
		// Default is the value used when the invocation supplies no
		// argument for this position. Nil means the parameter is required.
		Default *string `json:"default,omitempty" toml:"default,omitempty"`
		// Variadic marks the parameter as capturing all remaining
		// invocation arguments. Only the last parameter may be variadic.
		Variadic bool `json:"variadic,omitempty" toml:"variadic,omitempty"`
	}

	// Dependency is a reference from one recipe to another that must run
	// first, optionally with fixed argument bindings declared at the call site.
	Dependency struct {
		// Recipe is the name of the recipe that must run before this one.
		Recipe RecipeName `json:"recipe" toml:"recipe"`
		// Args are fixed arguments bound to the dependency's parameters.
		// They are declared here, not supplied by the invoker.
		Args []string `json:"args,omitempty" toml:"args,omitempty"`
	}

	// Recipe is a named, parameterized unit of work wrapping a sequence of
	// shell command lines.
	Recipe struct {
		// Name uniquely identifies the recipe within the catalog.
		Name RecipeName `json:"name" toml:"name"`
		// Doc is an optional one-line description shown in listings.
		Doc types.DescriptionText `json:"doc,omitempty" toml:"doc,omitempty"`
		// Private excludes the recipe from listings. It stays invokable
		// directly and as a dependency.
		Private bool `json:"private,omitempty" toml:"private,omitempty"`
		// Default marks the recipe as the one run when no recipe name is
		// supplied on the command line. At most one recipe may be marked.
		Default bool `json:"default,omitempty" toml:"default,omitempty"`
		// Parameters are the declared positional parameters, in order.
		Parameters []Parameter `json:"parameters,omitempty" toml:"parameters,omitempty"`
		// DependsOn lists recipes that must run before this one, in order.
		DependsOn []Dependency `json:"depends_on,omitempty" toml:"depends_on,omitempty"`
		// Body is the sequence of command lines, each a template that may
		// contain {{parameter}} placeholders.
		Body []string `json:"body" toml:"body"`
	}
)

// IsValid returns whether the RecipeName is a valid identifier.
func (n RecipeName) IsValid() (bool, []error) {
	if !recipeNamePattern.MatchString(string(n)) {
		return false, []error{&InvalidRecipeNameError{Value: n}}
	}
	return true, nil
}

// String returns the string representation of the RecipeName.
func (n RecipeName) String() string { return string(n) }

// Error implements the error interface for InvalidRecipeNameError.
func (e *InvalidRecipeNameError) Error() string {
	return fmt.Sprintf("invalid recipe name %q: must start with a letter and contain only letters, digits, hyphens, and underscores", e.Value)
}

// Unwrap returns ErrInvalidRecipeName for errors.Is() compatibility.
func (e *InvalidRecipeNameError) Unwrap() error { return ErrInvalidRecipeName }

// IsValid returns whether the ParameterName is a valid identifier.
func (n ParameterName) IsValid() (bool, []error) {
	if !parameterNamePattern.MatchString(string(n)) {
		return false, []error{&InvalidParameterNameError{Value: n}}
	}
	return true, nil
}

// String returns the string representation of the ParameterName.
func (n ParameterName) String() string { return string(n) }

// Error implements the error interface for InvalidParameterNameError.
func (e *InvalidParameterNameError) Error() string {
	return fmt.Sprintf("invalid parameter name %q: must start with a letter or underscore and contain only letters, digits, and underscores", e.Value)
}

// Unwrap returns ErrInvalidParameterName for errors.Is() compatibility.
func (e *InvalidParameterNameError) Unwrap() error { return ErrInvalidParameterName }

// Required returns true when the parameter must receive an invocation
// argument: it has no default and is not variadic (variadic parameters
// bind to the empty sequence when no arguments remain).
func (p *Parameter) Required() bool { return p.Default == nil && !p.Variadic }

// MinArgs returns the number of arguments the recipe requires.
func (r *Recipe) MinArgs() int {
	n := 0
	for i := range r.Parameters {
		if r.Parameters[i].Required() {
			n++
		}
	}
	return n
}

// MaxArgs returns the number of arguments the recipe accepts, or -1 when a
// trailing variadic parameter absorbs any excess.
func (r *Recipe) MaxArgs() int {
	if r.HasVariadic() {
		return -1
	}
	return len(r.Parameters)
}

// HasVariadic returns true when the recipe's last parameter is variadic.
func (r *Recipe) HasVariadic() bool {
	return len(r.Parameters) > 0 && r.Parameters[len(r.Parameters)-1].Variadic
}

// Parameter returns the declared parameter with the given name, or nil.
func (r *Recipe) Parameter(name ParameterName) *Parameter {
	for i := range r.Parameters {
		if r.Parameters[i].Name == name {
			return &r.Parameters[i]
		}
	}
	return nil
}

// Zeroary reports whether the recipe can be invoked with no arguments,
// which is the eligibility condition for implicit default selection.
func (r *Recipe) Zeroary() bool { return r.MinArgs() == 0 }
