// SPDX-License-Identifier: MPL-2.0

// Package bind matches invocation arguments against a recipe's declared
// parameters and renders the recipe's command body. Each parameter ends up
// with exactly one Binding, a small tagged union (positional value,
// default value, or captured variadic tail) that keeps the matching rules
// explicit and exhaustively checkable.
package bind

import (
	"strings"

	"github.com/kaplanz/remus/pkg/remusfile"
)

// Kind discriminates how a parameter received its value.
type Kind int

const (
	// KindPositional means the value came from an invocation argument.
	KindPositional Kind = iota
	// KindDefault means no argument was supplied and the parameter's
	// declared default was used.
	KindDefault
	// KindVariadic means the parameter captured the remaining invocation
	// arguments as an ordered sequence (possibly empty).
	KindVariadic
)

type (
	// Binding is one parameter's resolved value.
	Binding struct {
		// Parameter is the declared parameter this binding satisfies.
		Parameter remusfile.Parameter
		// Kind says where the value came from.
		Kind Kind

		value  string
		values []string
	}

	// BoundRecipe is a recipe whose parameters are fully bound and whose
	// body has been rendered into concrete command lines.
	BoundRecipe struct {
		Recipe   *remusfile.Recipe
		Bindings []Binding
		// Commands are the body lines with every placeholder substituted.
		Commands []string
	}
)

// Value returns the binding's substitution value. Variadic captures join
// their elements with a single space.
func (b *Binding) Value() string {
	if b.Kind == KindVariadic {
		return strings.Join(b.values, " ")
	}
	return b.value
}

// Values returns the captured sequence for variadic bindings, or a
// single-element sequence for the other kinds.
func (b *Binding) Values() []string {
	if b.Kind == KindVariadic {
		return b.values
	}
	return []string{b.value}
}

// Bind matches args against the recipe's parameters and renders the body.
//
// Rules, applied in order: parameters are bound positionally left to
// right; a parameter whose position has no argument falls back to its
// default, or fails with MissingArgumentError when it has none; a trailing
// variadic parameter greedily captures all remaining arguments (an empty
// tail binds the declared default if present, else the empty sequence);
// excess arguments with no variadic to absorb them fail with
// TooManyArgumentsError.
//
// Fixed dependency arguments are not special-cased here: the planner
// attaches them as the dependency entry's args, so they arrive through the
// same positional path without competing with the caller's arguments.
func Bind(recipe *remusfile.Recipe, args []string) (*BoundRecipe, error) {
	bindings := make([]Binding, 0, len(recipe.Parameters))
	next := 0

	for i := range recipe.Parameters {
		param := recipe.Parameters[i]
		switch {
		case param.Variadic:
			rest := args[next:]
			next = len(args)
			if len(rest) == 0 && param.Default != nil {
				bindings = append(bindings, Binding{Parameter: param, Kind: KindDefault, value: *param.Default})
				continue
			}
			bindings = append(bindings, Binding{Parameter: param, Kind: KindVariadic, values: rest})
		case next < len(args):
			bindings = append(bindings, Binding{Parameter: param, Kind: KindPositional, value: args[next]})
			next++
		case param.Default != nil:
			bindings = append(bindings, Binding{Parameter: param, Kind: KindDefault, value: *param.Default})
		default:
			return nil, &MissingArgumentError{Recipe: recipe.Name, Parameter: param.Name}
		}
	}

	if next < len(args) {
		return nil, &TooManyArgumentsError{Recipe: recipe.Name, Given: len(args), Max: len(recipe.Parameters)}
	}

	values := make(map[remusfile.ParameterName]string, len(bindings))
	for i := range bindings {
		values[bindings[i].Parameter.Name] = bindings[i].Value()
	}

	commands := make([]string, len(recipe.Body))
	for i, line := range recipe.Body {
		commands[i] = remusfile.ExpandPlaceholders(line, values)
	}

	return &BoundRecipe{Recipe: recipe, Bindings: bindings, Commands: commands}, nil
}
