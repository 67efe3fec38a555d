// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kaplanz/remus/pkg/remusfile"
)

var (
	// ErrUnknownRecipe is the sentinel error wrapped by UnknownRecipeError.
	// Unlike the definition errors below, it is an invocation-time failure:
	// the catalog is fine, the requested name just isn't in it.
	ErrUnknownRecipe = errors.New("unknown recipe")

	// ErrNoDefaultRecipe is returned when an invocation names no recipe and
	// the catalog neither marks a default nor contains a recipe invokable
	// with zero arguments.
	ErrNoDefaultRecipe = errors.New("no default recipe")
)

type (
	// UnknownRecipeError is returned when a lookup (after alias resolution)
	// names no recipe in the registry.
	UnknownRecipeError struct {
		Name remusfile.RecipeName
	}

	// DuplicateRecipeError is a definition error: two recipes share a name.
	DuplicateRecipeError struct {
		Name remusfile.RecipeName
	}

	// UnknownDependencyError is a definition error: a recipe depends on a
	// name that resolves to no registry entry.
	UnknownDependencyError struct {
		Recipe     remusfile.RecipeName
		Dependency remusfile.RecipeName
	}

	// DependencyCycleError is a definition error: the dependency graph
	// contains a cycle. Cycle holds the closed offending path.
	DependencyCycleError struct {
		Cycle []remusfile.RecipeName
	}

	// UnknownAliasTargetError is a definition error: an alias points at a
	// recipe that does not exist.
	UnknownAliasTargetError struct {
		Alias  remusfile.RecipeName
		Target remusfile.RecipeName
	}

	// AliasCollisionError is a definition error: an alias name shadows a
	// recipe name or repeats another alias.
	AliasCollisionError struct {
		Alias remusfile.RecipeName
	}

	// DuplicateDefaultError is a definition error: more than one recipe is
	// marked default.
	DuplicateDefaultError struct {
		First  remusfile.RecipeName
		Second remusfile.RecipeName
	}
)

// Error implements the error interface for UnknownRecipeError.
func (e *UnknownRecipeError) Error() string {
	return fmt.Sprintf("unknown recipe %q", e.Name)
}

// Unwrap returns ErrUnknownRecipe for errors.Is() compatibility.
func (e *UnknownRecipeError) Unwrap() error { return ErrUnknownRecipe }

// Error implements the error interface for DuplicateRecipeError.
func (e *DuplicateRecipeError) Error() string {
	return fmt.Sprintf("duplicate recipe name %q", e.Name)
}

// Unwrap returns remusfile.ErrDefinition for errors.Is() compatibility.
func (e *DuplicateRecipeError) Unwrap() error { return remusfile.ErrDefinition }

// Error implements the error interface for UnknownDependencyError.
func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("recipe %q depends on unknown recipe %q", e.Recipe, e.Dependency)
}

// Unwrap returns remusfile.ErrDefinition for errors.Is() compatibility.
func (e *UnknownDependencyError) Unwrap() error { return remusfile.ErrDefinition }

// Error implements the error interface for DependencyCycleError.
func (e *DependencyCycleError) Error() string {
	names := make([]string, len(e.Cycle))
	for i, name := range e.Cycle {
		names[i] = string(name)
	}
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(names, " -> "))
}

// Unwrap returns remusfile.ErrDefinition for errors.Is() compatibility.
func (e *DependencyCycleError) Unwrap() error { return remusfile.ErrDefinition }

// Error implements the error interface for UnknownAliasTargetError.
func (e *UnknownAliasTargetError) Error() string {
	return fmt.Sprintf("alias %q targets unknown recipe %q", e.Alias, e.Target)
}

// Unwrap returns remusfile.ErrDefinition for errors.Is() compatibility.
func (e *UnknownAliasTargetError) Unwrap() error { return remusfile.ErrDefinition }

// Error implements the error interface for AliasCollisionError.
func (e *AliasCollisionError) Error() string {
	return fmt.Sprintf("alias %q collides with an existing recipe or alias name", e.Alias)
}

// Unwrap returns remusfile.ErrDefinition for errors.Is() compatibility.
func (e *AliasCollisionError) Unwrap() error { return remusfile.ErrDefinition }

// Error implements the error interface for DuplicateDefaultError.
func (e *DuplicateDefaultError) Error() string {
	return fmt.Sprintf("recipes %q and %q are both marked default; only one recipe may be", e.First, e.Second)
}

// Unwrap returns remusfile.ErrDefinition for errors.Is() compatibility.
func (e *DuplicateDefaultError) Unwrap() error { return remusfile.ErrDefinition }
