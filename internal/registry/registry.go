// SPDX-License-Identifier: MPL-2.0

// Package registry holds the immutable recipe catalog a single invocation
// operates on: name lookup, alias resolution, listing, and default-recipe
// selection. A Registry is constructed once at startup from a parsed
// remusfile, fully validated during construction, and passed explicitly to
// the planner and executor; there is no package-level instance.
package registry

import (
	"github.com/kaplanz/remus/internal/dag"
	"github.com/kaplanz/remus/pkg/remusfile"
)

// Registry is the validated, immutable recipe catalog.
type Registry struct {
	byName  map[remusfile.RecipeName]*remusfile.Recipe
	aliases map[remusfile.RecipeName]remusfile.RecipeName
	order   []remusfile.RecipeName
	graph   *dag.Graph
	deflt   *remusfile.Recipe
}

// New builds a Registry from a parsed catalog, validating every
// cross-recipe property: recipe name uniqueness, dependency
// resolvability, acyclicity, alias targets and collisions, and default
// uniqueness. All definition errors found are returned together; a
// non-nil error means nothing from this catalog may run.
func New(file *remusfile.Remusfile) (*Registry, error) {
	r := &Registry{
		byName:  make(map[remusfile.RecipeName]*remusfile.Recipe, len(file.Recipes)),
		aliases: make(map[remusfile.RecipeName]remusfile.RecipeName, len(file.Aliases)),
		graph:   dag.New(),
	}

	var errs remusfile.ValidationErrors

	for i := range file.Recipes {
		recipe := &file.Recipes[i]
		if _, exists := r.byName[recipe.Name]; exists {
			errs = append(errs, &DuplicateRecipeError{Name: recipe.Name})
			continue
		}
		r.byName[recipe.Name] = recipe
		r.order = append(r.order, recipe.Name)

		if recipe.Default {
			if r.deflt != nil {
				errs = append(errs, &DuplicateDefaultError{First: r.deflt.Name, Second: recipe.Name})
			} else {
				r.deflt = recipe
			}
		}
	}

	for _, name := range r.order {
		recipe := r.byName[name]
		r.graph.AddNode(string(name))
		for i := range recipe.DependsOn {
			dep := recipe.DependsOn[i].Recipe
			if _, exists := r.byName[dep]; !exists {
				errs = append(errs, &UnknownDependencyError{Recipe: name, Dependency: dep})
				continue
			}
			r.graph.AddEdge(string(name), string(dep))
		}
	}

	if cycle := r.graph.FindCycle(); cycle != nil {
		names := make([]remusfile.RecipeName, len(cycle.Cycle))
		for i, node := range cycle.Cycle {
			names[i] = remusfile.RecipeName(node)
		}
		errs = append(errs, &DependencyCycleError{Cycle: names})
	}

	for i := range file.Aliases {
		alias := &file.Aliases[i]
		if _, isRecipe := r.byName[alias.Name]; isRecipe {
			errs = append(errs, &AliasCollisionError{Alias: alias.Name})
			continue
		}
		if _, isAlias := r.aliases[alias.Name]; isAlias {
			errs = append(errs, &AliasCollisionError{Alias: alias.Name})
			continue
		}
		if _, exists := r.byName[alias.Target]; !exists {
			errs = append(errs, &UnknownAliasTargetError{Alias: alias.Name, Target: alias.Target})
			continue
		}
		r.aliases[alias.Name] = alias.Target
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return r, nil
}

// ResolveName maps an alias to its canonical recipe name. Names that are
// not aliases come back unchanged; after construction this is a pure
// dictionary read that cannot fail.
func (r *Registry) ResolveName(name remusfile.RecipeName) remusfile.RecipeName {
	if target, ok := r.aliases[name]; ok {
		return target
	}
	return name
}

// Lookup resolves an alias and returns the named recipe, or an
// UnknownRecipeError when no such recipe exists.
func (r *Registry) Lookup(name remusfile.RecipeName) (*remusfile.Recipe, error) {
	canonical := r.ResolveName(name)
	recipe, ok := r.byName[canonical]
	if !ok {
		return nil, &UnknownRecipeError{Name: canonical}
	}
	return recipe, nil
}

// List returns the catalog's recipes in definition order. Private recipes
// are omitted unless includePrivate is set.
func (r *Registry) List(includePrivate bool) []*remusfile.Recipe {
	recipes := make([]*remusfile.Recipe, 0, len(r.order))
	for _, name := range r.order {
		recipe := r.byName[name]
		if recipe.Private && !includePrivate {
			continue
		}
		recipes = append(recipes, recipe)
	}
	return recipes
}

// Default returns the recipe run when the invocation names none: the
// recipe explicitly marked default, or the first recipe in definition
// order that accepts zero required parameters.
func (r *Registry) Default() (*remusfile.Recipe, error) {
	if r.deflt != nil {
		return r.deflt, nil
	}
	for _, name := range r.order {
		if recipe := r.byName[name]; recipe.Zeroary() {
			return recipe, nil
		}
	}
	return nil, ErrNoDefaultRecipe
}

// Graph exposes the validated dependency graph for plan construction.
func (r *Registry) Graph() *dag.Graph { return r.graph }
