// SPDX-License-Identifier: MPL-2.0

// Package remusfiletest provides compact builders for recipe catalog
// fixtures used across the engine's tests.
package remusfiletest

import (
	"github.com/kaplanz/remus/pkg/remusfile"
	"github.com/kaplanz/remus/pkg/types"
)

// RecipeOption mutates a recipe under construction.
type RecipeOption func(*remusfile.Recipe)

// NewRecipe builds a recipe named name with the given options applied in
// order. The body defaults to a single harmless echo so fixtures stay
// valid without every test spelling one out.
func NewRecipe(name string, opts ...RecipeOption) remusfile.Recipe {
	recipe := remusfile.Recipe{
		Name: remusfile.RecipeName(name),
		Body: []string{"echo " + name},
	}
	for _, opt := range opts {
		opt(&recipe)
	}
	return recipe
}

// WithBody replaces the recipe's command lines.
func WithBody(lines ...string) RecipeOption {
	return func(r *remusfile.Recipe) { r.Body = lines }
}

// WithDoc sets the recipe's doc string.
func WithDoc(doc string) RecipeOption {
	return func(r *remusfile.Recipe) { r.Doc = types.DescriptionText(doc) }
}

// WithPrivate marks the recipe private.
func WithPrivate() RecipeOption {
	return func(r *remusfile.Recipe) { r.Private = true }
}

// WithDefault marks the recipe as the catalog default.
func WithDefault() RecipeOption {
	return func(r *remusfile.Recipe) { r.Default = true }
}

// WithParam adds a required parameter.
func WithParam(name string) RecipeOption {
	return func(r *remusfile.Recipe) {
		r.Parameters = append(r.Parameters, remusfile.Parameter{Name: remusfile.ParameterName(name)})
	}
}

// WithDefaultParam adds a parameter with a default value.
func WithDefaultParam(name, value string) RecipeOption {
	return func(r *remusfile.Recipe) {
		r.Parameters = append(r.Parameters, remusfile.Parameter{
			Name:    remusfile.ParameterName(name),
			Default: &value,
		})
	}
}

// WithVariadicParam adds a trailing variadic parameter.
func WithVariadicParam(name string) RecipeOption {
	return func(r *remusfile.Recipe) {
		r.Parameters = append(r.Parameters, remusfile.Parameter{
			Name:     remusfile.ParameterName(name),
			Variadic: true,
		})
	}
}

// WithDep adds a dependency, optionally with fixed call-site arguments.
func WithDep(name string, args ...string) RecipeOption {
	return func(r *remusfile.Recipe) {
		r.DependsOn = append(r.DependsOn, remusfile.Dependency{
			Recipe: remusfile.RecipeName(name),
			Args:   args,
		})
	}
}

// NewCatalog builds a Remusfile from recipes in definition order.
func NewCatalog(recipes ...remusfile.Recipe) *remusfile.Remusfile {
	return &remusfile.Remusfile{Recipes: recipes}
}

// NewCatalogWithAliases builds a Remusfile with aliases attached.
func NewCatalogWithAliases(aliases []remusfile.Alias, recipes ...remusfile.Recipe) *remusfile.Remusfile {
	return &remusfile.Remusfile{Recipes: recipes, Aliases: aliases}
}
