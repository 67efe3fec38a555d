// SPDX-License-Identifier: MPL-2.0

package remusfile

import (
	"fmt"
)

// Remusfile is a loaded recipe catalog: the in-memory model the resolution
// and execution engine operates on. Recipes and aliases keep definition
// order; listings and sibling-dependency ordering depend on it.
type Remusfile struct {
	// Recipes are the catalog's recipe definitions, in definition order.
	Recipes []Recipe `json:"recipes" toml:"recipes"`
	// Aliases map alternate names to canonical recipe names.
	Aliases []Alias `json:"aliases,omitempty" toml:"aliases,omitempty"`

	// FilePath is where the catalog was loaded from (set by Parse).
	FilePath string `json:"-" toml:"-"`
}

// Validate checks every recipe in isolation and returns all structural
// definition errors found. Cross-recipe properties (duplicate recipe
// names, dependency resolvability, cycles, alias targets) are checked at
// registry construction instead, where the whole catalog is in view.
func (f *Remusfile) Validate() ValidationErrors {
	var errs ValidationErrors
	for i := range f.Recipes {
		errs = append(errs, validateRecipe(&f.Recipes[i])...)
	}
	for i := range f.Aliases {
		alias := &f.Aliases[i]
		if isValid, nameErrs := alias.Name.IsValid(); !isValid {
			errs = append(errs, fmt.Errorf("alias: %w", nameErrs[0]))
		}
		if isValid, nameErrs := alias.Target.IsValid(); !isValid {
			errs = append(errs, fmt.Errorf("alias %q: %w", alias.Name, nameErrs[0]))
		}
	}
	return errs
}

// validateRecipe returns all structural errors in a single recipe.
func validateRecipe(r *Recipe) []error {
	var errs []error

	if isValid, nameErrs := r.Name.IsValid(); !isValid {
		errs = append(errs, nameErrs...)
	}
	if isValid, docErrs := r.Doc.IsValid(); !isValid {
		errs = append(errs, fmt.Errorf("recipe %q: %w", r.Name, docErrs[0]))
	}

	errs = append(errs, validateParameters(r)...)
	errs = append(errs, validateBody(r)...)

	for i := range r.DependsOn {
		dep := &r.DependsOn[i]
		if isValid, nameErrs := dep.Recipe.IsValid(); !isValid {
			errs = append(errs, fmt.Errorf("recipe %q: dependency: %w", r.Name, nameErrs[0]))
		}
	}

	return errs
}

// validateParameters checks parameter names, uniqueness, variadic position,
// and the required-after-default ordering rule.
func validateParameters(r *Recipe) []error {
	var errs []error
	seen := make(map[ParameterName]bool, len(r.Parameters))
	sawDefault := false
	for i := range r.Parameters {
		p := &r.Parameters[i]
		if isValid, nameErrs := p.Name.IsValid(); !isValid {
			errs = append(errs, fmt.Errorf("recipe %q: %w", r.Name, nameErrs[0]))
		}
		if seen[p.Name] {
			errs = append(errs, &DuplicateParameterError{Recipe: r.Name, Parameter: p.Name})
		}
		seen[p.Name] = true

		if p.Variadic && i != len(r.Parameters)-1 {
			errs = append(errs, &VariadicPositionError{Recipe: r.Name, Parameter: p.Name})
		}
		if p.Default != nil {
			sawDefault = true
		} else if sawDefault && !p.Variadic {
			errs = append(errs, &RequiredAfterDefaultError{Recipe: r.Name, Parameter: p.Name})
		}
	}
	return errs
}

// validateBody checks that every placeholder in every body line is well
// formed and references a declared parameter. Unresolved placeholders are
// a definition-time error, never a runtime one.
func validateBody(r *Recipe) []error {
	var errs []error
	for _, line := range r.Body {
		names, ok := Placeholders(line)
		if !ok {
			errs = append(errs, &MalformedPlaceholderError{Recipe: r.Name, Line: line})
			continue
		}
		for _, name := range names {
			if name == "" {
				errs = append(errs, &MalformedPlaceholderError{Recipe: r.Name, Line: line})
				continue
			}
			if r.Parameter(name) == nil {
				errs = append(errs, &UnknownPlaceholderError{Recipe: r.Name, Placeholder: name, Line: line})
			}
		}
	}
	return errs
}
