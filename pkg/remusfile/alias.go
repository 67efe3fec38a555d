// SPDX-License-Identifier: MPL-2.0

package remusfile

// Alias is an alternate invocable name resolving to a canonical recipe.
// The target must name a recipe in the same catalog, and the alias name
// must not collide with any recipe name; both constraints are enforced at
// registry construction, never at lookup time.
type Alias struct {
	// Name is the alternate name.
	Name RecipeName `json:"name" toml:"name"`
	// Target is the canonical recipe name the alias resolves to.
	Target RecipeName `json:"target" toml:"target"`
}
