// SPDX-License-Identifier: MPL-2.0

// Package plan turns a requested recipe into an execution plan: the
// deduplicated, dependency-ordered sequence of recipe invocations needed
// to satisfy it. Ordering is a post-order depth-first traversal of the
// dependency graph, so every dependency runs before anything that depends
// on it, each recipe runs at most once, and the requested recipe runs last.
package plan

import (
	"github.com/kaplanz/remus/internal/registry"
	"github.com/kaplanz/remus/pkg/remusfile"
)

type (
	// Entry is one step of an execution plan: a recipe plus the arguments
	// it will be bound with. For the root recipe these are the invocation
	// arguments; for dependencies they are the fixed arguments declared at
	// the call site, if any.
	Entry struct {
		Recipe *remusfile.Recipe
		Args   []string
	}

	// ExecutionPlan is the ordered sequence of entries for one invocation.
	// Each recipe appears exactly once; the root recipe is last.
	ExecutionPlan []Entry
)

// Build computes the execution plan for root with the given invocation
// arguments. The registry must have been constructed successfully, which
// guarantees the dependency graph is acyclic and fully resolvable.
//
// Sibling dependencies with no mutual ordering constraint keep the order
// they are listed in the depending recipe's definition. When the same
// recipe is reachable through several paths, the first call site in plan
// order contributes its fixed arguments and later call sites are ignored.
func Build(reg *registry.Registry, root *remusfile.Recipe, args []string) (ExecutionPlan, error) {
	order := reg.Graph().PostOrder(string(root.Name))

	recipes := make([]*remusfile.Recipe, len(order))
	for i, name := range order {
		recipe, err := reg.Lookup(remusfile.RecipeName(name))
		if err != nil {
			return nil, err
		}
		recipes[i] = recipe
	}

	// Attribute fixed call-site arguments to dependency entries.
	callArgs := make(map[remusfile.RecipeName][]string)
	for _, recipe := range recipes {
		for i := range recipe.DependsOn {
			dep := &recipe.DependsOn[i]
			if _, seen := callArgs[dep.Recipe]; !seen && len(dep.Args) > 0 {
				callArgs[dep.Recipe] = dep.Args
			}
		}
	}

	entries := make(ExecutionPlan, len(recipes))
	for i, recipe := range recipes {
		entry := Entry{Recipe: recipe, Args: callArgs[recipe.Name]}
		if recipe.Name == root.Name {
			entry.Args = args
		}
		entries[i] = entry
	}
	return entries, nil
}
