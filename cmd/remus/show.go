// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/kaplanz/remus/pkg/remusfile"
)

// showCmd renders a single recipe's documentation, parameters,
// dependencies, and command body as styled markdown.
var showCmd = &cobra.Command{
	Use:   "show <recipe>",
	Short: "Show a recipe's documentation and commands",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := loadCatalog()
		if err != nil {
			return invocationError(err)
		}

		recipe, err := reg.Lookup(remusfile.RecipeName(args[0]))
		if err != nil {
			return invocationError(err)
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}

		out, err := renderer.Render(recipeMarkdown(recipe))
		if err != nil {
			return fmt.Errorf("failed to render recipe: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// recipeMarkdown builds the markdown document rendered by show.
func recipeMarkdown(recipe *remusfile.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", recipe.Name)
	if recipe.Doc != "" {
		fmt.Fprintf(&b, "%s\n\n", recipe.Doc)
	}
	if recipe.Private {
		b.WriteString("*Private: omitted from listings.*\n\n")
	}

	if len(recipe.Parameters) > 0 {
		b.WriteString("## Parameters\n\n")
		for i := range recipe.Parameters {
			param := &recipe.Parameters[i]
			switch {
			case param.Variadic:
				fmt.Fprintf(&b, "- `%s` (variadic) captures all remaining arguments\n", param.Name)
			case param.Default != nil:
				fmt.Fprintf(&b, "- `%s` defaults to `%s`\n", param.Name, *param.Default)
			default:
				fmt.Fprintf(&b, "- `%s` (required)\n", param.Name)
			}
		}
		b.WriteString("\n")
	}

	if len(recipe.DependsOn) > 0 {
		b.WriteString("## Depends on\n\n")
		for i := range recipe.DependsOn {
			dep := &recipe.DependsOn[i]
			if len(dep.Args) > 0 {
				fmt.Fprintf(&b, "- `%s` with args `%s`\n", dep.Recipe, strings.Join(dep.Args, " "))
			} else {
				fmt.Fprintf(&b, "- `%s`\n", dep.Recipe)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Commands\n\n```sh\n")
	for _, line := range recipe.Body {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("```\n")
	return b.String()
}
