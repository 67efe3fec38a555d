// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"
)

// listRecipes prints the catalog's public recipes in definition order,
// one per line with its doc string. Private recipes stay invokable but
// never appear here.
func listRecipes(w io.Writer) error {
	reg, _, err := loadCatalog()
	if err != nil {
		return invocationError(err)
	}

	recipes := reg.List(false)
	if len(recipes) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No public recipes in this catalog."))
		return nil
	}

	width := 0
	for _, recipe := range recipes {
		if n := len(recipe.Name); n > width {
			width = n
		}
	}

	fmt.Fprintln(w, TitleStyle.Render("Available recipes:"))
	for _, recipe := range recipes {
		padding := strings.Repeat(" ", width-len(recipe.Name))
		line := "  " + RecipeStyle.Render(string(recipe.Name)) + padding
		if recipe.Doc != "" {
			line += "  " + SubtitleStyle.Render(string(recipe.Doc))
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
