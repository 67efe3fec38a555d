// SPDX-License-Identifier: MPL-2.0

package remusfile

import (
	"errors"
	"testing"
)

func strptr(s string) *string { return &s }

func TestValidate_WellFormedCatalog(t *testing.T) {
	t.Parallel()
	file := &Remusfile{
		Recipes: []Recipe{
			{
				Name: "build",
				Parameters: []Parameter{
					{Name: "pkg"},
					{Name: "opts", Variadic: true},
				},
				Body: []string{"cargo build -p {{pkg}} {{opts}}"},
			},
		},
		Aliases: []Alias{{Name: "b", Target: "build"}},
	}

	if errs := file.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_DuplicateParameter(t *testing.T) {
	t.Parallel()
	file := &Remusfile{Recipes: []Recipe{{
		Name:       "build",
		Parameters: []Parameter{{Name: "pkg"}, {Name: "pkg"}},
		Body:       []string{"cargo build {{pkg}}"},
	}}}

	errs := file.Validate()
	if len(errs) == 0 {
		t.Fatal("expected error, got none")
	}
	var dupErr *DuplicateParameterError
	if !errors.As(errs, &dupErr) {
		t.Fatalf("expected *DuplicateParameterError, got %v", errs)
	}
	if dupErr.Parameter != "pkg" {
		t.Errorf("expected parameter pkg, got %q", dupErr.Parameter)
	}
}

func TestValidate_VariadicMustBeLast(t *testing.T) {
	t.Parallel()
	file := &Remusfile{Recipes: []Recipe{{
		Name:       "run",
		Parameters: []Parameter{{Name: "opts", Variadic: true}, {Name: "pkg"}},
		Body:       []string{"cargo run {{opts}} {{pkg}}"},
	}}}

	errs := file.Validate()
	var posErr *VariadicPositionError
	if !errors.As(errs, &posErr) {
		t.Fatalf("expected *VariadicPositionError, got %v", errs)
	}
}

func TestValidate_RequiredAfterDefault(t *testing.T) {
	t.Parallel()
	file := &Remusfile{Recipes: []Recipe{{
		Name: "deploy",
		Parameters: []Parameter{
			{Name: "env", Default: strptr("staging")},
			{Name: "region"},
		},
		Body: []string{"deploy --env {{env}} --region {{region}}"},
	}}}

	errs := file.Validate()
	var ordErr *RequiredAfterDefaultError
	if !errors.As(errs, &ordErr) {
		t.Fatalf("expected *RequiredAfterDefaultError, got %v", errs)
	}
	if ordErr.Parameter != "region" {
		t.Errorf("expected parameter region, got %q", ordErr.Parameter)
	}
}

func TestValidate_UnknownPlaceholder(t *testing.T) {
	t.Parallel()
	file := &Remusfile{Recipes: []Recipe{{
		Name: "build",
		Body: []string{"cargo build -p {{pkg}}"},
	}}}

	errs := file.Validate()
	var phErr *UnknownPlaceholderError
	if !errors.As(errs, &phErr) {
		t.Fatalf("expected *UnknownPlaceholderError, got %v", errs)
	}
	if phErr.Placeholder != "pkg" {
		t.Errorf("expected placeholder pkg, got %q", phErr.Placeholder)
	}
	if !errors.Is(errs, ErrDefinition) {
		t.Error("expected errors.Is(errs, ErrDefinition)")
	}
}

func TestValidate_MalformedPlaceholder(t *testing.T) {
	t.Parallel()
	file := &Remusfile{Recipes: []Recipe{{
		Name: "build",
		Body: []string{"echo {{oops"},
	}}}

	errs := file.Validate()
	var malErr *MalformedPlaceholderError
	if !errors.As(errs, &malErr) {
		t.Fatalf("expected *MalformedPlaceholderError, got %v", errs)
	}
}

func TestValidate_InvalidNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		recipe Recipe
	}{
		{name: "empty recipe name", recipe: Recipe{Name: "", Body: []string{"true"}}},
		{name: "leading digit", recipe: Recipe{Name: "1build", Body: []string{"true"}}},
		{name: "embedded space", recipe: Recipe{Name: "my recipe", Body: []string{"true"}}},
		{name: "bad parameter name", recipe: Recipe{
			Name:       "build",
			Parameters: []Parameter{{Name: "my-param"}},
			Body:       []string{"true"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			file := &Remusfile{Recipes: []Recipe{tt.recipe}}
			if errs := file.Validate(); len(errs) == 0 {
				t.Error("expected validation error, got none")
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()
	file := &Remusfile{Recipes: []Recipe{
		{Name: "a", Parameters: []Parameter{{Name: "x"}, {Name: "x"}}, Body: []string{"echo {{x}}"}},
		{Name: "b", Body: []string{"echo {{missing}}"}},
	}}

	errs := file.Validate()
	if len(errs) < 2 {
		t.Fatalf("expected errors from both recipes, got %v", errs)
	}
}
