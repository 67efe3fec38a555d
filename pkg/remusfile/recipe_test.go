// SPDX-License-Identifier: MPL-2.0

package remusfile

import (
	"errors"
	"testing"
)

func TestRecipeName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value RecipeName
		ok    bool
	}{
		{name: "simple", value: "build", ok: true},
		{name: "hyphenated", value: "build-all", ok: true},
		{name: "underscored", value: "build_all", ok: true},
		{name: "digits after letter", value: "py3", ok: true},
		{name: "empty", value: "", ok: false},
		{name: "leading digit", value: "3build", ok: false},
		{name: "leading hyphen", value: "-build", ok: false},
		{name: "embedded space", value: "my recipe", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.value.IsValid()
			if isValid != tt.ok {
				t.Fatalf("RecipeName(%q).IsValid() = %v, want %v", tt.value, isValid, tt.ok)
			}
			if !tt.ok && !errors.Is(errs[0], ErrInvalidRecipeName) {
				t.Errorf("expected ErrInvalidRecipeName, got %v", errs[0])
			}
		})
	}
}

func TestParameterName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value ParameterName
		ok    bool
	}{
		{name: "simple", value: "pkg", ok: true},
		{name: "leading underscore", value: "_private", ok: true},
		{name: "hyphen rejected", value: "my-param", ok: false},
		{name: "empty", value: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			isValid, _ := tt.value.IsValid()
			if isValid != tt.ok {
				t.Fatalf("ParameterName(%q).IsValid() = %v, want %v", tt.value, isValid, tt.ok)
			}
		})
	}
}

func TestRecipe_ArityMethods(t *testing.T) {
	t.Parallel()

	def := "debug"
	recipe := Recipe{
		Name: "build",
		Parameters: []Parameter{
			{Name: "pkg"},
			{Name: "profile", Default: &def},
			{Name: "opts", Variadic: true},
		},
		Body: []string{"cargo build {{pkg}} {{profile}} {{opts}}"},
	}

	if got := recipe.MinArgs(); got != 1 {
		t.Errorf("MinArgs() = %d, want 1", got)
	}
	if got := recipe.MaxArgs(); got != -1 {
		t.Errorf("MaxArgs() = %d, want -1 for variadic", got)
	}
	if !recipe.HasVariadic() {
		t.Error("expected HasVariadic() true")
	}
	if recipe.Zeroary() {
		t.Error("expected Zeroary() false with a required parameter")
	}
}

func TestRecipe_MaxArgsWithoutVariadic(t *testing.T) {
	t.Parallel()
	recipe := Recipe{
		Name:       "copy",
		Parameters: []Parameter{{Name: "src"}, {Name: "dst"}},
		Body:       []string{"cp {{src}} {{dst}}"},
	}
	if got := recipe.MaxArgs(); got != 2 {
		t.Errorf("MaxArgs() = %d, want 2", got)
	}
}

func TestRecipe_ParameterLookup(t *testing.T) {
	t.Parallel()
	recipe := Recipe{
		Name:       "build",
		Parameters: []Parameter{{Name: "pkg"}},
		Body:       []string{"cargo build {{pkg}}"},
	}

	if recipe.Parameter("pkg") == nil {
		t.Error("expected declared parameter to be found")
	}
	if recipe.Parameter("missing") != nil {
		t.Error("expected nil for undeclared parameter")
	}
}

func TestRecipe_Zeroary(t *testing.T) {
	t.Parallel()

	def := "8080"
	tests := []struct {
		name   string
		recipe Recipe
		want   bool
	}{
		{name: "no parameters", recipe: Recipe{Name: "a", Body: []string{"true"}}, want: true},
		{
			name: "all defaulted",
			recipe: Recipe{Name: "b", Parameters: []Parameter{{Name: "port", Default: &def}},
				Body: []string{"serve {{port}}"}},
			want: true,
		},
		{
			name: "only variadic",
			recipe: Recipe{Name: "c", Parameters: []Parameter{{Name: "opts", Variadic: true}},
				Body: []string{"run {{opts}}"}},
			want: true,
		},
		{
			name: "required present",
			recipe: Recipe{Name: "d", Parameters: []Parameter{{Name: "env"}},
				Body: []string{"deploy {{env}}"}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.recipe.Zeroary(); got != tt.want {
				t.Errorf("Zeroary() = %v, want %v", got, tt.want)
			}
		})
	}
}
