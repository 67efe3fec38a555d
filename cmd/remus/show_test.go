// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kaplanz/remus/pkg/remusfile"
)

func TestRecipeMarkdown(t *testing.T) {
	t.Parallel()

	def := "debug"
	recipe := &remusfile.Recipe{
		Name: "build",
		Doc:  "Compile the project",
		Parameters: []remusfile.Parameter{
			{Name: "pkg"},
			{Name: "profile", Default: &def},
			{Name: "opts", Variadic: true},
		},
		DependsOn: []remusfile.Dependency{
			{Recipe: "fetch"},
			{Recipe: "codegen", Args: []string{"--fast"}},
		},
		Body: []string{"cargo build -p {{pkg}} --profile {{profile}} {{opts}}"},
	}

	md := recipeMarkdown(recipe)

	for _, want := range []string{
		"# build",
		"Compile the project",
		"`pkg` (required)",
		"`profile` defaults to `debug`",
		"`opts` (variadic)",
		"`fetch`",
		"`codegen` with args `--fast`",
		"```sh",
		"cargo build -p {{pkg}}",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("expected markdown to contain %q, got:\n%s", want, md)
		}
	}
}

func TestRecipeMarkdown_PrivateNote(t *testing.T) {
	t.Parallel()

	recipe := &remusfile.Recipe{Name: "setup", Private: true, Body: []string{"true"}}
	md := recipeMarkdown(recipe)
	if !strings.Contains(md, "Private") {
		t.Errorf("expected private note, got:\n%s", md)
	}
}

func TestDumpCmd_JSON(t *testing.T) {
	useCatalog(t, testCatalog)

	prevFormat := dumpFormat
	dumpFormat = "json"
	t.Cleanup(func() { dumpFormat = prevFormat })

	var out bytes.Buffer
	dumpCmd.SetOut(&out)
	t.Cleanup(func() { dumpCmd.SetOut(nil) })

	if err := dumpCmd.RunE(dumpCmd, nil); err != nil {
		t.Fatal(err)
	}

	dump := out.String()
	for _, want := range []string{`"recipes"`, `"build"`, `"hidden"`, `"aliases"`} {
		if !strings.Contains(dump, want) {
			t.Errorf("expected dump to contain %s, got:\n%s", want, dump)
		}
	}
}

func TestDumpCmd_InvalidFormat(t *testing.T) {
	useCatalog(t, testCatalog)

	prevFormat := dumpFormat
	dumpFormat = "yaml"
	t.Cleanup(func() { dumpFormat = prevFormat })

	if err := dumpCmd.RunE(dumpCmd, nil); err == nil {
		t.Fatal("expected error for invalid dump format")
	}
}
