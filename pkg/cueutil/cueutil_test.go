// SPDX-License-Identifier: MPL-2.0

package cueutil_test

import (
	"strings"
	"testing"

	"github.com/kaplanz/remus/pkg/cueutil"
)

const schema = `
#Widget: {
	name: string & =~"^[a-z]+$"
	size?: int
	tags?: [...string]
}
`

type widget struct {
	Name string   `json:"name"`
	Size int      `json:"size"`
	Tags []string `json:"tags"`
}

func TestDecode_Valid(t *testing.T) {
	t.Parallel()

	data := []byte(`
name: "gear"
size: 3
tags: ["metal", "round"]
`)
	w, err := cueutil.Decode[widget](schema, data, "#Widget", "widget.cue")
	if err != nil {
		t.Fatal(err)
	}
	if w.Name != "gear" || w.Size != 3 || len(w.Tags) != 2 {
		t.Errorf("unexpected decode result: %+v", w)
	}
}

func TestDecode_SchemaViolation(t *testing.T) {
	t.Parallel()

	data := []byte(`name: "NOT-LOWERCASE"`)
	_, err := cueutil.Decode[widget](schema, data, "#Widget", "widget.cue")
	if err == nil {
		t.Fatal("expected constraint violation")
	}
	if !strings.Contains(err.Error(), "widget.cue") {
		t.Errorf("expected filename in error, got %q", err.Error())
	}
}

func TestDecode_UnknownField(t *testing.T) {
	t.Parallel()

	data := []byte(`
name: "gear"
color: "red"
`)
	if _, err := cueutil.Decode[widget](schema, data, "#Widget", "widget.cue"); err == nil {
		t.Fatal("expected closed struct to reject unknown field")
	}
}

func TestDecode_SyntaxError(t *testing.T) {
	t.Parallel()

	data := []byte(`name: {{{`)
	if _, err := cueutil.Decode[widget](schema, data, "#Widget", "widget.cue"); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestDecode_MissingDefinition(t *testing.T) {
	t.Parallel()

	data := []byte(`name: "gear"`)
	if _, err := cueutil.Decode[widget](schema, data, "#Gadget", "widget.cue"); err == nil {
		t.Fatal("expected missing definition error")
	}
}
