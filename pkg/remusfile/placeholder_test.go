// SPDX-License-Identifier: MPL-2.0

package remusfile

import (
	"slices"
	"testing"
)

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []ParameterName
		ok   bool
	}{
		{name: "no placeholders", line: "cargo build", want: nil, ok: true},
		{name: "single", line: "cargo build --package {{pkg}}", want: []ParameterName{"pkg"}, ok: true},
		{name: "multiple", line: "cp {{src}} {{dst}}", want: []ParameterName{"src", "dst"}, ok: true},
		{name: "whitespace inside braces", line: "echo {{ msg }}", want: []ParameterName{"msg"}, ok: true},
		{name: "repeated", line: "echo {{x}} {{x}}", want: []ParameterName{"x", "x"}, ok: true},
		{name: "unterminated", line: "echo {{oops", want: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Placeholders(tt.line)
			if ok != tt.ok {
				t.Fatalf("Placeholders(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if tt.ok && !slices.Equal(got, tt.want) {
				t.Errorf("Placeholders(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestExpandPlaceholders(t *testing.T) {
	t.Parallel()

	values := map[ParameterName]string{
		"pkg":  "mypackage",
		"opts": "--release --quiet",
	}

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "verbatim line", line: "cargo test", want: "cargo test"},
		{name: "single value", line: "cargo build -p {{pkg}}", want: "cargo build -p mypackage"},
		{name: "joined variadic", line: "cargo run -p {{pkg}} {{opts}}", want: "cargo run -p mypackage --release --quiet"},
		{name: "whitespace inside braces", line: "echo {{ pkg }}", want: "echo mypackage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExpandPlaceholders(tt.line, values); got != tt.want {
				t.Errorf("ExpandPlaceholders(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
