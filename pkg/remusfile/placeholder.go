// SPDX-License-Identifier: MPL-2.0

package remusfile

import (
	"strings"
)

// Placeholder delimiters in command body templates: {{name}}, with optional
// whitespace around the name.
const (
	placeholderOpen  = "{{"
	placeholderClose = "}}"
)

// Placeholders returns the parameter names referenced by the template line,
// in order of appearance, with duplicates preserved. The second return is
// false when the line contains an unterminated placeholder.
func Placeholders(line string) ([]ParameterName, bool) {
	var names []ParameterName
	for {
		start := strings.Index(line, placeholderOpen)
		if start < 0 {
			return names, true
		}
		rest := line[start+len(placeholderOpen):]
		end := strings.Index(rest, placeholderClose)
		if end < 0 {
			return names, false
		}
		name := strings.TrimSpace(rest[:end])
		names = append(names, ParameterName(name))
		line = rest[end+len(placeholderClose):]
	}
}

// ExpandPlaceholders substitutes each {{name}} placeholder in the template
// line with its bound value. Placeholders referencing names absent from
// values are left untouched; catalog validation guarantees that cannot
// happen for well-formed recipes.
func ExpandPlaceholders(line string, values map[ParameterName]string) string {
	var b strings.Builder
	for {
		start := strings.Index(line, placeholderOpen)
		if start < 0 {
			b.WriteString(line)
			return b.String()
		}
		b.WriteString(line[:start])
		rest := line[start+len(placeholderOpen):]
		end := strings.Index(rest, placeholderClose)
		if end < 0 {
			b.WriteString(line[start:])
			return b.String()
		}
		name := ParameterName(strings.TrimSpace(rest[:end]))
		if value, ok := values[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(line[start : start+len(placeholderOpen)+end+len(placeholderClose)])
		}
		line = rest[end+len(placeholderClose):]
	}
}
