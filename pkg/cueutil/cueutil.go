// SPDX-License-Identifier: MPL-2.0

// Package cueutil wraps the CUE evaluation flow used to load remusfile
// catalogs: compile the embedded schema, compile the user's file, unify the
// two, then validate and decode into a Go struct. Keeping the flow here
// means the domain packages never touch cuelang.org/go directly.
package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// Decode compiles schema and data, unifies data against the definition at
// defPath (e.g. "#Remusfile"), validates with concrete values required, and
// decodes the result into T. The filename is used in error positions.
func Decode[T any](schema string, data []byte, defPath, filename string) (*T, error) {
	if filename == "" {
		filename = "<input>"
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	def := schemaValue.LookupPath(cue.ParsePath(defPath))
	if def.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", defPath, def.Err())
	}

	unified := def.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, FormatError(err, filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}
	return &result, nil
}

// FormatError converts a raw CUE error into one message per underlying
// error, each prefixed with the offending file so the user can locate the
// problem without understanding CUE unification internals.
func FormatError(err error, filename string) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}
	if len(errs) == 1 {
		return fmt.Errorf("%s: %s", filename, errs[0].Error())
	}
	msg := fmt.Sprintf("%s: %d errors:", filename, len(errs))
	for _, e := range errs {
		msg += "\n  " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
