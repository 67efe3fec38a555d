// SPDX-License-Identifier: MPL-2.0

// Command remus is a recipe runner: it loads a remusfile.cue catalog,
// resolves the requested recipe and its transitive dependencies into an
// ordered plan, binds invocation arguments to recipe parameters, and runs
// the resulting command lines one at a time.
package main

import (
	cmd "github.com/kaplanz/remus/cmd/remus"
)

func main() {
	cmd.Execute()
}
