// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for remus. The root command runs a
// recipe (or the catalog's default); subcommands show and export catalog
// contents. This layer only translates flags and arguments into registry,
// plan, bind, and executor calls — all engine behavior lives below it.
package cmd
