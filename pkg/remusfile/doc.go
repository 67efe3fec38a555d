// SPDX-License-Identifier: MPL-2.0

// Package remusfile defines the recipe catalog model and its CUE-backed
// loading path. A remusfile declares named recipes (parameterized shell
// command sequences), dependency edges between them, and aliases.
//
// Validation happens in two layers: this package checks each recipe in
// isolation (parameter shape, placeholder references), while
// internal/registry checks cross-recipe properties (name uniqueness,
// dependency resolvability, acyclicity, alias targets).
package remusfile
