// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting value types shared by the domain
// packages (remusfile, registry, executor). These types carry semantic
// meaning and validation but no domain-specific dependencies.
//
// This package is a leaf dependency: it imports only the standard library.
package types
