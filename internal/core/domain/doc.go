// Package domain defines the core business entities for csvnorm.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Cell, Row, Record: tabular text as read from a CSV file
//   - EraTable: Japanese era tokens and their base years
//   - CircledDigitTable: the circled numerals ① to ⑳
//   - Settings: paths and patterns for a normalisation run
//   - RunSummary: the outcome of one batch run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
