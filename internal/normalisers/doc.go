// Package normalisers provides the text transformations applied to every
// cell of a tabular file. Each subpackage owns one concern:
//
//   - rules: the fixed, pure rule functions (numerals, eras, dashes, ...)
//   - script: the optional script-specific width and variant folding stage
//
// The order the transformations run in is owned by the stages package.
package normalisers
