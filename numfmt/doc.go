// Package numfmt formats float64 values for vector and matrix display.
//
// Formatting is a display-only collaborator: nothing here influences the
// numeric results of any algorithm. The stock formatters mirror common
// rendering needs:
//
//   - Pretty: one decimal, right-aligned in a 9-character column, for
//     eyeballing matrices of mixed magnitudes.
//   - Compact: one decimal, minimal width, for dense single-line output.
//   - CompactNoDecimals: rounded to the nearest integer, minimal width,
//     convenient when results are known to be integral.
package numfmt
