// Package gen renders compiled label tables as Go source.
//
// Generation uses text/template + go/format. For every resolved enum one
// file is produced in the enum's package directory, declaring:
//   - the labels list and an accessor returning a copy
//   - a Label method driven by the forward table
//   - a FromLabel function driven by the reverse table, matching input
//     case-insensitively
//
// Output is byte-stable for a given plan, which is what Check relies on.
package gen
