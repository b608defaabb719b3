// Package match provides label folding, identifier tokenization, and
// edit-distance helpers shared by the compiler and the emitter.
//
// Key functions:
//   - FoldLabel: the case folding applied to every reverse-lookup key
//   - SnakeCase: derives generated file names from type names
//   - Levenshtein: computes edit distance between labels
//   - NearDuplicates: finds distinct labels that differ by a single edit
package match
