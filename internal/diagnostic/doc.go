// Package diagnostic provides structured errors, warnings, and notes
// produced while discovering and compiling labeled enums.
//
// Key capabilities:
//   - Skipped enums (missing or malformed policy, unsupported type)
//   - Ambiguous labels shared by several members
//   - Near-duplicate labels that look like typos
//   - Configuration entries that match nothing
package diagnostic
