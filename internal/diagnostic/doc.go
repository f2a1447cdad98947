// Package diagnostic provides structured warnings and errors for copy
// profile validation and static descriptor inspection.
//
// Key capabilities:
//   - Unknown setting and converter kind errors with suggestions
//   - Unresolved type parameter warnings
//   - Combining diagnostics into a single error
package diagnostic
