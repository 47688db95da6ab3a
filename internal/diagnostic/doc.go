// Package diagnostic provides structured errors and warnings for loading
// and checking enum-like tables.
//
// Key capabilities:
//   - Duplicate key reports (top-level keys and derived keys)
//   - Decode failures with the offending entry
//   - A combined error for callers that only want pass/fail
package diagnostic
