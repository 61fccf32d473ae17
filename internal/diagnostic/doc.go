// Package diagnostic provides structured errors, warnings and notes raised
// while validating function names, manifests and existing wrapper packages.
//
// Key capabilities:
//   - Malformed or duplicated function names
//   - Symbol overrides that collide with another declaration
//   - Missing, duplicated or misnamed wrappers found by the verifier
package diagnostic
