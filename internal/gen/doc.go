// Package gen renders one wrapper declaration per SymEngine function token.
//
// Generation approach uses text/template over fixed line slices, so the
// whitespace of every emitted line is explicit. Go output can additionally
// be passed through go/format.
//
// Supported outputs:
//   - Swift wrappers, byte-for-byte the historical Functions.swift generator
//   - Go cgo wrappers calling C.basic_<name>
//
// Supported failure styles:
//   - Optional: a failed delegate call yields nil
//   - Error: a failed delegate call is returned to the caller
package gen
