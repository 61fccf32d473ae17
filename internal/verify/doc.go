// Package verify checks an existing Go binding package against the function
// list: every function must have exactly one top-level wrapper that calls
// C.basic_<name>, declared under the expected exported name.
//
// Packages are resolved with golang.org/x/tools/go/packages but only parsed,
// never type-checked, so cgo bindings can be verified without the native
// library or a C toolchain.
package verify
