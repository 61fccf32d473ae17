// Package funcs holds the closed, ordered set of unary SymEngine functions
// that get a generated wrapper, and the rules a function token has to follow.
//
// Every token t maps to a native routine named basic_t. The order of the
// list is the order of the generated declarations.
package funcs
