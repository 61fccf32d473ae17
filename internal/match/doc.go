// Package match provides fuzzy name matching for "did you mean" suggestions
// on misspelled function tokens.
//
// Names are normalized before comparison: case is folded and underscores are
// dropped, so "dirichletEta", "DirichletEta" and "dirichlet_eta" are equal.
package match
