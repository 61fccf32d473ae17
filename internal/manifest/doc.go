// Package manifest provides the YAML file format that replaces or annotates
// the built-in function list.
//
// # Schema Overview
//
//	version: "1"
//	target: swift        # optional, overrides the command-line default
//	style: optional      # optional, overrides the command-line default
//	functions:
//	  - name: sin
//	  - name: dirichlet_eta
//	    symbol: dirichletEta
//
// Function order in the file is the order of the generated declarations.
// An entry's symbol replaces its name as the declared function name; the
// delegated native routine is always basic_<name>.
package manifest
