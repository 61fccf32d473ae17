package manifest

import "symfunc-generator/internal/funcs"

// CurrentVersion is the only manifest version understood.
const CurrentVersion = "1"

// File represents the root of a YAML manifest.
type File struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Target overrides the output language ("swift" or "go").
	Target string `yaml:"target,omitempty"`

	// Style overrides the failure policy ("optional" or "error").
	Style string `yaml:"style,omitempty"`

	// Functions lists the wrapped functions in output order.
	Functions []Function `yaml:"functions"`
}

// Function is one wrapped function.
type Function struct {
	// Name is the function token, e.g. "dirichlet_eta".
	Name string `yaml:"name"`

	// Symbol optionally replaces Name as the declared function name.
	Symbol string `yaml:"symbol,omitempty"`
}

// Default returns a manifest listing the built-in functions.
func Default() *File {
	names := funcs.Default()

	mf := &File{
		Version:   CurrentVersion,
		Functions: make([]Function, 0, len(names)),
	}

	for _, n := range names {
		mf.Functions = append(mf.Functions, Function{Name: n.String()})
	}

	return mf
}

// Entries converts the manifest functions to generator entries.
func (mf *File) Entries() []funcs.Entry {
	entries := make([]funcs.Entry, 0, len(mf.Functions))
	for _, f := range mf.Functions {
		entries = append(entries, funcs.Entry{
			Name:   funcs.Name(f.Name),
			Symbol: f.Symbol,
		})
	}

	return entries
}
