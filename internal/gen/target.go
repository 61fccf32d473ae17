package gen

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Target -linecomment -output=target_string.go
//go:generate go tool stringer -type=Style -linecomment -output=style_string.go

// Target is the language of the generated wrappers.
type Target int

const (
	_ Target = iota // skip zero value, an unset Target is invalid

	TargetSwift // swift
	TargetGo    // go
)

// Style is the failure policy of the generated wrappers.
type Style int

const (
	_ Style = iota // skip zero value, an unset Style is invalid

	StyleOptional // optional
	StyleError    // error
)

var (
	targets = []Target{TargetSwift, TargetGo}
	styles  = []Style{StyleOptional, StyleError}
)

// IsValid reports whether t is a known target.
func (t Target) IsValid() bool {
	return t == TargetSwift || t == TargetGo
}

// IsValid reports whether s is a known style.
func (s Style) IsValid() bool {
	return s == StyleOptional || s == StyleError
}

// ParseTarget returns the Target named s (case-insensitive).
func ParseTarget(s string) (Target, error) {
	for _, t := range targets {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown target %q (want one of %s)", s, joinNames(targets))
}

// ParseStyle returns the Style named s (case-insensitive).
func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}

	return 0, fmt.Errorf("unknown style %q (want one of %s)", s, joinNames(styles))
}

func joinNames[T fmt.Stringer](values []T) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, v.String())
	}

	return strings.Join(names, ", ")
}
