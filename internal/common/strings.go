package common

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the String() result for enum values outside their range.
const UnknownStr = "unknown"

// UpperFirst returns s with its first rune upper-cased.
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}

// CamelCase joins snake_case parts into an UpperCamelCase identifier.
// Parts that are already mixed case keep their inner casing.
func CamelCase(s string) string {
	var sb strings.Builder

	for _, part := range strings.Split(s, "_") {
		sb.WriteString(UpperFirst(part))
	}

	return sb.String()
}
