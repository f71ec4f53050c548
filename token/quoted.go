package token

import (
	"strings"
)

// Praat escapes a literal double quote inside a quoted value by
// doubling it. Quote and Unquote are exact inverses for every string.

// Quote doubles embedded quotes and wraps the value.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Unquote strips enclosing quotes and collapses doubled internal
// quotes. The input must be a complete quoted value: an odd number of
// quotes means the value continues on a following line and the caller
// has more reading to do.
func Unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", ErrNotQuoted
	}
	if !Balanced(s) {
		return "", ErrUnterminated
	}
	return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`), nil
}

// IsQuoted reports whether s begins a quoted value.
func IsQuoted(s string) bool {
	return len(s) > 0 && s[0] == '"'
}

// Balanced reports whether s contains an even number of double
// quotes. A mark whose line is unbalanced continues on the next line.
func Balanced(s string) bool {
	return strings.Count(s, `"`)%2 == 0
}
