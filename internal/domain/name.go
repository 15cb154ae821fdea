package domain

import (
	"strings"
	"unicode"
)

// NormalizeName canonicalizes a party name for comparison and for history
// store keys: lowercase, trimmed, punctuation stripped, whitespace
// collapsed. ASCII-safe only; no locale-dependent case folding.
// The matcher and the history store must use the same normalization so
// that "Maria Garcia" and "maria garcia " resolve to one identity.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
