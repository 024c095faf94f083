// Package names normalizes player and person names for comparison.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s, strips diacritics and collapses whitespace, so that
// "Ludvig Åberg" and "ludvig  aberg" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.Map(foldRune, folded)
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Letters that do not decompose under NFD.
func foldRune(r rune) rune {
	switch r {
	case 'ø':
		return 'o'
	case 'Ø':
		return 'O'
	case 'æ':
		return 'a'
	case 'ł':
		return 'l'
	case 'Ł':
		return 'L'
	}
	return r
}

func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
