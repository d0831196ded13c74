package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes compatibility forms and drops the combining marks,
// so "José" becomes "Jose" and "ﬁ" becomes "fi".
var foldMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize canonicalizes a raw name into a lookup key: lowercase ASCII
// letters separated by single spaces. Anything that is not a Latin letter
// or a space after folding is dropped, tabs and newlines included; NFKD
// turns no-break spaces into plain ones. Empty or punctuation-only input
// yields "".
//
// Normalize is idempotent.
func Normalize(raw string) string {
	lowered := strings.ToLower(raw)
	folded, _, err := transform.String(foldMarks, lowered)
	if err != nil {
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
