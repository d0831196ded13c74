// Package lexicon holds the read-only rule tables the classifier consults:
// the masculine and feminine name dictionaries, compound overrides and the
// ordered suffix rules. Tables are built once and never mutated.
package lexicon

import "github.com/abhisek/genero/internal/names"

// Dictionary is a pair of name sets keyed by normalized form. Entries may be
// single names ("juan") or compounds ("maria del carmen").
type Dictionary struct {
	masculine map[string]struct{}
	feminine  map[string]struct{}
}

// NewDictionary normalizes every entry and builds the two sets. Entries that
// normalize to "" are ignored.
func NewDictionary(masculine, feminine []string) *Dictionary {
	return &Dictionary{
		masculine: toSet(masculine),
		feminine:  toSet(feminine),
	}
}

func toSet(entries []string) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if key := names.Normalize(e); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

// Lookup returns the gender registered for name. The masculine set is
// consulted first, so an entry present in both sets resolves masculine.
func (d *Dictionary) Lookup(name string) (names.Gender, bool) {
	if _, ok := d.masculine[name]; ok {
		return names.Masculine, true
	}
	if _, ok := d.feminine[name]; ok {
		return names.Feminine, true
	}
	return "", false
}

// Has reports whether name is registered under gender g.
func (d *Dictionary) Has(g names.Gender, name string) bool {
	switch g {
	case names.Masculine:
		_, ok := d.masculine[name]
		return ok
	case names.Feminine:
		_, ok := d.feminine[name]
		return ok
	}
	return false
}

// Len returns the number of masculine and feminine entries.
func (d *Dictionary) Len() (masculine, feminine int) {
	return len(d.masculine), len(d.feminine)
}
