package lexicon

import (
	"fmt"
	"sync"

	"github.com/abhisek/genero/internal/names"
)

// Tables is the complete, immutable rule configuration of a classifier.
type Tables struct {
	Version    string
	Dictionary *Dictionary
	Compounds  []Compound
	Rules      []Rule
}

// CompoundFor returns the override registered for the first two
// significant tokens of a name.
func (t *Tables) CompoundFor(first, second string) (names.Gender, bool) {
	for _, c := range t.Compounds {
		if c.First == first && c.Second == second {
			return c.Gender, true
		}
	}
	return "", false
}

// Build turns a File into Tables, normalizing every entry. The File is not
// retained.
func Build(f *File) (*Tables, error) {
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}

	t := &Tables{
		Version:    f.Version,
		Dictionary: NewDictionary(f.Masculine, f.Feminine),
	}

	for i, c := range f.Compounds {
		g := names.Gender(c.Gender)
		if g != names.Masculine && g != names.Feminine {
			return nil, fmt.Errorf("compound %d: invalid gender %q", i, c.Gender)
		}
		first, second := names.Normalize(c.First), names.Normalize(c.Second)
		if first == "" || second == "" {
			return nil, fmt.Errorf("compound %d: first and second are required", i)
		}
		t.Compounds = append(t.Compounds, Compound{First: first, Second: second, Gender: g})
	}

	for i, rf := range f.Rules {
		g := names.Gender(rf.Gender)
		if g != names.Masculine && g != names.Feminine {
			return nil, fmt.Errorf("rule %d (%s): invalid gender %q", i, rf.Name, rf.Gender)
		}
		if len(rf.Suffixes) == 0 {
			return nil, fmt.Errorf("rule %d (%s): no suffixes", i, rf.Name)
		}
		r := Rule{
			Name:       rf.Name,
			Gender:     g,
			Suffixes:   normalizeSuffixes(rf.Suffixes),
			Exceptions: toSet(rf.Exceptions),
			Guarded:    normalizeSuffixes(rf.Guarded),
			Trusted:    toSet(rf.Trusted),
		}
		for _, gs := range r.Guarded {
			if !contains(r.Suffixes, gs) {
				return nil, fmt.Errorf("rule %d (%s): guarded suffix %q is not a listed suffix", i, rf.Name, gs)
			}
		}
		t.Rules = append(t.Rules, r)
	}

	return t, nil
}

func normalizeSuffixes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := names.Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

var defaultTables = sync.OnceValue(func() *Tables {
	t, err := Build(DefaultFile())
	if err != nil {
		panic(fmt.Sprintf("lexicon: built-in tables are invalid: %v", err))
	}
	return t
})

// Default returns the built-in Spanish tables. The same value is returned on
// every call; callers must not modify it.
func Default() *Tables {
	return defaultTables()
}
