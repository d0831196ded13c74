package lexicon

import (
	"strings"

	"github.com/abhisek/genero/internal/names"
)

// Rule is a declarative suffix heuristic applied to a single token.
//
// A token matches when it ends with one of Suffixes. A match is suppressed
// when the token is listed in Exceptions. Guarded suffixes are a subset of
// Suffixes that only count when the token is in Trusted or is not a
// registered name of the opposite gender.
type Rule struct {
	Name       string
	Gender     names.Gender
	Suffixes   []string
	Exceptions map[string]struct{}
	Guarded    []string
	Trusted    map[string]struct{}
}

// Outcome describes how a rule reacted to a token.
type Outcome int

const (
	// NoMatch means no suffix applied.
	NoMatch Outcome = iota
	// Matched means the rule decided the token's gender.
	Matched
	// Suppressed means a suffix applied but an exception or guard vetoed it.
	Suppressed
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Suppressed:
		return "suppressed"
	}
	return "no-match"
}

// Apply evaluates the rule against token. dict is used by guarded suffixes
// to check registration under the opposite gender; it may be nil.
func (r *Rule) Apply(token string, dict *Dictionary) Outcome {
	suffix, ok := r.matchSuffix(token)
	if !ok {
		return NoMatch
	}
	if _, excepted := r.Exceptions[token]; excepted {
		return Suppressed
	}
	if r.isGuarded(suffix) && !r.guardAllows(token, dict) {
		return Suppressed
	}
	return Matched
}

// matchSuffix returns the longest suffix of token listed in the rule.
func (r *Rule) matchSuffix(token string) (string, bool) {
	best := ""
	found := false
	for _, s := range r.Suffixes {
		if strings.HasSuffix(token, s) && len(s) >= len(best) {
			best = s
			found = true
		}
	}
	return best, found
}

// isGuarded reports whether token's matched suffix needs the guard. A
// longer unguarded suffix ("ores" over "es") takes the guard off.
func (r *Rule) isGuarded(suffix string) bool {
	for _, g := range r.Guarded {
		if g == suffix {
			return true
		}
	}
	return false
}

func (r *Rule) guardAllows(token string, dict *Dictionary) bool {
	if _, ok := r.Trusted[token]; ok {
		return true
	}
	if dict == nil {
		return true
	}
	return !dict.Has(opposite(r.Gender), token)
}

func opposite(g names.Gender) names.Gender {
	switch g {
	case names.Masculine:
		return names.Feminine
	case names.Feminine:
		return names.Masculine
	}
	return names.Unknown
}

// Compound is a full-name override consulted when the first token is a
// dictionary hit: "jose maria" is masculine even though "maria" is not.
type Compound struct {
	First  string
	Second string
	Gender names.Gender
}
