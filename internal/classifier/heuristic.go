package classifier

import (
	"github.com/abhisek/genero/internal/lexicon"
	"github.com/abhisek/genero/internal/names"
)

// Position selects which significant token a heuristic stage inspects.
type Position int

const (
	PositionFirst Position = iota
	PositionLast
)

// ApplyRules runs the ordered suffix rules against token. The first rule
// that matches without being suppressed decides; a suppressed rule hands
// over to the next one.
func ApplyRules(rules []lexicon.Rule, dict *lexicon.Dictionary, token string) (names.Gender, bool) {
	if token == "" {
		return "", false
	}
	for i := range rules {
		if rules[i].Apply(token, dict) == lexicon.Matched {
			return rules[i].Gender, true
		}
	}
	return "", false
}

type suffixStage struct {
	tables   *lexicon.Tables
	position Position
}

func (s *suffixStage) Name() string {
	if s.position == PositionLast {
		return "heuristic-last"
	}
	return "heuristic-first"
}

func (s *suffixStage) Apply(in *Input) (names.Result, bool) {
	token := in.First()
	if s.position == PositionLast {
		last, ok := in.Last()
		if !ok {
			return names.Result{}, false
		}
		token = last
	}

	g, ok := ApplyRules(s.tables.Rules, s.tables.Dictionary, token)
	if !ok {
		return names.Result{}, false
	}
	return names.Result{Gender: g, Method: suffixMethod(g, s.position)}, true
}

func suffixMethod(g names.Gender, p Position) names.Method {
	switch {
	case g == names.Feminine && p == PositionLast:
		return names.MethodSuffixFeminineLast
	case g == names.Feminine:
		return names.MethodSuffixFeminine
	case p == PositionLast:
		return names.MethodSuffixMasculineLast
	default:
		return names.MethodSuffixMasculine
	}
}
