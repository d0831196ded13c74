package classifier

import (
	"github.com/abhisek/genero/internal/lexicon"
	"github.com/abhisek/genero/internal/names"
)

// fullNameStage looks up the whole normalized string, particles included,
// so registered compounds like "maria de los angeles" win over their parts.
type fullNameStage struct {
	dict *lexicon.Dictionary
}

func (s *fullNameStage) Name() string { return "dictionary-full" }

func (s *fullNameStage) Apply(in *Input) (names.Result, bool) {
	g, ok := s.dict.Lookup(in.Record.Normalized)
	if !ok {
		return names.Result{}, false
	}
	return names.Result{Gender: g, Method: names.MethodDictionaryFull}, true
}

// firstTokenStage looks up the primary token. Compound overrides are
// checked before returning the token's own gender.
type firstTokenStage struct {
	tables *lexicon.Tables
}

func (s *firstTokenStage) Name() string { return "dictionary-first" }

func (s *firstTokenStage) Apply(in *Input) (names.Result, bool) {
	g, ok := s.tables.Dictionary.Lookup(in.First())
	if !ok {
		return names.Result{}, false
	}
	if len(in.Tokens) > 1 {
		if cg, ok := s.tables.CompoundFor(in.Tokens[0], in.Tokens[1]); ok {
			return names.Result{Gender: cg, Method: names.MethodDictionaryCompound}, true
		}
	}
	return names.Result{Gender: g, Method: names.MethodDictionaryFirst}, true
}

// lastTokenStage looks up a distinct secondary token.
type lastTokenStage struct {
	dict *lexicon.Dictionary
}

func (s *lastTokenStage) Name() string { return "dictionary-last" }

func (s *lastTokenStage) Apply(in *Input) (names.Result, bool) {
	last, ok := in.Last()
	if !ok {
		return names.Result{}, false
	}
	g, ok := s.dict.Lookup(last)
	if !ok {
		return names.Result{}, false
	}
	return names.Result{Gender: g, Method: names.MethodDictionaryLast}, true
}
