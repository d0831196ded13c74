// Package classifier infers the grammatical gender of Spanish given names
// with a fixed cascade of stages:
//
//	empty input → full-name dictionary → first-token dictionary (with
//	compound overrides) → first-token suffix rules → last-token dictionary →
//	last-token suffix rules → last-letter fallback
//
// The first stage that decides wins. The fallback always decides, so every
// input gets a result. A Classifier holds only read-only tables and is safe
// for concurrent use.
package classifier

import (
	"github.com/abhisek/genero/internal/lexicon"
	"github.com/abhisek/genero/internal/names"
)

// Classifier runs the stage cascade over a set of rule tables.
type Classifier struct {
	tables *lexicon.Tables
	stages []Stage
}

// New builds a classifier over tables. A nil tables value selects the
// built-in Spanish tables.
func New(tables *lexicon.Tables) *Classifier {
	if tables == nil {
		tables = lexicon.Default()
	}
	return &Classifier{
		tables: tables,
		stages: DefaultStages(tables),
	}
}

// DefaultStages returns the cascade in evaluation order.
func DefaultStages(tables *lexicon.Tables) []Stage {
	return []Stage{
		emptyStage{},
		&fullNameStage{dict: tables.Dictionary},
		&firstTokenStage{tables: tables},
		&suffixStage{tables: tables, position: PositionFirst},
		&lastTokenStage{dict: tables.Dictionary},
		&suffixStage{tables: tables, position: PositionLast},
		fallbackStage{},
	}
}

// Tables returns the rule tables the classifier was built with.
func (c *Classifier) Tables() *lexicon.Tables {
	return c.tables
}

// Stages returns the names of the stages in evaluation order.
func (c *Classifier) Stages() []string {
	out := make([]string, len(c.stages))
	for i, s := range c.stages {
		out[i] = s.Name()
	}
	return out
}

// Classify infers the gender of a raw name.
func (c *Classifier) Classify(raw string) names.Result {
	return c.Trace(raw).Result
}

// Trace is a classification together with the intermediate values that led
// to it.
type Trace struct {
	Record names.Record
	Tokens []string
	Stage  string
	Result names.Result
}

// Trace classifies raw and reports which stage decided.
func (c *Classifier) Trace(raw string) Trace {
	rec := names.NewRecord(raw)
	in := &Input{Record: rec, Tokens: names.Tokenize(rec.Normalized)}

	res, stage, ok := RunStages(c.stages, in)
	if !ok {
		// Unreachable with DefaultStages; the fallback always decides.
		res = names.Result{Gender: names.Unknown, Method: names.MethodNoClearRule}
		stage = "none"
	}
	return Trace{Record: rec, Tokens: in.Tokens, Stage: stage, Result: res}
}
