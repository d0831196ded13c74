package classifier

import "github.com/abhisek/genero/internal/names"

// Input is the per-call context shared by every stage.
type Input struct {
	Record names.Record
	Tokens []string
}

// First returns the primary significant token, or "".
func (in *Input) First() string {
	if len(in.Tokens) == 0 {
		return ""
	}
	return in.Tokens[0]
}

// Last returns the secondary significant token when the name has more than
// one token and the last differs from the first.
func (in *Input) Last() (string, bool) {
	if len(in.Tokens) < 2 {
		return "", false
	}
	last := in.Tokens[len(in.Tokens)-1]
	if last == in.Tokens[0] {
		return "", false
	}
	return last, true
}

// Stage is one step of the cascade. It returns a decision, or ok=false to
// let the next stage try.
type Stage interface {
	Name() string
	Apply(in *Input) (res names.Result, ok bool)
}

// RunStages executes stages in order and returns the first decision along
// with the name of the stage that produced it.
func RunStages(stages []Stage, in *Input) (names.Result, string, bool) {
	for _, s := range stages {
		if res, ok := s.Apply(in); ok {
			return res, s.Name(), true
		}
	}
	return names.Result{}, "", false
}
