package classifier

import (
	"testing"

	"github.com/abhisek/genero/internal/names"
)

func TestFallback(t *testing.T) {
	tests := []struct {
		token string
		want  names.Result
	}{
		{"", names.Result{Gender: names.Unknown, Method: names.MethodEmpty}},
		{"zulma", names.Result{Gender: names.Feminine, Method: names.MethodFallbackA}},
		{"pancho", names.Result{Gender: names.Masculine, Method: names.MethodFallbackO}},
		{"ruth", names.Result{Gender: names.Unknown, Method: names.MethodNoClearRule}},
		{"noemi", names.Result{Gender: names.Unknown, Method: names.MethodNoClearRule}},
	}
	for _, tt := range tests {
		if got := Fallback(tt.token); got != tt.want {
			t.Errorf("Fallback(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

type fixedStage struct {
	name string
	res  names.Result
	ok   bool
}

func (s fixedStage) Name() string                      { return s.name }
func (s fixedStage) Apply(*Input) (names.Result, bool) { return s.res, s.ok }

func TestRunStages_FirstHitWins(t *testing.T) {
	hit := names.Result{Gender: names.Feminine, Method: names.MethodDictionaryFull}
	stages := []Stage{
		fixedStage{name: "miss"},
		fixedStage{name: "hit", res: hit, ok: true},
		fixedStage{name: "later", res: names.Result{Gender: names.Masculine}, ok: true},
	}
	res, name, ok := RunStages(stages, &Input{})
	if !ok || name != "hit" || res != hit {
		t.Errorf("RunStages = (%v, %q, %v), want (%v, hit, true)", res, name, ok, hit)
	}
}

func TestRunStages_NoHit(t *testing.T) {
	_, name, ok := RunStages([]Stage{fixedStage{name: "miss"}}, &Input{})
	if ok || name != "" {
		t.Errorf("RunStages = (%q, %v), want empty miss", name, ok)
	}
}

func TestInputLast(t *testing.T) {
	tests := []struct {
		tokens []string
		want   string
		wantOK bool
	}{
		{nil, "", false},
		{[]string{"ana"}, "", false},
		{[]string{"ana", "ana"}, "", false},
		{[]string{"ana", "luz"}, "luz", true},
		{[]string{"ana", "luz", "maria"}, "maria", true},
	}
	for _, tt := range tests {
		in := &Input{Tokens: tt.tokens}
		got, ok := in.Last()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Last(%v) = (%q, %v), want (%q, %v)", tt.tokens, got, ok, tt.want, tt.wantOK)
		}
	}
}
