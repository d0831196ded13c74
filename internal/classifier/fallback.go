package classifier

import (
	"strings"

	"github.com/abhisek/genero/internal/names"
)

// emptyStage ends the cascade for names without significant tokens.
type emptyStage struct{}

func (emptyStage) Name() string { return "empty" }

func (emptyStage) Apply(in *Input) (names.Result, bool) {
	if len(in.Tokens) > 0 {
		return names.Result{}, false
	}
	if in.Record.Normalized == "" {
		return names.Result{Gender: names.Unknown, Method: names.MethodEmpty}, true
	}
	return names.Result{Gender: names.Unknown, Method: names.MethodOnlyParticles}, true
}

// fallbackStage always decides, using only the last letter of the primary
// token.
type fallbackStage struct{}

func (fallbackStage) Name() string { return "fallback" }

func (fallbackStage) Apply(in *Input) (names.Result, bool) {
	return Fallback(in.First()), true
}

// Fallback is the terminal rule: "a" endings are feminine, "o" endings are
// masculine, everything else is unknown.
func Fallback(token string) names.Result {
	switch {
	case token == "":
		return names.Result{Gender: names.Unknown, Method: names.MethodEmpty}
	case strings.HasSuffix(token, "a"):
		return names.Result{Gender: names.Feminine, Method: names.MethodFallbackA}
	case strings.HasSuffix(token, "o"):
		return names.Result{Gender: names.Masculine, Method: names.MethodFallbackO}
	default:
		return names.Result{Gender: names.Unknown, Method: names.MethodNoClearRule}
	}
}
