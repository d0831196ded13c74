package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/genero/internal/names"
)

func defaultRule(t *testing.T, g names.Gender) *Rule {
	t.Helper()
	for i := range Default().Rules {
		r := &Default().Rules[i]
		if r.Gender == g {
			return r
		}
	}
	t.Fatalf("no default rule for %s", g)
	return nil
}

func TestRuleApply_Feminine(t *testing.T) {
	r := defaultRule(t, names.Feminine)
	dict := Default().Dictionary

	tests := []struct {
		token string
		want  Outcome
	}{
		{"xiomara", Matched},
		{"soledad", Matched},
		{"asuncion", Matched},
		{"gladys", Matched},
		{"judith", Matched},
		{"luca", Suppressed},
		{"joshua", Suppressed},
		{"william", Suppressed},
		{"pedro", NoMatch},
		{"", NoMatch},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Apply(tt.token, dict))
		})
	}
}

func TestRuleApply_Masculine(t *testing.T) {
	r := defaultRule(t, names.Masculine)
	dict := Default().Dictionary

	tests := []struct {
		token string
		want  Outcome
	}{
		{"rodrigo", Matched},
		{"ezequiel", Matched},
		{"hector", Matched},
		{"lucas", Matched},
		{"carmen", Suppressed},
		{"consuelo", Suppressed},
		{"raquel", Suppressed},
		{"mercedes", Suppressed},
		// Guarded endings.
		{"andres", Matched},     // trusted
		{"moises", Matched},     // trusted
		{"lourdes", Suppressed}, // registered feminine
		{"ines", Suppressed},    // registered feminine
		{"hernandez", Matched},  // unregistered
		{"artemis", Matched},    // unregistered
		{"ruth", NoMatch},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Apply(tt.token, dict))
		})
	}
}

func TestRuleApply_GuardWithoutDictionary(t *testing.T) {
	r := &Rule{
		Gender:   names.Masculine,
		Suffixes: []string{"es"},
		Guarded:  []string{"es"},
	}
	assert.Equal(t, Matched, r.Apply("lourdes", nil))
}

func TestRuleApply_LongestSuffixLiftsGuard(t *testing.T) {
	dict := NewDictionary(nil, []string{"dolores"})
	r := &Rule{
		Gender:   names.Masculine,
		Suffixes: []string{"es", "ores"},
		Guarded:  []string{"es"},
	}
	assert.Equal(t, Matched, r.Apply("dolores", dict))
	assert.Equal(t, Suppressed, (&Rule{
		Gender:   names.Masculine,
		Suffixes: []string{"es"},
		Guarded:  []string{"es"},
	}).Apply("dolores", dict))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "no-match", NoMatch.String())
	assert.Equal(t, "matched", Matched.String())
	assert.Equal(t, "suppressed", Suppressed.String())
}

func TestDefaultRulesOrder(t *testing.T) {
	rules := Default().Rules
	require.Len(t, rules, 2)
	assert.Equal(t, names.Feminine, rules[0].Gender, "feminine group is evaluated first")
	assert.Equal(t, names.Masculine, rules[1].Gender)
}
