package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "juan", "juan"},
		{"case and trim", "  JUAN  ", "juan"},
		{"acute accent", "José", "jose"},
		{"tilde", "Ñuño", "nuno"},
		{"diaeresis", "Agüero", "aguero"},
		{"compound", "María de los Ángeles", "maria de los angeles"},
		{"collapse spaces", "Juan    José", "juan jose"},
		{"inner tab dropped", "Juan\tJosé", "juanjose"},
		{"outer tab and newline dropped", "\tJuan José\n", "juan jose"},
		{"no-break space", "Juan\u00a0José", "juan jose"},
		{"ideographic space", "Ana\u3000Sofía", "ana sofia"},
		{"digits dropped", "Ana2", "ana"},
		{"punctuation dropped", "O'Brien-Smith", "obriensmith"},
		{"ligature", "ﬁdel", "fidel"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"digits only", "123", ""},
		{"punctuation only", "?!.,", ""},
		{"non latin", "Мария", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"José María", "  MARÍA   de la  LUZ ", "Ñandú", "ﬁdel", "123 abc", " Inés ", "", "Ørjan",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNewRecord(t *testing.T) {
	r := NewRecord(" José  María ")
	assert.Equal(t, " José  María ", r.Original)
	assert.Equal(t, "jose maria", r.Normalized)
}

func TestGenderValid(t *testing.T) {
	assert.True(t, Masculine.Valid())
	assert.True(t, Feminine.Valid())
	assert.True(t, Unknown.Valid())
	assert.False(t, Gender("unisex").Valid())
	assert.False(t, Gender("").Valid())
}
