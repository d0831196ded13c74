package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/genero/internal/names"
)

func TestDictionaryLookup(t *testing.T) {
	d := NewDictionary(
		[]string{"Juan", "JOSÉ", "juan jose", "  "},
		[]string{"María", "maria del carmen", "Inés"},
	)

	tests := []struct {
		name   string
		want   names.Gender
		wantOK bool
	}{
		{"juan", names.Masculine, true},
		{"jose", names.Masculine, true},
		{"juan jose", names.Masculine, true},
		{"maria", names.Feminine, true},
		{"ines", names.Feminine, true},
		{"maria del carmen", names.Feminine, true},
		{"pedro", "", false},
		{"", "", false},
		{"José", "", false}, // probes must already be normalized
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Lookup(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	m, f := d.Len()
	assert.Equal(t, 3, m, "blank entries are dropped")
	assert.Equal(t, 3, f)
}

func TestDictionaryLookup_MasculineWinsOnOverlap(t *testing.T) {
	d := NewDictionary([]string{"guadalupe"}, []string{"guadalupe"})
	g, ok := d.Lookup("guadalupe")
	assert.True(t, ok)
	assert.Equal(t, names.Masculine, g)
}

func TestDictionaryHasAndLen(t *testing.T) {
	d := NewDictionary([]string{"pedro", "ana"}, []string{"ana"})
	assert.True(t, d.Has(names.Masculine, "pedro"))
	assert.False(t, d.Has(names.Feminine, "pedro"))
	assert.True(t, d.Has(names.Feminine, "ana"))
	assert.False(t, d.Has(names.Unknown, "ana"))

	masc, fem := d.Len()
	assert.Equal(t, 2, masc)
	assert.Equal(t, 1, fem)
}
