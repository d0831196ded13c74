package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"juan", []string{"juan"}},
		{"juan jose", []string{"juan", "jose"}},
		{"maria de los angeles", []string{"maria", "angeles"}},
		{"maria del carmen", []string{"maria", "carmen"}},
		{"de la", []string{}},
		{"los las", []string{}},
		{"", []string{}},
		{"delia", []string{"delia"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestIsParticle(t *testing.T) {
	for _, p := range []string{"de", "del", "la", "los", "las"} {
		assert.True(t, IsParticle(p), p)
	}
	assert.False(t, IsParticle("y"))
	assert.False(t, IsParticle("delia"))
}
