package lexicon

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/genero/internal/names"
)

func TestDefaultFileRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, DefaultFile()))

	f, err := Parse(buf.Bytes())
	require.NoError(t, err)

	tables, err := Build(f)
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, tables.Version)

	dm, df := Default().Dictionary.Len()
	m, fem := tables.Dictionary.Len()
	assert.Equal(t, dm, m)
	assert.Equal(t, df, fem)
	assert.Len(t, tables.Rules, len(Default().Rules))
}

func TestDefaultFileIsACopy(t *testing.T) {
	f := DefaultFile()
	f.Masculine[0] = "changed"
	assert.NotEqual(t, "changed", DefaultFile().Masculine[0])
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	doc := `{
  "version": "v1.0.3",
  "masculine": ["Iñaki"],
  "feminine": ["Ainhoa"],
  "compounds": [{"first": "jose", "second": "maria", "gender": "masculino"}],
  "rules": [
    {"name": "f", "gender": "femenino", "suffixes": ["a"], "exceptions": ["Luca"]},
    {"name": "m", "gender": "masculino", "suffixes": ["o", "es"], "guarded": ["es"], "trusted": ["andrés"]}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	tables, err := LoadFile(path)
	require.NoError(t, err)

	g, ok := tables.Dictionary.Lookup("inaki")
	require.True(t, ok)
	assert.Equal(t, names.Masculine, g)

	require.Len(t, tables.Rules, 2)
	assert.Contains(t, tables.Rules[0].Exceptions, "luca")
	assert.Contains(t, tables.Rules[1].Trusted, "andres")

	cg, ok := tables.CompoundFor("jose", "maria")
	require.True(t, ok)
	assert.Equal(t, names.Masculine, cg)
	_, ok = tables.CompoundFor("maria", "jose")
	assert.False(t, ok)
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "invalid json",
			doc:     `{"version": `,
			wantErr: "invalid JSON",
		},
		{
			name:    "missing rules",
			doc:     `{"version": "v1.0.0", "masculine": [], "feminine": []}`,
			wantErr: "schema validation failed",
		},
		{
			name:    "unknown gender",
			doc:     `{"version": "v1.0.0", "masculine": [], "feminine": [], "rules": [{"name": "x", "gender": "neutro", "suffixes": ["e"]}]}`,
			wantErr: "schema validation failed",
		},
		{
			name:    "unknown field",
			doc:     `{"version": "v1.0.0", "masculine": [], "feminine": [], "rules": [{"name": "x", "gender": "femenino", "suffixes": ["a"]}], "extra": 1}`,
			wantErr: "schema validation failed",
		},
		{
			name:    "not semver",
			doc:     `{"version": "1.0", "masculine": [], "feminine": [], "rules": [{"name": "x", "gender": "femenino", "suffixes": ["a"]}]}`,
			wantErr: "not a semantic version",
		},
		{
			name:    "future major",
			doc:     `{"version": "v2.0.0", "masculine": [], "feminine": [], "rules": [{"name": "x", "gender": "femenino", "suffixes": ["a"]}]}`,
			wantErr: "incompatible",
		},
		{
			name:    "guarded suffix not listed",
			doc:     `{"version": "v1.0.0", "masculine": [], "feminine": [], "rules": [{"name": "x", "gender": "masculino", "suffixes": ["o"], "guarded": ["es"]}]}`,
			wantErr: "is not a listed suffix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o644))
			_, err := LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
