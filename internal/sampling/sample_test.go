package sampling

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/genero/internal/batch"
)

func entries(counts map[string]int, order []string) []Entry {
	var out []Entry
	for _, g := range order {
		for i := 0; i < counts[g]; i++ {
			out = append(out, Entry{Original: fmt.Sprintf("%s-%d", g, i), Predicted: g, Method: "m"})
		}
	}
	return out
}

func TestDraw_SizesAndOrder(t *testing.T) {
	in := entries(map[string]int{"masculino": 10, "femenino": 3, "desconocido": 6},
		[]string{"femenino", "masculino", "desconocido"})

	got, groups := Draw(in, 5, DefaultSeed)

	assert.Equal(t, []Group{
		{Gender: "femenino", Available: 3, Taken: 3},
		{Gender: "masculino", Available: 10, Taken: 5},
		{Gender: "desconocido", Available: 6, Taken: 5},
	}, groups)
	require.Len(t, got, 13)

	// Groups are contiguous and in first-appearance order.
	var seen []string
	for _, e := range got {
		if len(seen) == 0 || seen[len(seen)-1] != e.Predicted {
			seen = append(seen, e.Predicted)
		}
	}
	assert.Equal(t, []string{"femenino", "masculino", "desconocido"}, seen)

	// No duplicates.
	uniq := make(map[string]bool)
	for _, e := range got {
		assert.False(t, uniq[e.Original], "duplicate %s", e.Original)
		uniq[e.Original] = true
	}
}

func TestDraw_Deterministic(t *testing.T) {
	order := []string{"masculino", "femenino"}
	a, _ := Draw(entries(map[string]int{"masculino": 50, "femenino": 50}, order), 10, 42)
	b, _ := Draw(entries(map[string]int{"masculino": 50, "femenino": 50}, order), 10, 42)
	assert.Equal(t, a, b)

	c, _ := Draw(entries(map[string]int{"masculino": 50, "femenino": 50}, order), 10, 7)
	assert.NotEqual(t, a, c)
}

func TestDraw_GroupsIndependent(t *testing.T) {
	order := []string{"masculino", "femenino"}
	a, _ := Draw(entries(map[string]int{"masculino": 20, "femenino": 20}, order), 5, 42)
	b, _ := Draw(entries(map[string]int{"masculino": 20, "femenino": 90}, order), 5, 42)
	assert.Equal(t, a[:5], b[:5])
}

func TestDraw_SkipsBlankGender(t *testing.T) {
	got, groups := Draw([]Entry{
		{Original: "?", Predicted: " "},
		{Original: "Ana", Predicted: "femenino"},
		{Original: "!", Predicted: ""},
	}, 5, DefaultSeed)

	assert.Equal(t, []Group{{Gender: "femenino", Available: 1, Taken: 1}}, groups)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Original)
}

func TestDraw_ClearsLabels(t *testing.T) {
	got, _ := Draw([]Entry{{Original: "Ana", Predicted: "femenino", Validated: "femenino"}}, 1, 1)
	assert.Equal(t, "", got[0].Validated)
}

func TestReadResults(t *testing.T) {
	s, err := ReadResults(strings.NewReader("nombre_original,GENERO,metodo_asignacion\nAna,femenino,dic_completo\n"))
	require.NoError(t, err)
	assert.True(t, s.HasMethod)
	assert.Equal(t, []Entry{{Original: "Ana", Predicted: "femenino", Method: "dic_completo"}}, s.Entries)

	s, err = ReadResults(strings.NewReader("GENERO,nombre_original\nmasculino,Juan\n"))
	require.NoError(t, err)
	assert.False(t, s.HasMethod)
	assert.Equal(t, "Juan", s.Entries[0].Original)

	_, err = ReadResults(strings.NewReader("nombre_original\nAna\n"))
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.ErrorIs(t, err, batch.ErrMissingColumn)
	assert.Contains(t, err.Error(), "GENERO")
}

func TestSheet_RoundTrip(t *testing.T) {
	s := &Sheet{HasMethod: true, Entries: []Entry{
		{Original: "José María", Predicted: "masculino", Method: "dic_compuesto_especial"},
		{Original: "Ñandú, Sr.", Predicted: "desconocido", Method: "sin_regla_clara", Validated: "masculino"},
	}}

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\xef\xbb\xbfnombre_original,GENERO,metodo_asignacion,GENERO_VALIDADO\n")))

	back, err := ReadSheet(&buf)
	require.NoError(t, err)
	assert.Equal(t, s, back)
	assert.Equal(t, 1, back.Validated())
}

func TestReadSheet_RequiresValidatedColumn(t *testing.T) {
	_, err := ReadSheet(strings.NewReader("nombre_original,GENERO\nAna,femenino\n"))
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), ColumnValidated)
}

func writeResults(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSampler_Run(t *testing.T) {
	root := t.TempDir()
	resultsDir := filepath.Join(root, "01data_out")
	outDir := filepath.Join(root, "02data_validation")

	writeResults(t, resultsDir, "20240101000000_resultados_completos.csv", "nombre_original,GENERO,metodo_asignacion\nViejo,masculino,x\n")
	writeResults(t, resultsDir, "20240202000000_resultados_completos.csv",
		"nombre_original,GENERO,metodo_asignacion\n"+
			"Ana,femenino,dic_completo\n"+
			"Juan,masculino,dic_completo\n"+
			"Luz,femenino,dic_completo\n"+
			"Kzyrbt,desconocido,sin_regla_clara\n")

	now := time.Date(2024, 2, 3, 4, 5, 6, 0, time.Local)
	rep, err := New(Options{Size: 1, Seed: DefaultSeed}).Run(context.Background(), resultsDir, outDir, now)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(resultsDir, "20240202000000_resultados_completos.csv"), rep.Input)
	assert.Equal(t, filepath.Join(outDir, "20240203040506"+SheetSuffix), rep.Output)
	assert.Equal(t, 3, rep.Rows)
	assert.False(t, rep.MethodOmitted)

	sheet, err := ReadSheetFile(rep.Output)
	require.NoError(t, err)
	require.Len(t, sheet.Entries, 3)
	assert.Equal(t, "femenino", sheet.Entries[0].Predicted)
	assert.Equal(t, "masculino", sheet.Entries[1].Predicted)
	assert.Equal(t, "Kzyrbt", sheet.Entries[2].Original)
	assert.Zero(t, sheet.Validated())
}

func TestSampler_RunWithoutMethod(t *testing.T) {
	root := t.TempDir()
	writeResults(t, root, "20240101000000_resultados_completos.csv", "nombre_original,GENERO\nAna,femenino\n")

	rep, err := New(Options{}).Run(context.Background(), root, root, time.Now())
	require.NoError(t, err)
	assert.True(t, rep.MethodOmitted)

	raw, err := os.ReadFile(rep.Output)
	require.NoError(t, err)
	assert.Equal(t, "\xef\xbb\xbfnombre_original,GENERO,GENERO_VALIDADO\nAna,femenino,\n", string(raw))
}

func TestSampler_RunErrors(t *testing.T) {
	root := t.TempDir()
	_, err := New(Options{}).Run(context.Background(), root, root, time.Now())
	assert.ErrorIs(t, err, batch.ErrNoCandidates)

	writeResults(t, root, "20240101000000_resultados_completos.csv", "nombre_original,GENERO\n")
	_, err = New(Options{}).Run(context.Background(), root, root, time.Now())
	assert.ErrorIs(t, err, ErrEmpty)

	writeResults(t, root, "20240102000000_resultados_completos.csv", "nombre,GENERO\nAna,femenino\n")
	_, err = New(Options{}).Run(context.Background(), root, root, time.Now())
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, CheckSize(1))
	assert.NoError(t, CheckSize(DefaultSize))
	for _, n := range []int{0, -3} {
		assert.ErrorIs(t, CheckSize(n), ErrInvalidSize, "size %d", n)
	}
}

func TestSampler_RunSize(t *testing.T) {
	var b strings.Builder
	b.WriteString("nombre_original,GENERO,metodo_asignacion\n")
	for i := 0; i < 600; i++ {
		fmt.Fprintf(&b, "Ana%d,femenino,dic_completo\n", i)
	}

	tests := []struct {
		name    string
		size    int
		rows    int
		wantErr error
	}{
		{"unset selects default", 0, DefaultSize, nil},
		{"explicit", 7, 7, nil},
		{"larger than available", 1000, 600, nil},
		{"negative", -3, 0, ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeResults(t, root, "20240101000000_resultados_completos.csv", b.String())
			out := filepath.Join(root, "out")

			rep, err := New(Options{Size: tt.size}).Run(context.Background(), root, out, time.Now())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, statErr := os.Stat(out)
				assert.True(t, os.IsNotExist(statErr), "no sheet may be written")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, rep.Rows)
		})
	}
}
