package batch

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
}

func TestLatestFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "20240101120000"+ResultsSuffix)
	touch(t, dir, "20240315083000"+ResultsSuffix)
	touch(t, dir, "20231231235959"+ResultsSuffix)
	touch(t, dir, "20991231000000_otro.csv")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "20991231000000"+ResultsSuffix), 0o755))

	got, err := LatestFile(dir, ResultsSuffix)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20240315083000"+ResultsSuffix), got)
}

func TestLatestFile_NoCandidates(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notas.txt")

	_, err := LatestFile(dir, ResultsSuffix)
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = LatestFile(filepath.Join(dir, "missing"), ResultsSuffix)
	assert.ErrorIs(t, err, ErrNoCandidates)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)
	assert.Equal(t, "20240305070809", Timestamp(ts))
}

func TestReadNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "nombre\nAna\nJosé María\n", []string{"Ana", "José María"}},
		{"bom", "\ufeffnombre\nAna\n", []string{"Ana"}},
		{"extra columns", "id,nombre,edad\n1,Ana,30\n2,,41\n3\n", []string{"Ana", "", ""}},
		{"quoted", "nombre\n\"Pérez, Juan\"\n", []string{"Pérez, Juan"}},
		{"header only", "nombre\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadNames(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadNames_MissingColumn(t *testing.T) {
	_, err := ReadNames(strings.NewReader("name\nAna\n"))
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "nombre")

	_, err = ReadNames(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestHeader(t *testing.T) {
	cr := NewCSVReader(strings.NewReader(" a ,b,a\n1,2,3\n"))
	h, err := ReadHeader(cr)
	require.NoError(t, err)

	assert.True(t, h.Has("a"))
	assert.False(t, h.Has("c"))
	assert.Equal(t, "1", h.Field([]string{"1", "2", "3"}, "a"))
	assert.Equal(t, "", h.Field([]string{"1"}, "b"))
	assert.Equal(t, "", h.Field([]string{"1", "2"}, "c"))

	err = h.Require("a", "c", "d")
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "c, d")
}

func TestWriteCSV_BOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, true, []string{"x"}, [][]string{{"ñ"}}))
	assert.Equal(t, "\ufeffx\nñ\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, false, []string{"x"}, [][]string{{"ñ"}}))
	assert.Equal(t, "x\nñ\n", buf.String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	err := WriteFile(path, func(w io.Writer) error {
		_, err := w.Write([]byte("hola"))
		return err
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hola", string(raw))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}
