package batch

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/genero/internal/names"
)

// Column names of the input and results files.
const (
	ColumnName     = "nombre"
	ColumnOriginal = "nombre_original"
	ColumnGender   = "GENERO"
	ColumnMethod   = "metodo_asignacion"
)

// ResultsSuffix ends the name of every results file.
const ResultsSuffix = "_resultados_completos.csv"

// ResultsColumns is the header of a results file.
var ResultsColumns = []string{ColumnOriginal, ColumnGender, ColumnMethod}

// Row is one classified input name.
type Row struct {
	Original string
	Result   names.Result
}

// ReadNames reads the nombre column of an input CSV. It fails before
// returning any row when the column is missing.
func ReadNames(r io.Reader) ([]string, error) {
	cr := NewCSVReader(r)
	h, err := ReadHeader(cr)
	if err != nil {
		return nil, err
	}
	if err := h.Require(ColumnName); err != nil {
		return nil, err
	}

	var out []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(out)+1, err)
		}
		out = append(out, h.Field(rec, ColumnName))
	}
	return out, nil
}

// ReadNamesFile opens path and reads it with ReadNames.
func ReadNamesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	out, err := ReadNames(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// WriteResults writes rows in results-file layout.
func WriteResults(w io.Writer, rows []Row) error {
	recs := make([][]string, len(rows))
	for i, r := range rows {
		recs[i] = []string{r.Original, string(r.Result.Gender), string(r.Result.Method)}
	}
	return WriteCSV(w, false, ResultsColumns, recs)
}
