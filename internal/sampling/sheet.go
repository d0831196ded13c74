package sampling

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/genero/internal/batch"
)

// ColumnValidated holds the reviewer's label.
const ColumnValidated = "GENERO_VALIDADO"

// SheetSuffix ends the name of every review sheet.
const SheetSuffix = "_muestras_para_validacion.csv"

// ErrMissingColumn is returned when a results file or sheet lacks a
// required column. It matches batch.ErrMissingColumn.
var ErrMissingColumn = batch.ErrMissingColumn

// Entry is one row of a review sheet.
type Entry struct {
	Original  string
	Predicted string
	Method    string
	Validated string
}

// Sheet is a review sheet: sampled predictions plus manual labels.
type Sheet struct {
	// HasMethod reports whether the metodo_asignacion column is present.
	HasMethod bool
	Entries   []Entry
}

// Columns returns the header written by Write.
func (s *Sheet) Columns() []string {
	if s.HasMethod {
		return []string{batch.ColumnOriginal, batch.ColumnGender, batch.ColumnMethod, ColumnValidated}
	}
	return []string{batch.ColumnOriginal, batch.ColumnGender, ColumnValidated}
}

// Validated returns the number of entries with a non-blank label.
func (s *Sheet) Validated() int {
	n := 0
	for _, e := range s.Entries {
		if isLabelled(e.Validated) {
			n++
		}
	}
	return n
}

// Write encodes the sheet as CSV with a UTF-8 BOM.
func (s *Sheet) Write(w io.Writer) error {
	rows := make([][]string, len(s.Entries))
	for i, e := range s.Entries {
		if s.HasMethod {
			rows[i] = []string{e.Original, e.Predicted, e.Method, e.Validated}
		} else {
			rows[i] = []string{e.Original, e.Predicted, e.Validated}
		}
	}
	return batch.WriteCSV(w, true, s.Columns(), rows)
}

// Save writes the sheet to path, replacing it atomically.
func (s *Sheet) Save(path string) error {
	return batch.WriteFile(path, s.Write)
}

// ReadSheet decodes a review sheet. nombre_original, GENERO and
// GENERO_VALIDADO are required.
func ReadSheet(r io.Reader) (*Sheet, error) {
	return readEntries(r, batch.ColumnOriginal, batch.ColumnGender, ColumnValidated)
}

// ReadSheetFile opens path and decodes it with ReadSheet.
func ReadSheetFile(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	s, err := ReadSheet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func readEntries(r io.Reader, required ...string) (*Sheet, error) {
	cr := batch.NewCSVReader(r)
	h, err := batch.ReadHeader(cr)
	if err != nil {
		return nil, err
	}
	if err := h.Require(required...); err != nil {
		return nil, err
	}

	s := &Sheet{HasMethod: h.Has(batch.ColumnMethod)}
	for n := 1; ; n++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", n, err)
		}
		s.Entries = append(s.Entries, Entry{
			Original:  h.Field(rec, batch.ColumnOriginal),
			Predicted: h.Field(rec, batch.ColumnGender),
			Method:    h.Field(rec, batch.ColumnMethod),
			Validated: h.Field(rec, ColumnValidated),
		})
	}
	return s, nil
}
