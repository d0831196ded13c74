package metrics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/genero/internal/batch"
	"github.com/abhisek/genero/internal/sampling"
)

// ReadPairs decodes the validated rows of a review sheet. GENERO and
// GENERO_VALIDADO are required; rows with a blank manual label are
// skipped. It returns ErrNoValidatedRows when nothing is left.
func ReadPairs(r io.Reader) ([]Pair, error) {
	cr := batch.NewCSVReader(r)
	h, err := batch.ReadHeader(cr)
	if err != nil {
		return nil, err
	}
	if err := h.Require(batch.ColumnGender, sampling.ColumnValidated); err != nil {
		return nil, err
	}

	var out []Pair
	for n := 1; ; n++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", n, err)
		}
		actual := strings.TrimSpace(h.Field(rec, sampling.ColumnValidated))
		if actual == "" {
			continue
		}
		out = append(out, Pair{
			Actual:    actual,
			Predicted: strings.TrimSpace(h.Field(rec, batch.ColumnGender)),
		})
	}
	if len(out) == 0 {
		return nil, ErrNoValidatedRows
	}
	return out, nil
}

// ReadPairsFile opens path and decodes it with ReadPairs.
func ReadPairsFile(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	pairs, err := ReadPairs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pairs, nil
}
