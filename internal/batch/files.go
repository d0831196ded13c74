package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TimestampLayout prefixes every generated file name.
const TimestampLayout = "20060102150405"

var (
	// ErrMissingColumn is returned when a required CSV column is absent.
	ErrMissingColumn = errors.New("missing column")

	// ErrNoCandidates is returned by LatestFile when nothing matches.
	ErrNoCandidates = errors.New("no candidate files")
)

// Timestamp formats t for use as a file name prefix.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// LatestFile returns the newest file in dir whose name ends with suffix.
// Names start with a timestamp, so the lexicographically greatest wins.
func LatestFile(dir, suffix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: directory %s does not exist", ErrNoCandidates, dir)
		}
		return "", fmt.Errorf("list %s: %w", dir, err)
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		matches = append(matches, e.Name())
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no *%s in %s", ErrNoCandidates, suffix, dir)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return filepath.Join(dir, matches[0]), nil
}

// NewCSVReader returns a CSV reader that drops a leading UTF-8 BOM.
func NewCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	return cr
}

// Header maps column names to their positions.
type Header map[string]int

// ReadHeader reads the first record of cr.
func ReadHeader(cr *csv.Reader) (Header, error) {
	rec, err := cr.Read()
	if err == io.EOF {
		return Header{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := make(Header, len(rec))
	for i, name := range rec {
		name = strings.TrimSpace(name)
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	return h, nil
}

// Require returns an ErrMissingColumn error naming every absent column.
func (h Header) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if _, ok := h[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// Has reports whether col is present.
func (h Header) Has(col string) bool {
	_, ok := h[col]
	return ok
}

// Field returns the value of col in rec, or "" when the column is absent
// or the record is short.
func (h Header) Field(rec []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// NewBOMWriter returns a writer that emits a UTF-8 BOM before the first
// byte written. Close flushes it.
func NewBOMWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
}

// WriteCSV writes header and rows to w, optionally preceded by a UTF-8 BOM
// so spreadsheet tools detect the encoding.
func WriteCSV(w io.Writer, bom bool, header []string, rows [][]string) error {
	var tw io.WriteCloser
	if bom {
		tw = NewBOMWriter(w)
		w = tw
	}

	cw := csv.NewWriter(w)
	if header != nil {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	if tw != nil {
		if err := tw.Close(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	return nil
}

// WriteFile creates path through a temporary sibling and renames it into
// place once write succeeds. Parent directories are created as needed.
func WriteFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
