// Package sampling draws a per-gender random sample from a results file
// and manages the review sheets reviewers label by hand.
package sampling

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/genero/internal/batch"
	"github.com/abhisek/genero/internal/logging"
)

// DefaultSize is the number of rows drawn per gender.
const DefaultSize = 500

// DefaultSeed makes repeated runs over the same file draw the same rows.
const DefaultSeed = 42

var (
	// ErrEmpty is returned when the results file has no rows to sample.
	ErrEmpty = errors.New("no rows to sample")

	// ErrInvalidSize is returned for a sample size below 1.
	ErrInvalidSize = errors.New("invalid sample size")
)

// CheckSize rejects sample sizes below 1.
func CheckSize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidSize, n)
	}
	return nil
}

// ReadResults decodes a results file into sheet entries with blank labels.
// nombre_original and GENERO are required; metodo_asignacion is optional.
func ReadResults(r io.Reader) (*Sheet, error) {
	s, err := readEntries(r, batch.ColumnOriginal, batch.ColumnGender)
	if err != nil {
		return nil, err
	}
	for i := range s.Entries {
		s.Entries[i].Validated = ""
	}
	return s, nil
}

// Group is the sample drawn for one predicted gender.
type Group struct {
	Gender    string
	Available int
	Taken     int
}

// Draw returns min(size, available) entries per distinct GENERO value.
// Genders are visited in order of first appearance. Each group is drawn
// with its own generator seeded with seed, so adding rows of one gender
// does not change the sample of another. Rows with a blank GENERO are not
// sampled.
func Draw(entries []Entry, size int, seed uint64) ([]Entry, []Group) {
	var order []string
	byGender := make(map[string][]int)
	for i, e := range entries {
		if !isLabelled(e.Predicted) {
			continue
		}
		if _, seen := byGender[e.Predicted]; !seen {
			order = append(order, e.Predicted)
		}
		byGender[e.Predicted] = append(byGender[e.Predicted], i)
	}

	var out []Entry
	groups := make([]Group, 0, len(order))
	for _, g := range order {
		idx := byGender[g]
		k := min(size, len(idx))
		rng := rand.New(rand.NewPCG(seed, seed))
		// Partial Fisher-Yates: the first k slots end up a uniform sample.
		for i := 0; i < k; i++ {
			j := i + rng.IntN(len(idx)-i)
			idx[i], idx[j] = idx[j], idx[i]
		}
		for _, i := range idx[:k] {
			e := entries[i]
			e.Validated = ""
			out = append(out, e)
		}
		groups = append(groups, Group{Gender: g, Available: len(idx), Taken: k})
	}
	return out, groups
}

// Options configures a Sampler.
type Options struct {
	Size   int
	Seed   uint64
	Logger *zap.Logger
}

// Sampler turns the newest results file into a review sheet.
type Sampler struct {
	size int
	seed uint64
	log  *zap.Logger
}

// New returns a sampler. An unset Size selects DefaultSize; a negative one
// makes Run fail with ErrInvalidSize.
func New(opts Options) *Sampler {
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	return &Sampler{size: opts.Size, seed: opts.Seed, log: logging.OrNop(opts.Logger)}
}

// Report describes a written review sheet.
type Report struct {
	Input         string
	Output        string
	Groups        []Group
	Rows          int
	MethodOmitted bool
}

// Run samples the newest *_resultados_completos.csv in resultsDir and
// writes <timestamp>_muestras_para_validacion.csv into outDir.
func (s *Sampler) Run(ctx context.Context, resultsDir, outDir string, now time.Time) (*Report, error) {
	if err := CheckSize(s.size); err != nil {
		return nil, err
	}
	input, err := batch.LatestFile(resultsDir, batch.ResultsSuffix)
	if err != nil {
		return nil, err
	}
	s.log.Info("using newest results file", zap.String("path", input))

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open results: %w", err)
	}
	results, err := ReadResults(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(results.Entries) == 0 {
		return nil, fmt.Errorf("%s: %w", input, ErrEmpty)
	}
	if !results.HasMethod {
		s.log.Warn("metodo_asignacion column not found; omitting it from the sheet", zap.String("path", input))
	}

	drawn, groups := Draw(results.Entries, s.size, s.seed)
	for _, g := range groups {
		s.log.Debug("sampled gender",
			zap.String("gender", g.Gender),
			zap.Int("available", g.Available),
			zap.Int("taken", g.Taken),
		)
	}

	sheet := &Sheet{HasMethod: results.HasMethod, Entries: drawn}
	out := filepath.Join(outDir, batch.Timestamp(now)+SheetSuffix)
	if err := sheet.Save(out); err != nil {
		return nil, fmt.Errorf("write sheet: %w", err)
	}
	s.log.Info("review sheet written", zap.String("path", out), zap.Int("rows", len(drawn)))

	return &Report{
		Input:         input,
		Output:        out,
		Groups:        groups,
		Rows:          len(drawn),
		MethodOmitted: !results.HasMethod,
	}, nil
}

func isLabelled(v string) bool {
	return strings.TrimSpace(v) != ""
}
