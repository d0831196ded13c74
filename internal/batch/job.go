package batch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Report describes a finished file run.
type Report struct {
	Input    string
	Output   string
	Summary  Summary
	Started  time.Time
	Finished time.Time
}

// Run classifies the nombre column of input and writes
// <timestamp>_resultados_completos.csv into outDir. now stamps the output
// file name.
func (r *Runner) Run(ctx context.Context, input, outDir string, now time.Time) (*Report, error) {
	started := time.Now()

	in, err := ReadNamesFile(input)
	if err != nil {
		return nil, err
	}
	r.log.Info("input loaded", zap.String("path", input), zap.Int("rows", len(in)))

	rows, err := r.Classify(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	out := filepath.Join(outDir, Timestamp(now)+ResultsSuffix)
	if err := WriteFile(out, func(w io.Writer) error { return WriteResults(w, rows) }); err != nil {
		return nil, fmt.Errorf("write results: %w", err)
	}
	r.log.Info("results written", zap.String("path", out))

	return &Report{
		Input:    input,
		Output:   out,
		Summary:  Summarize(rows),
		Started:  started,
		Finished: time.Now(),
	}, nil
}
