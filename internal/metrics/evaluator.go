package metrics

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/genero/internal/batch"
	"github.com/abhisek/genero/internal/logging"
	"github.com/abhisek/genero/internal/sampling"
)

// Evaluator scores the newest review sheet and writes a metrics file.
type Evaluator struct {
	log *zap.Logger
}

// NewEvaluator returns an evaluator logging to l (nil for none).
func NewEvaluator(l *zap.Logger) *Evaluator {
	return &Evaluator{log: logging.OrNop(l)}
}

// Outcome describes a finished evaluation.
type Outcome struct {
	Input  string
	Output string
	Report *Report
}

// Run evaluates the newest *_muestras_para_validacion.csv in validationDir
// and writes <timestamp>_ground_truth_metrics.csv into outDir.
func (e *Evaluator) Run(ctx context.Context, validationDir, outDir string, now time.Time) (*Outcome, error) {
	input, err := batch.LatestFile(validationDir, sampling.SheetSuffix)
	if err != nil {
		return nil, err
	}
	return e.RunFile(ctx, input, outDir, now)
}

// RunFile evaluates the sheet at input.
func (e *Evaluator) RunFile(ctx context.Context, input, outDir string, now time.Time) (*Outcome, error) {
	e.log.Info("evaluating review sheet", zap.String("path", input))

	pairs, err := ReadPairsFile(input)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.log.Debug("validated rows loaded", zap.Int("rows", len(pairs)))

	rep, err := Evaluate(pairs)
	if err != nil {
		return nil, err
	}

	out := filepath.Join(outDir, batch.Timestamp(now)+ReportSuffix)
	err = batch.WriteFile(out, func(w io.Writer) error {
		return rep.WriteCSV(w, filepath.Base(input), now)
	})
	if err != nil {
		return nil, fmt.Errorf("write metrics: %w", err)
	}
	e.log.Info("metrics written",
		zap.String("path", out),
		zap.Float64("accuracy", rep.Accuracy),
		zap.Int("validated", rep.Total),
	)

	return &Outcome{Input: input, Output: out, Report: rep}, nil
}
