// Package batch classifies whole CSV files of names and owns the file
// conventions shared by the later pipeline steps.
package batch

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/genero/internal/classifier"
	"github.com/abhisek/genero/internal/logging"
)

// DefaultChunkSize is the number of rows a worker claims at a time.
const DefaultChunkSize = 256

// Options configures a Runner.
type Options struct {
	Workers   int
	ChunkSize int
	Logger    *zap.Logger
}

// Runner classifies names in parallel with a bounded worker pool.
type Runner struct {
	clf     *classifier.Classifier
	workers int
	chunk   int
	log     *zap.Logger
}

// NewRunner returns a runner over clf. Zero options select GOMAXPROCS
// workers and DefaultChunkSize.
func NewRunner(clf *classifier.Classifier, opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.ChunkSize < 1 {
		opts.ChunkSize = DefaultChunkSize
	}
	return &Runner{
		clf:     clf,
		workers: opts.Workers,
		chunk:   opts.ChunkSize,
		log:     logging.OrNop(opts.Logger),
	}
}

// Classify returns one Row per input, in input order. It stops early with
// ctx.Err() when ctx is cancelled.
func (r *Runner) Classify(ctx context.Context, in []string) ([]Row, error) {
	out := make([]Row, len(in))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	chunks := 0
	for lo := 0; lo < len(in); lo += r.chunk {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+r.chunk, len(in))
		chunks++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				out[i] = Row{Original: in[i], Result: r.clf.Classify(in[i])}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may have stopped scheduling without any worker failing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.log.Debug("batch classified",
		zap.Int("rows", len(in)),
		zap.Int("chunks", chunks),
		zap.Int("workers", r.workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}
