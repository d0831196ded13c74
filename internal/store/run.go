package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by Get when no run matches.
	ErrNotFound = errors.New("run not found")

	// ErrAmbiguous is returned by Get when an ID prefix matches several runs.
	ErrAmbiguous = errors.New("run ID prefix is ambiguous")
)

// Kind is the pipeline step a run performed.
type Kind string

const (
	KindInfer    Kind = "infer"
	KindSample   Kind = "sample"
	KindEvaluate Kind = "evaluate"
)

// Count dimensions stored per run.
const (
	DimensionGender = "gender"
	DimensionMethod = "method"
)

// Run is one recorded pipeline run.
type Run struct {
	ID           string
	Sequence     int64
	Kind         Kind
	StartedAt    time.Time
	FinishedAt   time.Time
	Input        string
	Output       string
	Rows         int
	RulesVersion string
	// Accuracy is set for evaluations only.
	Accuracy *float64

	// Genders and Methods are loaded by Get, not by List.
	Genders map[string]int
	Methods map[string]int
}

// Duration returns how long the run took.
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// QueryOpts configures run listings.
type QueryOpts struct {
	Limit int  // max results (0 = unlimited)
	Kind  Kind // only runs of this kind ("" = all)
}

// RunRepo records and queries runs.
type RunRepo interface {
	// Save stores a run, assigning its ID when empty and its Sequence.
	Save(ctx context.Context, run *Run) error

	// List returns runs, newest first, without their counts.
	List(ctx context.Context, opts QueryOpts) ([]Run, error)

	// Get returns the run whose ID equals or starts with id, counts
	// included.
	Get(ctx context.Context, id string) (*Run, error)

	// Prune deletes all but the keep most recent runs and returns how many
	// were removed.
	Prune(ctx context.Context, keep int) (int64, error)
}
