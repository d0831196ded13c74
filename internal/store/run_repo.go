package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	tableRuns   = "runs"
	tableCounts = "run_counts"
)

var runColumns = []string{
	"id", "seq", "kind", "started_at", "finished_at",
	"input_path", "output_path", "row_count", "rules_version", "accuracy",
}

// runRepo implements RunRepo with ent's SQL builders.
type runRepo struct {
	drv *entsql.Driver
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *runRepo) Save(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	var accuracy any
	if run.Accuracy != nil {
		accuracy = *run.Accuracy
	}

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	seq, err := nextSequence(ctx, tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	q, args := builder().Insert(tableRuns).
		Columns(runColumns...).
		Values(
			run.ID, seq, string(run.Kind),
			run.StartedAt.UnixMilli(), run.FinishedAt.UnixMilli(),
			run.Input, run.Output, run.Rows, run.RulesVersion, accuracy,
		).
		Query()
	if err := tx.Exec(ctx, q, args, nil); err != nil {
		tx.Rollback()
		return fmt.Errorf("save run: %w", err)
	}

	ins := builder().Insert(tableCounts).Columns("run_id", "dimension", "label", "total")
	n := 0
	for _, dim := range []struct {
		name   string
		counts map[string]int
	}{
		{DimensionGender, run.Genders},
		{DimensionMethod, run.Methods},
	} {
		for _, label := range sortedLabels(dim.counts) {
			ins.Values(run.ID, dim.name, label, dim.counts[label])
			n++
		}
	}
	if n > 0 {
		q, args := ins.Query()
		if err := tx.Exec(ctx, q, args, nil); err != nil {
			tx.Rollback()
			return fmt.Errorf("save run counts: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	run.Sequence = seq
	return nil
}

func (r *runRepo) List(ctx context.Context, opts QueryOpts) ([]Run, error) {
	b := builder()
	sel := b.Select(runColumns...).
		From(b.Table(tableRuns)).
		OrderBy(entsql.Desc("seq"))
	if opts.Kind != "" {
		sel.Where(entsql.EQ("kind", string(opts.Kind)))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return r.queryRuns(ctx, sel)
}

func (r *runRepo) Get(ctx context.Context, id string) (*Run, error) {
	b := builder()
	sel := b.Select(runColumns...).
		From(b.Table(tableRuns)).
		Where(entsql.HasPrefix("id", id)).
		Limit(2)
	runs, err := r.queryRuns(ctx, sel)
	if err != nil {
		return nil, err
	}
	switch len(runs) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguous, id)
	}

	run := &runs[0]
	if err := r.loadCounts(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

func (r *runRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	// Find the sequence threshold: the newest run that falls outside keep.
	b := builder()
	q, args := b.Select("seq").
		From(b.Table(tableRuns)).
		OrderBy(entsql.Desc("seq")).
		Offset(keep).
		Limit(1).
		Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return 0, fmt.Errorf("query runs for prune: %w", err)
	}
	var threshold int64
	found := rows.Next()
	if found {
		if err := rows.Scan(&threshold); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	rows.Close()
	if !found {
		return 0, nil // fewer than keep runs exist
	}

	q, args = builder().Delete(tableRuns).
		Where(entsql.LTE("seq", threshold)).
		Query()
	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	return res.RowsAffected()
}

func (r *runRepo) queryRuns(ctx context.Context, sel *entsql.Selector) ([]Run, error) {
	q, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			run               Run
			kind              string
			started, finished int64
			accuracy          sql.NullFloat64
		)
		err := rows.Scan(
			&run.ID, &run.Sequence, &kind, &started, &finished,
			&run.Input, &run.Output, &run.Rows, &run.RulesVersion, &accuracy,
		)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Kind = Kind(kind)
		run.StartedAt = time.UnixMilli(started)
		run.FinishedAt = time.UnixMilli(finished)
		if accuracy.Valid {
			v := accuracy.Float64
			run.Accuracy = &v
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

func (r *runRepo) loadCounts(ctx context.Context, run *Run) error {
	b := builder()
	q, args := b.Select("dimension", "label", "total").
		From(b.Table(tableCounts)).
		Where(entsql.EQ("run_id", run.ID)).
		OrderBy("dimension", "label").
		Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return fmt.Errorf("query run counts: %w", err)
	}
	defer rows.Close()

	run.Genders = make(map[string]int)
	run.Methods = make(map[string]int)
	for rows.Next() {
		var dim, label string
		var total int
		if err := rows.Scan(&dim, &label, &total); err != nil {
			return fmt.Errorf("scan run count: %w", err)
		}
		switch dim {
		case DimensionGender:
			run.Genders[label] = total
		case DimensionMethod:
			run.Methods[label] = total
		}
	}
	return rows.Err()
}

func sortedLabels(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
