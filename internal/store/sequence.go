package store

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Runs can start within the same millisecond, so timestamps alone do not
// order them. Every saved run claims the next value of a single-row counter.
var sequenceSchema = []string{
	`CREATE TABLE IF NOT EXISTS global_sequence (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`,
	`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`,
}

// Raw SQL: the builders have no UPDATE ... RETURNING.
const claimSequence = `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`

// nextSequence claims the next sequence number through q, the driver or an
// open transaction. A number claimed inside a transaction that rolls back
// is handed out again.
func nextSequence(ctx context.Context, q dialect.ExecQuerier) (int64, error) {
	rows := &entsql.Rows{}
	if err := q.Query(ctx, claimSequence, []any{}, rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, fmt.Errorf("next sequence: %w", err)
		}
		return 0, errors.New("next sequence: counter row missing")
	}
	var seq int64
	if err := rows.Scan(&seq); err != nil {
		return 0, fmt.Errorf("scan sequence: %w", err)
	}
	return seq, nil
}
