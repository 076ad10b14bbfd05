// Package repo provides clickhouse access for usage stats
package repo

import (
	"context"
	"time"

	"baseconv/internal/modkit/repokit"

	"github.com/google/uuid"
)

// Table is the usage stream table
const Table = "conversion_events"

// Repo is the minimal persistence surface for stats
type Repo interface {
	Insert(ctx context.Context, rows []EventRow) error
	Pairs(ctx context.Context, start, end time.Time, from, to int) ([]RowPair, error)
	Reasons(ctx context.Context, start, end time.Time) ([]RowReason, error)
	Migrate(ctx context.Context) error
}

// EventRow is one row of conversion_events
type EventRow struct {
	TS     time.Time
	ID     uuid.UUID
	From   int32
	To     int32
	OK     uint8
	Reason string
	Digits uint32
}

// RowPair is a (from, to) aggregate
type RowPair struct {
	From        int32
	To          int32
	Conversions uint64
	Failures    uint64
}

// RowReason is a failure count for one reason
type RowReason struct {
	Reason   string
	Failures uint64
}

type queries struct{ db repokit.Clickhouse }

// NewCH binds the repo to a clickhouse seam
func NewCH(db repokit.Clickhouse) Repo {
	if db == nil {
		panic("stats repo requires a non nil Clickhouse")
	}
	return &queries{db: db}
}

const ddl = `
CREATE TABLE IF NOT EXISTS conversion_events (
	ts DateTime64(3, 'UTC'),
	id UUID,
	from_base Int32,
	to_base Int32,
	ok UInt8,
	reason LowCardinality(String),
	digits UInt32
)
ENGINE = MergeTree
PARTITION BY toYYYYMM(ts)
ORDER BY (ts, from_base, to_base)
`

func (r *queries) Migrate(ctx context.Context) error {
	return r.db.Exec(ctx, ddl)
}

func (r *queries) Insert(ctx context.Context, rows []EventRow) error {
	if len(rows) == 0 {
		return nil
	}
	batch := make([][]any, 0, len(rows))
	for _, e := range rows {
		batch = append(batch, []any{e.TS, e.ID, e.From, e.To, e.OK, e.Reason, e.Digits})
	}
	return r.db.Insert(ctx, Table, batch)
}

func (r *queries) Pairs(ctx context.Context, start, end time.Time, from, to int) ([]RowPair, error) {
	// zero from or to means any
	const sql = `
SELECT from_base, to_base, count() AS conversions, countIf(ok = 0) AS failures
FROM conversion_events
WHERE ts >= ? AND ts < ?
AND (? = 0 OR from_base = ?)
AND (? = 0 OR to_base = ?)
GROUP BY from_base, to_base
ORDER BY conversions DESC, from_base ASC, to_base ASC
`
	f, t := int32(from), int32(to)
	rows, err := r.db.Query(ctx, sql, start, end, f, f, t, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowPair
	for rows.Next() {
		var rr RowPair
		if err := rows.Scan(&rr.From, &rr.To, &rr.Conversions, &rr.Failures); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Reasons(ctx context.Context, start, end time.Time) ([]RowReason, error) {
	const sql = `
SELECT reason, count() AS failures
FROM conversion_events
WHERE ts >= ? AND ts < ? AND ok = 0
GROUP BY reason
ORDER BY failures DESC, reason ASC
`
	rows, err := r.db.Query(ctx, sql, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowReason
	for rows.Next() {
		var rr RowReason
		if err := rows.Scan(&rr.Reason, &rr.Failures); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
