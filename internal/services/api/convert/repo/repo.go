// Package repo provides postgres access for the conversion ledger
package repo

import (
	"context"
	"strings"
	"time"

	"baseconv/internal/modkit/repokit"
	perr "baseconv/internal/platform/errors"
	"baseconv/internal/platform/store"
	str "baseconv/internal/platform/strings"
)

// Repo is the minimal persistence surface for the ledger
type Repo interface {
	Insert(ctx context.Context, e Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// Entry is one row of conversions; Output or Reason is blank
type Entry struct {
	ID        string
	Input     string
	From      int
	To        int
	Output    string
	Reason    string
	CreatedAt time.Time
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// schema is applied in one tx by Migrate
var schema = []string{
	`create table if not exists conversions (
	id uuid primary key,
	input text not null,
	from_base integer not null,
	to_base integer not null,
	output text null,
	reason text null,
	created_at timestamptz not null default now()
)`,
	`create index if not exists conversions_created_at_idx on conversions (created_at desc, id desc)`,
}

// Migrate creates the ledger table when missing
func Migrate(ctx context.Context, db repokit.TxRunner) error {
	err := repokit.WithTx(ctx, db, func(q repokit.Queryer) error {
		return repokit.ExecAll(ctx, q, schema...)
	})
	return perr.FromPostgres(err, "migrate conversions")
}

func (r *queries) Insert(ctx context.Context, e Entry) error {
	const sql = `
insert into conversions (id, input, from_base, to_base, output, reason)
values ($1::uuid, $2, $3, $4, $5, $6)
`
	err := store.ExecOne(ctx, r.q, sql,
		e.ID, pgText(e.Input), clampBase(e.From), clampBase(e.To),
		str.SQLNull(pgText(e.Output)), str.SQLNull(e.Reason))
	return perr.FromPostgres(err, "insert conversion")
}

// clampBase keeps any client supplied base inside integer
// anything out there is unsupported anyway, the reason column says so
func clampBase(v int) int32 {
	const lo, hi = -1 << 31, 1<<31 - 1
	return int32(min(max(v, lo), hi))
}

// pgText replaces NUL, which postgres text rejects, with U+FFFD
func pgText(s string) string {
	if !strings.ContainsRune(s, 0) {
		return s
	}
	return strings.ReplaceAll(s, "\x00", "\uFFFD")
}

func (r *queries) Recent(ctx context.Context, limit int) ([]Entry, error) {
	const sql = `
select id::text, input, from_base, to_base, coalesce(output, ''), coalesce(reason, ''), created_at
from conversions
order by created_at desc, id desc
limit $1
`
	out, err := store.Many(ctx, r.q, scanEntry, sql, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list conversions")
	}
	return out, nil
}

func scanEntry(row store.Row) (Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.Input, &e.From, &e.To, &e.Output, &e.Reason, &e.CreatedAt)
	return e, err
}
