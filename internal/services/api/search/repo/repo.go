// Package repo provides postgres run history and clickhouse run events for search
package repo

import (
	"context"
	"time"

	"needle/internal/modkit/repokit"
	"needle/internal/platform/store"
	"needle/internal/services/api/search/domain"
)

// HistoryTable and EventsTable are owned by search, stats reads EventsTable
const (
	HistoryTable = "search_runs"
	EventsTable  = "search_events"
)

// Schema returns the idempotent DDL for both backends
func Schema() repokit.Schema {
	return repokit.Schema{
		PG: []string{
			`create table if not exists search_runs (
id uuid primary key,
kind text not null,
found boolean not null,
elapsed_us bigint not null,
input text not null,
result text not null,
created_at timestamptz not null default now()
)`,
			`create index if not exists search_runs_kind_created_idx on search_runs (kind, created_at desc)`,
		},
		CH: []string{
			`CREATE TABLE IF NOT EXISTS search_events (
id UUID,
kind LowCardinality(String),
found Bool,
elapsed_us Int64,
created_at DateTime64(6, 'UTC')
) ENGINE = MergeTree
ORDER BY (kind, created_at)`,
		},
	}
}

// Repo is the minimal persistence surface for run history
type Repo interface {
	Insert(ctx context.Context, r RowRun) error
	Recent(ctx context.Context, kind string, limit int) ([]RowRun, error)
}

// RowRun represents a search_runs row
type RowRun struct {
	ID        string
	Kind      string
	Found     bool
	ElapsedUS int64
	Input     string
	Result    string
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

func (r *queries) Insert(ctx context.Context, rr RowRun) error {
	const sql = `
insert into search_runs (id, kind, found, elapsed_us, input, result, created_at)
values ($1, $2, $3, $4, $5, $6, $7)
`
	return store.ExecOne(ctx, r.q, sql, rr.ID, rr.Kind, rr.Found, rr.ElapsedUS, rr.Input, rr.Result, rr.CreatedAt)
}

func (r *queries) Recent(ctx context.Context, kind string, limit int) ([]RowRun, error) {
	switch {
	case limit <= 0:
		limit = domain.RunsLimitDefault
	case limit > domain.RunsLimitMax:
		limit = domain.RunsLimitMax
	}
	const sql = `
select id::text, kind, found, elapsed_us, input, result, created_at
from search_runs
where ($1 = '' or kind = $1)
order by created_at desc
limit $2
`
	return store.Many(ctx, r.q, scanRun, sql, kind, limit)
}

func scanRun(row store.Row) (RowRun, error) {
	var rr RowRun
	err := row.Scan(&rr.ID, &rr.Kind, &rr.Found, &rr.ElapsedUS, &rr.Input, &rr.Result, &rr.CreatedAt)
	return rr, err
}
