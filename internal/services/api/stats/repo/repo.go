// Package repo provides clickhouse access for stats
package repo

import (
	"context"
	"time"

	"needle/internal/modkit/repokit"
	"needle/internal/platform/store"
)

// Repo is the minimal read surface for stats
type Repo interface {
	Summary(ctx context.Context, since time.Time) ([]RowSummary, error)
}

// RowSummary is one kind bucket from search_events
type RowSummary struct {
	Kind   string
	Total  uint64
	Found  uint64
	MeanUS float64
}

type events struct{ ch repokit.Clickhouse }

// NewCH returns a Repo reading the search_events table
func NewCH(ch repokit.Clickhouse) Repo {
	if ch == nil {
		panic("stats.Repo requires a non nil Clickhouse")
	}
	return &events{ch: ch}
}

func (r *events) Summary(ctx context.Context, since time.Time) ([]RowSummary, error) {
	const sql = `
SELECT kind, count() AS total, countIf(found) AS found, avg(elapsed_us) AS mean_us
FROM search_events
WHERE created_at >= ?
GROUP BY kind
ORDER BY kind
`
	return store.Many(ctx, r.ch, scanSummary, sql, since)
}

func scanSummary(row store.Row) (RowSummary, error) {
	var rr RowSummary
	err := row.Scan(&rr.Kind, &rr.Total, &rr.Found, &rr.MeanUS)
	return rr, err
}
