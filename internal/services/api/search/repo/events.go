package repo

import (
	"context"

	"needle/internal/modkit/repokit"
	perr "needle/internal/platform/errors"
	ptime "needle/internal/platform/time"
	"needle/internal/services/api/search/domain"
)

// Events appends runs to the clickhouse events table one row per run
type Events struct {
	ch repokit.Clickhouse
}

// NewEvents wraps a clickhouse seam
func NewEvents(ch repokit.Clickhouse) *Events {
	if ch == nil {
		panic("search.Events requires a non nil Clickhouse")
	}
	return &Events{ch: ch}
}

// Record appends one event
func (e *Events) Record(ctx context.Context, run domain.Run) error {
	row := []any{run.ID, run.Kind, run.Found, ptime.Micros(run.Elapsed), ptime.UTC(run.CreatedAt)}
	return perr.WrapIf(e.ch.Insert(ctx, EventsTable, [][]any{row}), perr.ErrorCodeDB, "record event")
}
