package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"needle/internal/modkit/repokit"
	perr "needle/internal/platform/errors"
	ptime "needle/internal/platform/time"
	"needle/internal/services/api/search/domain"
)

// History records runs into postgres and lists them back
// listings run under a statement timeout
type History struct {
	db     repokit.TxRunner
	binder repokit.Binder[Repo]
	reads  repokit.TxRunner
}

// NewHistory binds the history repo to db, readTimeout bounds each listing
func NewHistory(db repokit.TxRunner, binder repokit.Binder[Repo], readTimeout time.Duration) *History {
	if db == nil {
		panic("search.History requires a non nil TxRunner")
	}
	if binder == nil {
		panic("search.History requires a non nil Repo binder")
	}
	reads := db
	if readTimeout > 0 {
		reads = repokit.WithBeginHooks(db, repokit.StatementTimeout(readTimeout))
	}
	return &History{db: db, binder: binder, reads: reads}
}

// Record inserts one run
func (h *History) Record(ctx context.Context, run domain.Run) error {
	err := repokit.MustBind(h.binder, h.db).Insert(ctx, RowRun{
		ID:        run.ID.String(),
		Kind:      run.Kind,
		Found:     run.Found,
		ElapsedUS: ptime.Micros(run.Elapsed),
		Input:     run.Input,
		Result:    run.Result,
		CreatedAt: ptime.UTC(run.CreatedAt),
	})
	return perr.WithOp(perr.FromPostgresf(err, "record %s run", run.Kind), "search.history.record")
}

// Recent lists the newest runs, kind empty means all kinds
func (h *History) Recent(ctx context.Context, kind string, limit int) ([]domain.Run, error) {
	var rows []RowRun
	err := repokit.WithTx(ctx, h.reads, func(q repokit.Queryer) error {
		var err error
		rows, err = repokit.MustBind(h.binder, q).Recent(ctx, kind, limit)
		return err
	})
	if err != nil {
		return nil, perr.WithOp(perr.FromPostgres(err, "list runs"), "search.history.recent")
	}
	out := make([]domain.Run, 0, len(rows))
	for _, r := range rows {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDB, "bad run id %q", r.ID)
		}
		out = append(out, domain.Run{
			ID:        id,
			Kind:      r.Kind,
			Found:     r.Found,
			Elapsed:   time.Duration(r.ElapsedUS) * time.Microsecond,
			ElapsedUS: r.ElapsedUS,
			Input:     r.Input,
			Result:    r.Result,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
