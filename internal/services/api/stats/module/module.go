// Package module wires stats into the API using modkit
package module

import (
	"context"

	modkit "needle/internal/modkit"
	"needle/internal/modkit/httpkit"
	"needle/internal/services/api/stats/domain"
	statshttp "needle/internal/services/api/stats/http"
	statsrepo "needle/internal/services/api/stats/repo"
	statssvc "needle/internal/services/api/stats/service"
)

// Module implements the stats module
type Module struct {
	modkit.Base
	svc *statssvc.Svc
}

// New constructs the stats module, it serves 503 until clickhouse is configured
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("stats"), modkit.WithPrefix("/stats")}, opts...)

	var r statsrepo.Repo
	if deps.CH != nil {
		r = statsrepo.NewCH(deps.CH)
	}
	svc := statssvc.New(r)
	log := deps.Named("stats")
	log.Info().Bool("analytics", r != nil).Msg("stats module ready")

	m := &Module{svc: svc}
	m.Base = modkit.NewBase(b, func(rr httpkit.Router) {
		statshttp.Register(rr, m.svc)
	}, adaptStatsPort{svc: svc})
	return m
}

type adaptStatsPort struct{ svc *statssvc.Svc }

// Summary returns per kind totals over the requested window
func (a adaptStatsPort) Summary(ctx context.Context, in domain.SummaryInput) ([]domain.KindSummary, error) {
	return a.svc.Summary(ctx, in)
}
