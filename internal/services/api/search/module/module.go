// Package module wires search into the API using modkit
package module

import (
	"time"

	modkit "needle/internal/modkit"
	"needle/internal/modkit/httpkit"
	"needle/internal/modkit/repokit"
	"needle/internal/services/api/search/domain"
	searchhttp "needle/internal/services/api/search/http"
	searchrepo "needle/internal/services/api/search/repo"
	searchsvc "needle/internal/services/api/search/service"
)

// Module implements the search module
type Module struct {
	modkit.Base
	svc *searchsvc.Svc
}

// New constructs the search module
// history needs PG and HISTORY enabled, events need CH, both are optional
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("search"), modkit.WithPrefix("/search")}, opts...)
	log := deps.Named("search")

	var (
		recs []domain.Recorder
		hist domain.History
	)
	if deps.PG != nil && deps.Cfg.MayBool("HISTORY", true) {
		h := searchrepo.NewHistory(deps.PG, searchrepo.NewPG(), deps.Cfg.MayDuration("HISTORY_READ_TIMEOUT", 2*time.Second))
		recs = append(recs, h)
		hist = h
	}
	if deps.CH != nil {
		recs = append(recs, searchrepo.NewEvents(deps.CH))
	}

	limits := searchsvc.LimitsFromConf(deps.Cfg)
	svc := searchsvc.New(limits, searchrepo.Recorders(recs...), hist)
	log.Info().
		Bool("history", hist != nil).
		Int("recorders", len(recs)).
		Int("max_text_bytes", limits.MaxTextBytes).
		Int("max_numbers", limits.MaxNumbers).
		Msg("search module ready")

	m := &Module{svc: svc}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		searchhttp.Register(r, m.svc, m.svc.Limits())
	}, adaptSearchPort{svc: svc})
	return m
}

// Schema returns the DDL search needs on the enabled backends
func Schema() repokit.Schema { return searchrepo.Schema() }
