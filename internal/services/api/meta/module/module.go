// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"needle/internal/core/version"
	modkit "needle/internal/modkit"
	"needle/internal/modkit/httpkit"

	metahttp "needle/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)

	m := &Module{startedAt: time.Now()}
	d := metahttp.Deps{
		ServiceName:  version.Info().Service,
		StartedAt:    m.startedAt,
		ReadyTimeout: deps.Cfg.MayDuration("READY_TIMEOUT", 2*time.Second),
		PG:           deps.PG,
		CH:           deps.CH,
	}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) { metahttp.Register(r, d) }, nil)
	return m
}
