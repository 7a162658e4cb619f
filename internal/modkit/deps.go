// Package modkit provides module wiring and core deps
package modkit

import (
	"needle/internal/modkit/repokit"
	"needle/internal/platform/config"
	"needle/internal/platform/logger"
	"needle/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// PG and CH are nil when the backend is disabled, modules degrade instead of failing
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  repokit.Clickhouse
}

// FromStore builds Deps from an open store
// a nil store yields deps with no backends
func FromStore(st *store.Store, cfg config.Conf, log logger.Logger) Deps {
	d := Deps{Log: log, Cfg: cfg}
	if st != nil {
		d.PG = st.PG
		d.CH = st.CH
	}
	return d
}

// Named returns a logger tagged with component, for module internals
func (d Deps) Named(component string) logger.Logger {
	return d.Log.With().Str("component", component).Logger()
}
