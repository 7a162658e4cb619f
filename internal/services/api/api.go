// Package api provides the HTTP API for the application
package api

import (
	"needle/internal/platform/config"
	"needle/internal/platform/logger"
	phttp "needle/internal/platform/net/http"
	"needle/internal/platform/store"

	"needle/internal/modkit"
	"needle/internal/modkit/httpkit"
	"needle/internal/modkit/module"
	"needle/internal/modkit/swaggerkit"

	metamod "needle/internal/services/api/meta/module"
	searchmod "needle/internal/services/api/search/module"
	statsmod "needle/internal/services/api/stats/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Schema is the DDL every API module needs, apply it with store.EnsureSchema before Mount
func Schema() store.Schema {
	return searchmod.Schema()
}

// Mount mounts the API service onto the given router
// a nil Store runs every module without backends
func Mount(r phttp.Router, opt Options) []module.Module {
	log := logger.Get()
	if opt.Logger != nil {
		log = opt.Logger
	}
	deps := modkit.FromStore(opt.Store, opt.Config, *log)

	mods := []module.Module{
		metamod.New(deps),
		searchmod.New(deps),
		statsmod.New(deps),
	}

	// docs and profiler live outside the versioned stack
	swaggerkit.Mount(r, opt.EnableSwagger, opt.Config)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Str("prefix", "/api/v1"+m.Prefix()).Msg("module mounted")
		}
	})
	return mods
}
