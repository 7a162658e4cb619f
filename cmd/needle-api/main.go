// @title         needle API
// @version       1.0
// @description   Substring and subarray-sum search over JSON

package main

import (
	"context"
	"os/signal"
	"syscall"

	"needle/internal/modkit/repokit"
	"needle/internal/platform/config"
	"needle/internal/platform/logger"
	phttp "needle/internal/platform/net/http"
	"needle/internal/platform/store"

	"needle/internal/services/api"
)

func main() {
	// bring up logging early, LOG_* env
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// backends are optional, SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* switch them on
	st, err := store.Open(ctx, store.FromConf(root, "needle", "api"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// enabled backends must answer before DDL runs
	repokit.MustGuard(ctx, st)

	if err := st.EnsureSchema(ctx, api.Schema()); err != nil {
		l.Fatal().Err(err).Msg("schema setup failed")
	}

	// http server (reads CORE_API_API_PORT and timeouts)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
