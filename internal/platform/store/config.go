package store

import (
	"time"

	"needle/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot knobs
	ConnectRetries int           // default 20, exponential backoff capped at 2s
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string
}

// FromConf reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* off root
// urls are only required for enabled backends
func FromConf(root config.Conf, appName, role string) Config {
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	c := Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:        pgCfg.MayBool("ENABLED", pgCfg.Has("DBURL")),
			MaxConns:       int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs:    pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:         pgCfg.MayBool("LOG_SQL", false),
			ConnectRetries: pgCfg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pgCfg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled:    chCfg.MayBool("ENABLED", chCfg.Has("DBURL")),
			ClientName: appName,
			ClientTag:  role,
		},
	}
	if c.PG.Enabled {
		c.PG.URL = pgCfg.MustString("DBURL")
	}
	if c.CH.Enabled {
		c.CH.URL = chCfg.MustString("DBURL")
	}
	return c
}
