package store

import (
	"context"
	"fmt"
	"time"

	chx "needle/internal/platform/store/ch"
	"needle/internal/platform/store/pg"
)

// sleep is a seam so retry tests do not wait
var sleep = time.Sleep

// openPG opens pg and wraps it with our sql adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	if err := pingWithRetry(ctx, p.Pool.Ping, cfg.PG.ConnectRetries, cfg.PG.PingTimeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}
	// publish adapter only after the pool is healthy
	return newPGAdapter(p), nil
}

// pingWithRetry pings until success, ctx is done or attempts run out
// backoff doubles from 150ms up to 2s
func pingWithRetry(ctx context.Context, ping func(context.Context) error, attempts int, timeout time.Duration) error {
	const (
		backoffStart   = 150 * time.Millisecond
		backoffCeiling = 2 * time.Second
	)
	if attempts <= 0 {
		attempts = 20
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	var lastErr error
	backoff := backoffStart
	for i := 0; i < attempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = ping(toCtx)
		cancel()

		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		sleep(backoff)
		backoff = min(backoff*2, backoffCeiling)
	}
	return fmt.Errorf("ping failed after %d attempts: %w", attempts, lastErr)
}

func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:        cfg.CH.URL,
		ClientName: cfg.CH.ClientName,
		ClientTag:  cfg.CH.ClientTag,
	})
	if err != nil {
		return nil, err
	}
	if err := pingWithRetry(ctx, c.Ping, 5, 3*time.Second); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("clickhouse: %w", err)
	}
	s.Log.Debug().Str("client", cfg.CH.ClientName).Msg("clickhouse connected")
	return newCHAdapter(c), nil
}
