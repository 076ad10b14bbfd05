package store

import (
	"context"
	"fmt"
	"time"

	chx "baseconv/internal/platform/store/ch"
	"baseconv/internal/platform/store/pg"
)

var (
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second

	openPGClient = pg.Open
	openCHClient = func(ctx context.Context, cfg chx.Config) (chClient, error) {
		c, err := chx.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
)

// openPG opens the pool, waits for it to answer, then wraps it with the sql adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := openPGClient(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	// ping the pool directly so boot pings do not show up in the sql trace
	attempts := orInt(cfg.PG.ConnectRetries, 20)
	if err := pingWithBackoff(ctx, attempts, orDuration(cfg.PG.PingTimeout, 3*time.Second), p.Ping); err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}
	s.Log.Info().Int32("max_conns", cfg.PG.MaxConns).Bool("log_sql", cfg.PG.LogSQL).Msg("postgres ready")
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := openCHClient(ctx, chx.Config{
		URL:        cfg.CH.URL,
		ClientName: cfg.CH.ClientName,
		ClientTag:  cfg.CH.ClientTag,
	})
	if err != nil {
		return nil, err
	}
	attempts := orInt(cfg.CH.ConnectRetries, 10)
	if err := pingWithBackoff(ctx, attempts, orDuration(cfg.CH.PingTimeout, 3*time.Second), c.Ping); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("clickhouse: %w", err)
	}
	s.Log.Info().Str("client_tag", cfg.CH.ClientTag).Msg("clickhouse ready")
	return newCHAdapter(c), nil
}

// pingWithBackoff calls ping until it succeeds, attempts run out, or ctx ends
// each call gets its own timeout and the wait doubles up to backoffCeiling
func pingWithBackoff(ctx context.Context, attempts int, timeout time.Duration, ping func(context.Context) error) error {
	var lastErr error
	wait := backoffStart
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
		if i == attempts-1 {
			break
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait = min(wait*2, backoffCeiling)
	}
	return fmt.Errorf("ping failed after %d attempts: %w", attempts, lastErr)
}
