// @title         baseconv API
// @version       1.0
// @description   Signed number conversion between bases 2, 8, 10 and 16, with a ledger and usage stats
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"baseconv/internal/modkit/repokit"
	"baseconv/internal/platform/config"
	"baseconv/internal/platform/logger"
	phttp "baseconv/internal/platform/net/http"
	"baseconv/internal/platform/store"

	"baseconv/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("BASECONV_API_")

	// both backends are optional; conversion works without either
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	pgOn := pgCfg.MayBool("ENABLED", false)
	chOn := chCfg.MayBool("ENABLED", false)

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := store.Config{AppName: "baseconv-api"}
	if pgOn {
		cfg.PG = store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayIntRange("MAX_CONNS", 4, 1, 256)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		}
	}
	if chOn {
		cfg.CH = store.CHConfig{
			Enabled:    true,
			URL:        chCfg.MustString("DBURL"),
			ClientName: "baseconv",
			ClientTag:  "api",
		}
	}

	st, err := store.Open(ctx, cfg, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if pgOn || chOn {
		repokit.MustGuard(ctx, st)
	}

	if err := api.Migrate(ctx, st, pgCfg.MayBool("MIGRATE", false), chCfg.MayBool("MIGRATE", false)); err != nil {
		l.Panic().Err(err).Msg("migrations failed")
	}

	// reads BASECONV_API_ADDR / BASECONV_API_PORT / BASECONV_API_SHUTDOWN_GRACE
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

	l.Info().Str("addr", srv.Addr()).Bool("pg", pgOn).Bool("ch", chOn).Msg("baseconv api starting")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
