// Package api wires the conversion, stats and meta modules into one HTTP service
package api

import (
	"context"
	"net/http"
	"time"

	"baseconv/internal/platform/config"
	perr "baseconv/internal/platform/errors"
	"baseconv/internal/platform/logger"
	phttp "baseconv/internal/platform/net/http"
	"baseconv/internal/platform/net/middleware"
	"baseconv/internal/platform/store"

	"baseconv/internal/modkit"
	"baseconv/internal/modkit/httpkit"
	"baseconv/internal/modkit/module"
	"baseconv/internal/modkit/swaggerkit"

	convertmod "baseconv/internal/services/api/convert/module"
	convertrepo "baseconv/internal/services/api/convert/repo"
	metamod "baseconv/internal/services/api/meta/module"
	statsmod "baseconv/internal/services/api/stats/module"
	statsrepo "baseconv/internal/services/api/stats/repo"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
// reads CORS_ORIGINS, REQUEST_TIMEOUT, THROTTLE and THROTTLE_WAIT from the config
func Mount(r phttp.Router, opt Options) {
	st := opt.Store
	if st == nil {
		st = &store.Store{}
	}
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}

	deps := modkit.Deps{
		Log: *log,
		Cfg: opt.Config,
		PG:  st.PG,
		CH:  st.CH,
	}

	// stats owns the usage sink; convert publishes into it
	stats := statsmod.New(deps)
	events := module.MustPortsOf[statsmod.Ports](stats).Events

	convertMW := []func(http.Handler) http.Handler{middleware.AllowContentType("application/json")}
	if n := opt.Config.MayInt("THROTTLE", 0); n > 0 {
		convertMW = append(convertMW, middleware.Throttle(n, n, opt.Config.MayDuration("THROTTLE_WAIT", 5*time.Second)))
	}
	convert := convertmod.New(deps,
		modkit.WithPorts(convertmod.Ports{Events: events}),
		modkit.WithMiddlewares(convertMW...),
	)

	mods := []module.Module{
		metamod.New(deps),
		convert,
		stats,
	}

	// heartbeat answers before any routing; chi wants Use ahead of the first route
	r.Use(middleware.Heartbeat("/health"))

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", nil),
		Timeout:     opt.Config.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// ports go in the registry first so meta can list every module
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	log.Debug().Strs("modules", module.Names()).Msg("api mounted")
}

// Migrate creates the ledger and usage tables on the enabled backends
func Migrate(ctx context.Context, st *store.Store, pg, ch bool) error {
	if st == nil {
		return nil
	}
	if pg && st.PG != nil {
		if err := convertrepo.Migrate(ctx, st.PG); err != nil {
			return err
		}
		logger.C(ctx).Info().Msg("ledger migrated")
	}
	if ch && st.CH != nil {
		if err := statsrepo.NewCH(st.CH).Migrate(ctx); err != nil {
			return perr.Wrap(err, perr.ErrorCodeDB, "migrate usage events")
		}
		logger.C(ctx).Info().Msg("usage events migrated")
	}
	return nil
}
