// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "baseconv/internal/modkit"
	"baseconv/internal/modkit/httpkit"
	"baseconv/internal/modkit/module"
	str "baseconv/internal/platform/strings"

	metahttp "baseconv/internal/services/api/meta/http"
)

// ServiceName is reported by health and service
const ServiceName = "baseconv-api"

// Module implements the modkit.Module interface
type Module struct {
	deps     modkit.Deps
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		startedAt: time.Now(),
	}

	// keep disabled backends as untyped nil so ready reports them skipped
	var pg, ch any
	if deps.PG != nil {
		pg = deps.PG
	}
	if deps.CH != nil {
		ch = deps.CH
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName:  ServiceName,
			StartedAt:    m.startedAt,
			PG:           pg,
			CH:           ch,
			Modules:      module.Names,
			ReadyTimeout: deps.Cfg.MayDuration("READY_TIMEOUT", 2*time.Second),
		})
		external(r)
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.Prefix(), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		m.register(rr)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
