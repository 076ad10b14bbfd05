// Package module wires stats into the API using modkit
package module

import (
	"net/http"

	modkit "baseconv/internal/modkit"
	"baseconv/internal/modkit/httpkit"
	str "baseconv/internal/platform/strings"
	"baseconv/internal/services/api/stats/domain"
	statshttp "baseconv/internal/services/api/stats/http"
	statsrepo "baseconv/internal/services/api/stats/repo"
	statssvc "baseconv/internal/services/api/stats/service"
)

// Module implements the stats module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)

	svc statssvc.Service
}

// Ports are what stats offers other modules
// Events is nil when clickhouse is disabled so callers can skip recording
type Ports struct {
	Stats  domain.ServicePort
	Events domain.EventSink
}

// New constructs the stats module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("stats"), modkit.WithPrefix("/stats")}, opts...)...)

	var r statsrepo.Repo
	if deps.CH != nil {
		r = statsrepo.NewCH(deps.CH)
	}
	svc := statssvc.New(r)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
		ports:  Ports{Stats: svc},
	}
	if r != nil {
		m.ports.Events = svc
	}

	external := b.Register
	m.register = func(rr httpkit.Router) {
		statshttp.Register(rr, m.svc)
		external(rr)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.Prefix(), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		m.register(rr)
	})
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
