// Package module wires conversions into the API using modkit
package module

import (
	"net/http"

	modkit "baseconv/internal/modkit"
	"baseconv/internal/modkit/httpkit"
	"baseconv/internal/platform/config"
	str "baseconv/internal/platform/strings"

	convhttp "baseconv/internal/services/api/convert/http"
	convrepo "baseconv/internal/services/api/convert/repo"
	convsvc "baseconv/internal/services/api/convert/service"
	statsdom "baseconv/internal/services/api/stats/domain"
)

// Module implements the convert API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)

	svc convsvc.Service
}

// Ports declares what this module needs injected from other modules
// Events comes from the stats module and may be nil
type Ports struct {
	Events statsdom.EventSink
}

// FromConfig reads service options from the API config
func FromConfig(cfg config.Conf) convsvc.Options {
	return convsvc.Options{
		MaxInput:      cfg.MayIntRange("MAX_INPUT", convsvc.DefaultMaxInput, 1, 1<<20),
		BatchMax:      cfg.MayIntRange("BATCH_MAX", convsvc.DefaultBatchMax, 1, 10_000),
		Record:        cfg.MayBool("RECORD", true),
		LedgerTimeout: cfg.MayDuration("LEDGER_TIMEOUT", convsvc.DefaultLedgerTimeout),
	}
}

// New constructs the convert module
// options not covered by modkit come from deps.Cfg via FromConfig
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("convert"),
		modkit.WithPrefix("/convert"),
	}, opts...)...)

	so := FromConfig(deps.Cfg)
	so.Events = modkit.PortsAs[Ports](b).Events
	svc := convsvc.New(deps.PG, convrepo.NewPG(), so)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		convhttp.Register(r, m.svc)
		external(r)
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

// Ports exposes the conversion service to other modules
func (m *Module) Ports() any { return m.svc }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
