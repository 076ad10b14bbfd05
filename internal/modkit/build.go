package modkit

import (
	"net/http"

	"baseconv/internal/modkit/httpkit"
)

// Built is the resolved option set a module constructor reads
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(httpkit.Router)
}

// Build applies opts over the defaults; Register is never nil
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// PortsAs returns the injected ports as T, or the zero T when absent or of another type
func PortsAs[T any](b Built) T {
	v, _ := b.Ports.(T)
	return v
}
