package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix, applies mw, then lets mount register routes
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		if mount != nil {
			mount(sub)
		}
	})
}
