// Package module defines the minimal contract for a modkit module
package module

import phttp "baseconv/internal/platform/net/http"

// Module mounts routes, exposes ports for cross wiring and names itself
// it lives apart from modkit so a module can export its own ports type without an import cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
