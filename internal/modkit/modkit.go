package modkit

import "baseconv/internal/modkit/module"

// Module is the surface every API module offers: routes, ports and a name
type Module = module.Module
