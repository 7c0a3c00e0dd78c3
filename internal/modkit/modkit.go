package modkit

import (
	"libfj/internal/modkit/httpkit"
)

// Module is the common surface for HTTP modules that can mount routes and expose ports
// keep this tiny so modules stay decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r httpkit.Router)
	// Ports returns a module specific port set interface for cross wiring
	Ports() any

	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// Mount mounts every module on r in order
func Mount(r httpkit.Router, mods ...Module) {
	for _, m := range mods {
		m.MountRoutes(r)
	}
}
