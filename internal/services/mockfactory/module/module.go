// Package module wires the mock Factory into an HTTP server using modkit
package module

import (
	"context"
	"net/http"

	modkit "libfj/internal/modkit"
	"libfj/internal/modkit/httpkit"
	mfhttp "libfj/internal/services/mockfactory/http"
	mfsvc "libfj/internal/services/mockfactory/service"
)

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	svc   mfsvc.Service
}

// New loads the fixtures named by MOCKFACTORY_FIXTURES (or path, when set) and builds the module
func New(ctx context.Context, deps modkit.Deps, path string, opts ...modkit.Option) (*Module, error) {
	if path == "" {
		path = deps.Cfg.Prefix("MOCKFACTORY_").MayString("FIXTURES", "")
	}
	s, err := mfsvc.New(ctx, mfsvc.FileSource{Path: path})
	if err != nil {
		return nil, err
	}
	m := &Module{deps: deps, svc: s}

	defaults := []modkit.Option{
		modkit.WithName("mockfactory"),
		modkit.WithPrefix("/api"),
		modkit.WithMiddlewares(httpkit.CommonStack()...),
	}
	b := modkit.Build(append(defaults, opts...)...)
	external := b.Register
	b.Register = func(r httpkit.Router) {
		mfhttp.Register(r, m.svc)
		external(r)
	}
	m.built = b
	return m, nil
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Ports exposes the catalogue service
func (m *Module) Ports() any { return m.svc }

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }
