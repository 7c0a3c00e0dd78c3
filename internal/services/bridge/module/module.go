// Package module wires the bridge service for the exported C surface
package module

import (
	"libfj/internal/adapters/factory"
	"libfj/internal/core/foreign"
	"libfj/internal/platform/config"
	"libfj/internal/services/bridge/domain"
	"libfj/internal/services/bridge/service"
)

// Module owns the bridge service
type Module struct {
	svc *service.Service
}

// New constructs the bridge module. Configuration is read again on every
// call so a host can change LIBFJ_FACTORY_* between calls
func New(cfg config.Conf, alloc foreign.Allocator) *Module {
	return &Module{svc: service.New(Dialer(cfg), alloc)}
}

// Dialer builds a fresh Factory client from cfg
func Dialer(cfg config.Conf) domain.Dialer {
	return func() (domain.Factory, error) {
		opts := FromConfig(cfg)
		c, err := factory.NewClient(factory.Options{
			BaseURL:   opts.BaseURL,
			Timeout:   opts.Timeout,
			Token:     opts.Token,
			UserAgent: opts.UserAgent,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Name identifies the module in logs
func (m *Module) Name() string { return "bridge" }

// Service returns the bridge service
func (m *Module) Service() *service.Service { return m.svc }
