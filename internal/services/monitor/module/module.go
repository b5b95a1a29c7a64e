// Package module implements the monitor module
package module

import (
	"screenwatch/internal/modkit"
	"screenwatch/internal/modkit/httpkit"
	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/services/monitor/domain"
	"screenwatch/internal/services/monitor/service"
)

// Ports exposed by the monitor module
type Ports struct {
	Runner domain.RunnerPort
	Config domain.RunConfig
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the monitor module. It requires WithPorts(domain.Ports) with a
// capture provider and a dispatcher; sinks are optional
func New(deps modkit.Deps, o Options, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("monitor"),
	}, opts...)...)

	ports, _ := b.Ports.(domain.Ports)
	if ports.Capture == nil {
		return nil, perr.Configf("monitor module: capture provider is required")
	}
	if ports.Dispatcher == nil {
		return nil, perr.Configf("monitor module: analysis dispatcher is required")
	}

	cfg, err := o.RunConfig(ports.Dispatcher.Mode())
	if err != nil {
		return nil, err
	}
	loop, err := service.New(cfg, ports.Capture, ports.Dispatcher, ports.Sinks...)
	if err != nil {
		return nil, err
	}

	return &Module{deps: deps, ports: Ports{Runner: loop, Config: cfg}}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "monitor" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
