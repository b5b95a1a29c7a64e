// Package module implements the analyze module
package module

import (
	"screenwatch/internal/modkit"
	"screenwatch/internal/modkit/httpkit"
	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/services/analyze/domain"
	"screenwatch/internal/services/analyze/service"
)

// Ports exposed by the analyze module
type Ports struct {
	Dispatcher domain.DispatcherPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the analyze module. Options set in overrides win over config.
// A remote model requires WithPorts(domain.Ports) carrying a Completer and a
// credential present at startup
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analyze"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	if overrides.Model != "" {
		cfg.Model = overrides.Model
	}
	if overrides.Timeout != 0 {
		cfg.Timeout = overrides.Timeout
	}

	mode, err := domain.ParseMode(cfg.Model)
	if err != nil {
		return nil, err
	}

	var remote domain.AnalyzerPort
	if mode.IsRemote() {
		ports, _ := b.Ports.(domain.Ports)
		if ports.Completer == nil {
			return nil, perr.Configf("analyze module: model %q needs a remote completer", mode.Model())
		}
		cred := Credential(deps.Cfg)
		if cred() == "" {
			return nil, perr.WithField(perr.Configf("OPENAI_API_KEY is not set; required for model %q", mode.Model()), "model")
		}
		remote = service.NewRemote(mode.Model(), ports.Completer, cred)
	}

	deps.Logger("analyze").Debug().Str("mode", mode.String()).Dur("timeout", cfg.Timeout).Msg("analyzer ready")

	return &Module{
		deps: deps,
		ports: Ports{
			Dispatcher: service.NewDispatcher(mode, service.Local{}, remote, service.Config{Timeout: cfg.Timeout}),
		},
	}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "analyze" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
