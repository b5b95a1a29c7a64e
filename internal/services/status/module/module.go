// Package module wires the status board and its endpoints using modkit
package module

import (
	"time"

	"screenwatch/internal/core/version"
	"screenwatch/internal/modkit"
	"screenwatch/internal/modkit/httpkit"
	str "screenwatch/internal/platform/strings"
	mdom "screenwatch/internal/services/monitor/domain"
	statushttp "screenwatch/internal/services/status/http"
	"screenwatch/internal/services/status/service"
)

// Ports exposed by the status module. Sink must be attached to the monitor loop
type Ports struct {
	Sink mdom.SinkPort
}

type Module struct {
	built modkit.Built
	board *service.Board
	hdeps statushttp.Deps
}

var _ modkit.Module = (*Module)(nil)

// New builds the board. /meta is always mounted; the monitor routes go under
// the prefix, /monitor unless overridden.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	defaults := []modkit.Option{modkit.WithName("status"), modkit.WithPrefix("/monitor")}
	board := service.NewBoard()
	m := &Module{
		built: modkit.Build(append(defaults, opts...)...),
		board: board,
		hdeps: statushttp.Deps{
			ServiceName: version.Info().Service,
			StartedAt:   time.Now(),
			Board:       board,
		},
	}
	deps.Logger("status").Debug().Str("prefix", m.Prefix()).Msg("status board ready")
	return m
}

func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route("/meta", func(meta httpkit.Router) {
		statushttp.RegisterMeta(meta, m.hdeps)
	})
	r.Route(m.Prefix(), func(mon httpkit.Router) {
		mon.Use(m.built.Mw...)
		mon = m.built.Subrouter(mon)
		statushttp.RegisterMonitor(mon, m.hdeps)
		m.built.Register(mon)
	})
}

func (m *Module) Name() string   { return str.MustString(m.built.Name, "module name") }
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }
func (m *Module) Ports() any     { return Ports{Sink: m.board} }
