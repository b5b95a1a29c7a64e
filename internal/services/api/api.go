// Package api mounts modules onto the versioned status API
package api

import (
	"time"

	"screenwatch/internal/modkit/httpkit"
	"screenwatch/internal/modkit/module"
	phttp "screenwatch/internal/platform/net/http"
)

// Options are the API options
type Options struct {
	// Origins allowed by CORS, empty allows any
	Origins []string
	// Slow marks requests at or above this duration in the access log
	Slow    time.Duration
	Modules []module.Module
}

// Mount registers each module's ports and mounts its routes under /api/v1
func Mount(r phttp.Router, opt Options) {
	stack := httpkit.CommonStack(httpkit.StackOptions{Origins: opt.Origins, Slow: opt.Slow})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range opt.Modules {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
