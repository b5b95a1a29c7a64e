package modkit

import (
	"net/http"

	"screenwatch/internal/modkit/httpkit"
)

// Built is the resolved result of a module's options
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Subrouter defaults to the identity; Register defaults to a no-op
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

type Option func(*Built)

// Build applies opts in order, so later options win
func Build(opts ...Option) Built {
	b := Built{
		Subrouter: func(r httpkit.Router) httpkit.Router { return r },
		Register:  func(httpkit.Router) {},
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func WithName(name string) Option { return func(b *Built) { b.Name = name } }

func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends to the module's stack; the caller's slice is copied
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) {
		b.Mw = append(b.Mw[:len(b.Mw):len(b.Mw)], mw...)
	}
}

// WithPorts hands a module the ports it consumes; the type is declared by that module
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister adds endpoints to the module's router after its own
func WithRegister(fn func(httpkit.Router)) Option { return func(b *Built) { b.Register = fn } }
