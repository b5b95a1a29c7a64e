// Package httpkit is what service modules use to mount routes, so they never
// reach into internal/platform/net/http themselves.
package httpkit

import (
	"net/http"

	phttp "screenwatch/internal/platform/net/http"
)

type (
	Router   = phttp.Router
	Handler  = phttp.Handler
	Envelope = phttp.Envelope
	Response = phttp.Response
)

// Call adapts a value-returning handler. An error becomes an error envelope,
// a Response is written as is, and anything else is wrapped as 200 data.
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// Get mounts a GET route through Call
func Get(r Router, path string, fn func(*http.Request) (any, error)) { r.Get(path, Call(fn)) }
