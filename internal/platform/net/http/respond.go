// Package http provides the status server, its router seam and the JSON envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "screenwatch/internal/platform/errors"
	pnet "screenwatch/internal/platform/net"
)

// Envelope wraps every status API body. Data is set on success; Code, Error and
// Field on failure.
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	RequestID  string         `json:"request_id,omitempty"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return-style handlers produce. An error Body overrides Status.
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

func Error(err error) Response { return Response{Body: err} }

// Handle turns a return-style handler into a net/http one
func Handle(h func(*stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		for k, vs := range resp.Header {
			w.Header()[k] = append(w.Header()[k], vs...)
		}
		env := resp.envelope()
		env.RequestID = pnet.RequestID(r.Context())
		JSON(w, env.StatusCode, env)
	}
}

func (resp Response) envelope() Envelope {
	var env Envelope
	if err, ok := resp.Body.(error); ok && err != nil {
		w := perr.WireFrom(err)
		env.StatusCode = perr.HTTPStatus(err)
		env.Code, env.Error, env.Field = w.Code, w.Message, w.Field
	} else {
		env.StatusCode = resp.Status
		env.Data = resp.Body
	}
	if env.StatusCode == 0 {
		env.StatusCode = stdhttp.StatusOK
	}
	env.Status = stdhttp.StatusText(env.StatusCode)
	return env
}
