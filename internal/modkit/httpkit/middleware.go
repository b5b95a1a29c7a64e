package httpkit

import (
	"net/http"
	"time"

	"screenwatch/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; the zero value is usable
type StackOptions struct {
	Origins []string
	Timeout time.Duration
	Slow    time.Duration
}

// CommonStack returns the baseline middleware for the status API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 250 * time.Millisecond
	}
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// safety
		middleware.RecoverJSON,
		middleware.Timeout(o.Timeout),

		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.StripSlashes(),
	}
}
