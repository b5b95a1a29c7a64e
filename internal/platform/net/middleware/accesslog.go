package middleware

import (
	"net/http"
	"time"

	"screenwatch/internal/platform/logger"
	pnet "screenwatch/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type AccessLogOptions struct {
	// Slow promotes a request to warn once it takes at least this long; 0 disables it
	Slow time.Duration
}

// AccessLogZerolog writes one debug line per request, or warn for 5xx and slow ones.
// Handlers below it see the request id through logger.C.
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			began := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			took := time.Since(began)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			lg := logger.C(ctx)
			ev := lg.Debug()
			if status >= http.StatusInternalServerError || (opt.Slow > 0 && took >= opt.Slow) {
				ev = lg.Warn()
			}
			ev.Str("method", r.Method).Str("path", r.URL.Path).Int("status", status).
				Int("bytes", ww.BytesWritten()).Dur("took", took).Msg("request done")
		})
	}
}
