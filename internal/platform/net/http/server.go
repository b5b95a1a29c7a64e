package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ShutdownTimeout bounds graceful shutdown once Run's context is cancelled
const ShutdownTimeout = 5 * time.Second

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer creates a server for addr.
// opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(addr string, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	m.NotFound(notFound)
	for _, o := range opts {
		o(m)
	}
	return &Server{
		mux: m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// notFound keeps unknown paths in the JSON envelope like every other error
var notFound = Handle(func(r *stdhttp.Request) Response {
	return Error(perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
})

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listening address
func (s *Server) Addr() string { return s.srv.Addr }

// Run listens on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("status server listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		log.Warn().Err(err).Msg("status server shutdown")
		return err
	}
	log.Info().Msg("status server stopped")
	return nil
}
