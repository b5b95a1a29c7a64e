// Package logger owns the process-wide zerolog root.
// Logs go to stderr unless told otherwise; stdout belongs to the report sink.
package logger

import (
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"screenwatch/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

type Options struct {
	Level   string
	Format  string // console or json
	Service string
	Caller  bool
	Writer  io.Writer
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE and LOG_CALLER.
// It uses the raw view because the full config layer logs through this package.
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:   env.Get("LEVEL", "info"),
		Format:  strings.ToLower(env.Get("FORMAT", "console")),
		Service: env.Get("SERVICE", "screenwatch"),
		Caller:  env.GetBool("CALLER", false),
	}
}

var (
	initOnce sync.Once
	rootLog  atomic.Pointer[Logger]
)

// Init builds the root logger; only the first call has any effect
func Init(opt Options) {
	initOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opt.Writer
		if out == nil {
			out = os.Stderr
		}
		if opt.Format != "json" {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
		}

		ctx := zerolog.New(out).Level(levelOf(opt.Level)).With().Timestamp()
		if opt.Service != "" {
			ctx = ctx.Str("service", opt.Service)
		}
		if bi, ok := debug.ReadBuildInfo(); ok {
			ctx = ctx.Str("go_version", bi.GoVersion)
		}
		if opt.Caller {
			ctx = ctx.Caller()
		}
		l := ctx.Logger()
		rootLog.Store(&l)
	})
}

// levelOf accepts zerolog's names plus "warning" and "off"; anything else is info
func levelOf(s string) zerolog.Level {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "warning":
		return zerolog.WarnLevel
	case "off":
		return zerolog.Disabled
	case "":
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Get returns the root logger, initialising it from the environment on first use
func Get() *Logger {
	if l := rootLog.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return rootLog.Load()
}

// Named tags a child of the root with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
