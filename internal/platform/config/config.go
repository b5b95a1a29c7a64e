// Package config reads settings from the environment.
// Values are trimmed; a malformed value logs a warning and falls back to the default.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. New().Prefix("SCREENWATCH_")
type Conf struct{ prefix string }

func New() Conf { return Conf{} }

func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key is the full variable name for key under this view
func (c Conf) Key(key string) string { return c.prefix + key }

func (c Conf) raw(key string) string { return strings.TrimSpace(os.Getenv(c.Key(key))) }

// typed parses key with parse, returning def when unset or unparsable
func typed[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Interface("default", def).
			Msg("unparsable env value; using default")
		return def
	}
	return v
}

func (c Conf) MayString(key, def string) string {
	return typed(c, key, def, func(s string) (string, error) { return s, nil })
}

func (c Conf) MayInt(key string, def int) int { return typed(c, key, def, strconv.Atoi) }

func (c Conf) MayBool(key string, def bool) bool { return typed(c, key, def, strconv.ParseBool) }

func (c Conf) MayFloat64(key string, def float64) float64 {
	return typed(c, key, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// MayDuration takes Go duration syntax, or a bare number of seconds ("2.5")
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return typed(c, key, def, func(s string) (time.Duration, error) {
		if d, err := time.ParseDuration(s); err == nil {
			return d, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		return time.Duration(f * float64(time.Second)), err
	})
}

// MayCSV splits on commas and drops blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.raw(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// Enum lower-cases the value and requires it to be one of allowed.
// An unset key yields def; a bad value is a config error tagged with the key.
func (c Conf) Enum(key, def string, allowed ...string) (string, error) {
	v := strings.ToLower(c.MayString(key, def))
	if v == "" {
		return v, nil
	}
	for _, a := range allowed {
		if v == strings.ToLower(a) {
			return v, nil
		}
	}
	err := perr.Configf("%s must be one of %s (got %q)", c.Key(key), strings.Join(allowed, "|"), v)
	return "", perr.WithField(err, c.Key(key))
}
