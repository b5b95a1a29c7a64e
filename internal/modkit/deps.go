// Package modkit provides module wiring and core deps
package modkit

import (
	"screenwatch/internal/platform/config"
	"screenwatch/internal/platform/logger"
)

// Deps holds core dependencies passed to modules.
// The zero value is usable: a nil Log falls back to the root logger
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns Log or a component logger named after the module
func (d Deps) Logger(module string) *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Named(module)
}
