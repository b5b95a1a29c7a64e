// Package service implements the analyzer variants and the dispatcher over them
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/platform/logger"
	"screenwatch/internal/services/analyze/domain"

	"github.com/google/uuid"
)

// Config for the dispatcher
type Config struct {
	// Timeout bounds one analysis; zero means none
	Timeout time.Duration
}

// Dispatcher implements domain.DispatcherPort
type Dispatcher struct {
	mode     domain.Mode
	analyzer domain.AnalyzerPort
	cfg      Config
	now      func() time.Time
}

// NewDispatcher binds mode to its analyzer
func NewDispatcher(mode domain.Mode, local, remote domain.AnalyzerPort, cfg Config) *Dispatcher {
	a := local
	if mode.IsRemote() {
		a = remote
	}
	return &Dispatcher{mode: mode, analyzer: a, cfg: cfg, now: time.Now}
}

// Mode returns the bound mode
func (d *Dispatcher) Mode() domain.Mode { return d.mode }

// Dispatch runs the bound analyzer. Failures and panics become error reports.
// The analysis outlives cancellation of ctx and is bounded by Config.Timeout instead
func (d *Dispatcher) Dispatch(ctx context.Context, text string) (rep domain.Report) {
	start := d.now()
	rep = domain.Report{ID: uuid.NewString(), Mode: d.mode.String()}
	log := logger.C(ctx).With().Str("component", "analyze").Str("report_id", rep.ID).Str("mode", rep.Mode).Logger()

	defer func() {
		if r := recover(); r != nil {
			err := perr.PanicErrf("analyzer panic: %v", r)
			log.Error().Err(err).Msg("analysis panicked")
			rep.IsError, rep.Narrative = true, err.Error()
		}
		rep.Elapsed = d.now().Sub(start)
	}()

	if d.analyzer == nil {
		rep.IsError, rep.Narrative = true, perr.Analysisf("no analyzer bound for mode %s", d.mode).Error()
		return rep
	}

	actx := context.WithoutCancel(ctx)
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(actx, d.cfg.Timeout)
		defer cancel()
	}

	out, err := d.analyzer.Analyze(actx, text)
	if err != nil {
		log.Warn().Err(err).Str("code", perr.CodeOf(err).String()).Msg("analysis failed")
		rep.IsError, rep.Narrative = true, describe(err)
		return rep
	}
	rep.Narrative = out
	return rep
}

func describe(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("analysis timed out: %v", err)
	}
	return err.Error()
}
