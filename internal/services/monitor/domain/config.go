package domain

import (
	"time"

	"screenwatch/internal/core/change"
	"screenwatch/internal/core/normalize"
	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/platform/validate"
	adom "screenwatch/internal/services/analyze/domain"
)

const (
	// MinInterval is the floor for the tick interval
	MinInterval = 500 * time.Millisecond
	// MinCaptureBackoff is the shortest sleep after a capture failure
	MinCaptureBackoff = 2 * time.Second
)

// RunConfig is validated once at startup and never mutated afterwards
type RunConfig struct {
	Interval        time.Duration   `name:"interval" validate:"min=500ms"`
	Region          *Region         `name:"region"`
	HistoryCapacity int             `name:"history" validate:"min=1"`
	MinChange       int             `name:"min-change" validate:"min=0"`
	Strategy        change.Strategy `name:"strategy" validate:"oneof=fuzzy digest"`
	Normalize       normalize.Mode  `name:"normalize"`
	Analyzer        adom.Mode       `name:"-" validate:"-"`
	ShowRaw         bool            `name:"show-raw"`
}

// Defaults mirrors the documented CLI defaults
func Defaults() RunConfig {
	return RunConfig{
		Interval:        2 * time.Second,
		HistoryCapacity: 8,
		MinChange:       50,
		Strategy:        change.StrategyFuzzy,
		Normalize:       normalize.ModeCollapse,
		Analyzer:        adom.Local(),
	}
}

// Validate returns a config error naming the first offending field
func (c RunConfig) Validate() error {
	if err := validate.Struct(c, perr.ErrorCodeConfig); err != nil {
		return err
	}
	if c.Region != nil {
		return c.Region.Validate()
	}
	return nil
}

// CaptureBackoff is how long to wait after a failed capture
func (c RunConfig) CaptureBackoff() time.Duration {
	return max(c.Interval, MinCaptureBackoff)
}
