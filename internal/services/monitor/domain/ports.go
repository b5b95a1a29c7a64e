package domain

import (
	"context"

	adom "screenwatch/internal/services/analyze/domain"
)

// CapturePort returns the raw text currently visible in region (nil means full screen)
type CapturePort interface {
	Capture(ctx context.Context, region *Region) (string, error)
}

// SinkPort receives every loop event in tick order
type SinkPort interface {
	Emit(ctx context.Context, ev Event)
}

// RunnerPort drives the loop until ctx is cancelled
type RunnerPort interface {
	Run(ctx context.Context) error
	Stats() Stats
}

// SinkFunc adapts a function to SinkPort
type SinkFunc func(ctx context.Context, ev Event)

// Emit implements SinkPort
func (f SinkFunc) Emit(ctx context.Context, ev Event) { f(ctx, ev) }

// Ports the monitor module needs from its host
type Ports struct {
	Capture    CapturePort
	Dispatcher adom.DispatcherPort
	Sinks      []SinkPort
}
