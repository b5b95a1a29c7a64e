// Package domain defines the monitor loop's configuration, states and events
package domain

import (
	"time"

	"screenwatch/internal/core/change"
	"screenwatch/internal/core/extract"
	adom "screenwatch/internal/services/analyze/domain"
)

// State is where the loop currently is within a tick
type State uint8

const (
	StateIdle State = iota
	StateCapturing
	StateDeciding
	StateSkipped
	StateProcessing
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateDeciding:
		return "deciding"
	case StateSkipped:
		return "skipped"
	case StateProcessing:
		return "processing"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// MarshalText renders the state label in JSON
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// EventKind classifies what a tick produced
type EventKind uint8

const (
	// EventStarted is emitted once before the first tick
	EventStarted EventKind = iota
	// EventUnchanged is a tick whose verdict was not a change
	EventUnchanged
	// EventChanged carries signals, topics and the analysis report
	EventChanged
	// EventCaptureFailed is a tick whose capture errored
	EventCaptureFailed
	// EventStopped is emitted once after the loop exits
	EventStopped
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventUnchanged:
		return "unchanged"
	case EventChanged:
		return "changed"
	case EventCaptureFailed:
		return "capture_failed"
	case EventStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind label in JSON
func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Event is one emission of the loop. Fields beyond Kind/Seq/At are set per kind
type Event struct {
	Kind  EventKind `json:"kind"`
	RunID string    `json:"run_id"`
	Seq   uint64    `json:"seq"`
	At    time.Time `json:"at"`

	Config *RunConfig `json:"-"`

	Verdict change.Verdict      `json:"verdict"`
	Raw     string              `json:"-"`
	Text    string              `json:"-"`
	Chars   int                 `json:"chars"`
	Signals *extract.SignalSet  `json:"signals,omitempty"`
	Topics  []extract.TermCount `json:"topics,omitempty"`
	Summary string              `json:"summary,omitempty"`
	Report  *adom.Report        `json:"report,omitempty"`

	Err     error         `json:"-"`
	Backoff time.Duration `json:"backoff,omitempty"`
}

// Stats are running totals for one run
type Stats struct {
	RunID          string    `json:"run_id"`
	StartedAt      time.Time `json:"started_at"`
	State          State     `json:"state"`
	Ticks          uint64    `json:"ticks"`
	Changed        uint64    `json:"changed"`
	Skipped        uint64    `json:"skipped"`
	CaptureErrors  uint64    `json:"capture_errors"`
	AnalysisErrors uint64    `json:"analysis_errors"`
}
