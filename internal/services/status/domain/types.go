// Package domain defines the read-only view the status API serves
package domain

import (
	"time"

	"screenwatch/internal/core/change"
	"screenwatch/internal/core/extract"
	adom "screenwatch/internal/services/analyze/domain"
	mdom "screenwatch/internal/services/monitor/domain"
)

// Snapshot is an immutable copy of the latest tick the loop emitted
type Snapshot struct {
	RunID   string              `json:"run_id"`
	Seq     uint64              `json:"seq"`
	At      time.Time           `json:"at"`
	Stage   mdom.EventKind      `json:"stage"`
	Verdict change.Verdict      `json:"verdict"`
	Chars   int                 `json:"chars"`
	Signals *extract.SignalSet  `json:"signals,omitempty"`
	Topics  []extract.TermCount `json:"topics,omitempty"`
	Summary string              `json:"summary,omitempty"`
	Report  *adom.Report        `json:"report,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// Health is the liveness payload
type Health struct {
	OK      bool       `json:"ok"`
	Service string     `json:"service"`
	RunID   string     `json:"run_id,omitempty"`
	State   mdom.State `json:"state"`
	Started string     `json:"started"`
	Now     string     `json:"now"`
}

// BoardPort is what handlers read from
type BoardPort interface {
	Latest() (Snapshot, error)
	Stats() mdom.Stats
}
