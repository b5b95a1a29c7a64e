// Package service keeps the latest loop snapshot for the status API
package service

import (
	"context"
	"sync/atomic"

	"screenwatch/internal/core/extract"
	perr "screenwatch/internal/platform/errors"
	mdom "screenwatch/internal/services/monitor/domain"
	"screenwatch/internal/services/status/domain"
)

// Board is a monitor sink that publishes copies of what the loop emits.
// Emit is called from the loop goroutine only; readers never block it
type Board struct {
	latest atomic.Pointer[domain.Snapshot]
	stats  atomic.Pointer[mdom.Stats]
}

// NewBoard returns an empty board
func NewBoard() *Board {
	b := &Board{}
	b.stats.Store(&mdom.Stats{State: mdom.StateIdle})
	return b
}

// Emit implements mdom.SinkPort
func (b *Board) Emit(_ context.Context, ev mdom.Event) {
	st := *b.stats.Load()
	st.RunID = ev.RunID

	switch ev.Kind {
	case mdom.EventStarted:
		st.StartedAt = ev.At
		st.State = mdom.StateIdle
	case mdom.EventStopped:
		st.State = mdom.StateStopped
	case mdom.EventUnchanged:
		st.Ticks++
		st.Skipped++
		st.State = mdom.StateIdle
	case mdom.EventCaptureFailed:
		st.Ticks++
		st.CaptureErrors++
		st.State = mdom.StateIdle
	case mdom.EventChanged:
		st.Ticks++
		st.Changed++
		if ev.Report != nil && ev.Report.IsError {
			st.AnalysisErrors++
		}
		st.State = mdom.StateIdle
	}
	b.stats.Store(&st)

	if ev.Kind == mdom.EventStarted || ev.Kind == mdom.EventStopped {
		return
	}
	snap := snapshot(ev)
	b.latest.Store(&snap)
}

// Latest returns the most recent tick or a not found error before the first one
func (b *Board) Latest() (domain.Snapshot, error) {
	p := b.latest.Load()
	if p == nil {
		return domain.Snapshot{}, perr.NotFoundf("no tick has completed yet")
	}
	return *p, nil
}

// Stats returns the running totals
func (b *Board) Stats() mdom.Stats { return *b.stats.Load() }

func snapshot(ev mdom.Event) domain.Snapshot {
	s := domain.Snapshot{
		RunID:   ev.RunID,
		Seq:     ev.Seq,
		At:      ev.At,
		Stage:   ev.Kind,
		Verdict: ev.Verdict,
		Chars:   ev.Chars,
		Summary: ev.Summary,
	}
	if ev.Verdict.Magnitude != nil {
		m := *ev.Verdict.Magnitude
		s.Verdict.Magnitude = &m
	}
	if ev.Signals != nil {
		sig := *ev.Signals
		s.Signals = &sig
	}
	if ev.Topics != nil {
		s.Topics = append([]extract.TermCount(nil), ev.Topics...)
	}
	if ev.Report != nil {
		r := *ev.Report
		s.Report = &r
	}
	if ev.Err != nil {
		s.Error = ev.Err.Error()
	}
	return s
}
