// Package service runs the capture, decide, analyze, report loop
package service

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"screenwatch/internal/core/change"
	"screenwatch/internal/core/extract"
	"screenwatch/internal/core/history"
	"screenwatch/internal/core/normalize"
	"screenwatch/internal/platform/logger"
	adom "screenwatch/internal/services/analyze/domain"
	"screenwatch/internal/services/monitor/domain"

	"github.com/google/uuid"
)

// sleep waits for d or until ctx is done
var sleep = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Loop implements domain.RunnerPort. All tick state is owned by the goroutine in Run;
// only Stats is safe to call concurrently
type Loop struct {
	cfg        domain.RunConfig
	capture    domain.CapturePort
	dispatcher adom.DispatcherPort
	sinks      []domain.SinkPort

	norm     *normalize.Normalizer
	detector change.Detector
	history  *history.Buffer
	now      func() time.Time

	runID    string
	previous string
	seq      uint64

	mu    sync.Mutex
	stats domain.Stats
}

// New validates cfg and wires the loop
func New(cfg domain.RunConfig, capture domain.CapturePort, dispatcher adom.DispatcherPort, sinks ...domain.SinkPort) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	det, err := change.New(cfg.Strategy, cfg.MinChange)
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	return &Loop{
		cfg:        cfg,
		capture:    capture,
		dispatcher: dispatcher,
		sinks:      sinks,
		norm:       normalize.New(cfg.Normalize),
		detector:   det,
		history:    history.New(cfg.HistoryCapacity),
		now:        time.Now,
		runID:      runID,
		stats:      domain.Stats{RunID: runID, State: domain.StateIdle},
	}, nil
}

// RunID identifies this loop in logs and reports
func (l *Loop) RunID() string { return l.runID }

// Stats returns a snapshot of the running totals
func (l *Loop) Stats() domain.Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Run ticks until ctx is cancelled. Cancellation is checked between ticks only,
// so an in-flight tick always finishes its emission
func (l *Loop) Run(ctx context.Context) error {
	ctx = logger.WithRun(ctx, l.runID)
	log := logger.C(ctx).With().Str("component", "monitor").Logger()

	l.update(func(s *domain.Stats) { s.StartedAt = l.now() })
	cfg := l.cfg
	l.emit(ctx, domain.Event{Kind: domain.EventStarted, Config: &cfg})
	log.Info().
		Str("strategy", string(cfg.Strategy)).
		Str("normalize", cfg.Normalize.String()).
		Str("analyzer", cfg.Analyzer.String()).
		Dur("interval", cfg.Interval).
		Int("history", cfg.HistoryCapacity).
		Msg("monitor started")

	for ctx.Err() == nil {
		wait := l.Tick(ctx)
		if err := sleep(ctx, wait); err != nil {
			break
		}
	}

	l.setState(domain.StateStopped)
	l.emit(ctx, domain.Event{Kind: domain.EventStopped})
	st := l.Stats()
	log.Info().Uint64("ticks", st.Ticks).Uint64("changed", st.Changed).Msg("monitor stopped")
	return nil
}

// Tick runs one capture cycle and returns how long to wait before the next one
func (l *Loop) Tick(ctx context.Context) time.Duration {
	l.seq++
	seq := l.seq
	log := logger.C(ctx).With().Str("component", "monitor").Uint64("tick", seq).Logger()
	l.update(func(s *domain.Stats) { s.Ticks++ })

	l.setState(domain.StateCapturing)
	raw, err := l.capture.Capture(ctx, l.cfg.Region)
	if err != nil {
		if ctx.Err() != nil {
			l.setState(domain.StateIdle)
			return 0
		}
		back := l.cfg.CaptureBackoff()
		log.Warn().Err(err).Dur("backoff", back).Msg("capture failed")
		l.update(func(s *domain.Stats) { s.CaptureErrors++ })
		l.emit(ctx, domain.Event{Kind: domain.EventCaptureFailed, Seq: seq, Err: err, Backoff: back})
		l.setState(domain.StateIdle)
		return back
	}

	l.setState(domain.StateDeciding)
	text := l.norm.Normalize(raw)
	verdict := l.detector.Decide(l.previous, text)

	if !verdict.Changed {
		l.setState(domain.StateSkipped)
		log.Debug().Interface("verdict", verdict).Msg("no change")
		l.update(func(s *domain.Stats) { s.Skipped++ })
		l.emit(ctx, domain.Event{Kind: domain.EventUnchanged, Seq: seq, Verdict: verdict, Chars: utf8.RuneCountInString(text)})
		l.setState(domain.StateIdle)
		return l.cfg.Interval
	}

	l.setState(domain.StateProcessing)
	signals := extract.Extract(text)
	l.history.Record(text)
	summary := l.history.Summarize()
	topics := l.history.Terms()
	rep := l.dispatcher.Dispatch(ctx, text)

	ev := l.event(domain.EventChanged, seq)
	ev.Verdict = verdict
	ev.Raw = raw
	ev.Text = text
	ev.Chars = signals.CharCount
	ev.Signals = &signals
	ev.Summary = summary
	ev.Topics = topics
	ev.Report = &rep

	if rep.IsError {
		log.Warn().Str("report_id", rep.ID).Str("error", rep.Narrative).Msg("analysis failed")
	} else {
		log.Info().Str("report_id", rep.ID).Int("chars", signals.CharCount).Dur("elapsed", rep.Elapsed).Msg("change analyzed")
	}
	l.update(func(s *domain.Stats) {
		s.Changed++
		if rep.IsError {
			s.AnalysisErrors++
		}
	})
	l.emit(ctx, ev)

	// advances even when the analysis failed so the same content is not re-analyzed
	l.previous = text
	l.setState(domain.StateIdle)
	return l.cfg.Interval
}

func (l *Loop) event(kind domain.EventKind, seq uint64) domain.Event {
	cfg := l.cfg
	return domain.Event{Kind: kind, RunID: l.runID, Seq: seq, At: l.now(), Config: &cfg}
}

func (l *Loop) emit(ctx context.Context, ev domain.Event) {
	if ev.RunID == "" {
		ev.RunID = l.runID
	}
	if ev.At.IsZero() {
		ev.At = l.now()
	}
	if ev.Config == nil {
		cfg := l.cfg
		ev.Config = &cfg
	}
	for _, s := range l.sinks {
		s.Emit(ctx, ev)
	}
}

func (l *Loop) setState(st domain.State) {
	l.update(func(s *domain.Stats) { s.State = st })
}

func (l *Loop) update(fn func(*domain.Stats)) {
	l.mu.Lock()
	fn(&l.stats)
	l.mu.Unlock()
}
