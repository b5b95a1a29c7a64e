package service

import (
	"context"
	"testing"
	"time"

	"screenwatch/internal/platform/testkit"
	"screenwatch/internal/services/analyze/domain"
)

type analyzerFunc func(ctx context.Context, text string) (string, error)

func (f analyzerFunc) Analyze(ctx context.Context, text string) (string, error) { return f(ctx, text) }

func TestDispatch_Local(t *testing.T) {
	d := NewDispatcher(domain.Local(), Local{}, nil, Config{})
	rep := d.Dispatch(context.Background(), "Payment due")
	if rep.IsError || rep.Mode != "local" || rep.ID == "" {
		t.Fatalf("report = %+v", rep)
	}
	testkit.MustContain(t, rep.Narrative, "Detected themes: payment, deadline")
	if d.Mode() != domain.Local() {
		t.Fatal("mode")
	}
}

func TestDispatch_RemoteWithoutCredential(t *testing.T) {
	remote := NewRemote("gpt-4.1-mini", &fakeCompleter{out: "x"}, key(""))
	d := NewDispatcher(domain.Remote("gpt-4.1-mini"), Local{}, remote, Config{})

	var rep domain.Report
	testkit.MustNotPanic(t, func() { rep = d.Dispatch(context.Background(), "text") })
	if !rep.IsError {
		t.Fatalf("expected error report, got %+v", rep)
	}
	testkit.MustContain(t, rep.Narrative, "OPENAI_API_KEY is not set")
	if rep.Mode != "gpt-4.1-mini" {
		t.Fatalf("mode = %q", rep.Mode)
	}
}

func TestDispatch_Panic(t *testing.T) {
	boom := analyzerFunc(func(context.Context, string) (string, error) { panic("boom") })
	d := NewDispatcher(domain.Local(), boom, nil, Config{})
	rep := d.Dispatch(context.Background(), "x")
	if !rep.IsError {
		t.Fatal("panic must become an error report")
	}
	testkit.MustContain(t, rep.Narrative, "boom")
}

func TestDispatch_NoAnalyzer(t *testing.T) {
	d := NewDispatcher(domain.Remote("m"), Local{}, nil, Config{})
	rep := d.Dispatch(context.Background(), "x")
	if !rep.IsError {
		t.Fatalf("report = %+v", rep)
	}
}

func TestDispatch_OutlivesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seen := analyzerFunc(func(ctx context.Context, _ string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "done", nil
	})
	rep := NewDispatcher(domain.Local(), seen, nil, Config{}).Dispatch(ctx, "x")
	if rep.IsError || rep.Narrative != "done" {
		t.Fatalf("report = %+v", rep)
	}
}

func TestDispatch_Timeout(t *testing.T) {
	slow := analyzerFunc(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	rep := NewDispatcher(domain.Local(), slow, nil, Config{Timeout: 10 * time.Millisecond}).Dispatch(context.Background(), "x")
	if !rep.IsError {
		t.Fatalf("report = %+v", rep)
	}
	testkit.MustContain(t, rep.Narrative, "timed out")
}

func TestDispatch_Elapsed(t *testing.T) {
	d := NewDispatcher(domain.Local(), Local{}, nil, Config{})
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	d.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
	if rep := d.Dispatch(context.Background(), "x"); rep.Elapsed != time.Second {
		t.Fatalf("elapsed = %v", rep.Elapsed)
	}
}
