// Package report renders loop events for a terminal
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"screenwatch/internal/core/extract"
	"screenwatch/internal/services/monitor/domain"
)

const (
	// SnippetLimit caps the echoed capture, in characters
	SnippetLimit = 700
	listLimit    = 5
	ruleWidth    = 70

	captureTip = "Tip: On macOS, grant Screen Recording permission and install tesseract."
)

// Console implements domain.SinkPort over plain writers
type Console struct {
	out io.Writer
	err io.Writer
}

// NewConsole writes reports to out and capture failures to errOut
func NewConsole(out, errOut io.Writer) *Console {
	if errOut == nil {
		errOut = out
	}
	return &Console{out: out, err: errOut}
}

// Emit implements domain.SinkPort
func (c *Console) Emit(_ context.Context, ev domain.Event) {
	switch ev.Kind {
	case domain.EventStarted:
		c.started(ev)
	case domain.EventUnchanged:
		c.unchanged(ev)
	case domain.EventChanged:
		c.changed(ev)
	case domain.EventCaptureFailed:
		fmt.Fprintf(c.err, "OCR/capture error: %v\n%s\n", ev.Err, captureTip)
	case domain.EventStopped:
		fmt.Fprintln(c.out, "\nStopped.")
	}
}

func (c *Console) started(ev domain.Event) {
	fmt.Fprintln(c.out, "Starting screen text monitor. Press Ctrl+C to stop.")
	if cfg := ev.Config; cfg != nil {
		fmt.Fprintf(c.out, "Strategy: %s | Normalize: %s | Analyzer: %s | Interval: %s\n",
			cfg.Strategy, cfg.Normalize, cfg.Analyzer, cfg.Interval)
		if cfg.Region != nil {
			fmt.Fprintf(c.out, "Using region: %s\n", cfg.Region)
		}
	}
}

func (c *Console) unchanged(ev domain.Event) {
	ts := ev.At.Format("15:04:05")
	switch {
	case ev.Verdict.Magnitude != nil:
		fmt.Fprintf(c.out, "[%s] No meaningful change (%d chars).\n", ts, *ev.Verdict.Magnitude)
	case ev.Verdict.Digest == "":
		fmt.Fprintf(c.out, "[%s] No change (empty capture).\n", ts)
	default:
		fmt.Fprintf(c.out, "[%s] No change (digest %s).\n", ts, short(ev.Verdict.Digest))
	}
}

func (c *Console) changed(ev domain.Event) {
	var b strings.Builder
	rule := strings.Repeat("-", ruleWidth)

	if ev.Config != nil && ev.Config.ShowRaw {
		fmt.Fprintf(&b, "\n[%s] OCR text\n%s\n%s\n", ev.At.Format("2006-01-02 15:04:05"), rule, orDefault(ev.Raw, "(empty)"))
	}

	fmt.Fprintf(&b, "\n[%s] Screen text updated\n%s\n", ev.At.Format("2006-01-02 15:04:05"), rule)
	if m := ev.Verdict.Magnitude; m != nil {
		fmt.Fprintf(&b, "Change: %d chars\n", *m)
	} else if ev.Verdict.Digest != "" {
		fmt.Fprintf(&b, "Digest: %s\n", short(ev.Verdict.Digest))
	}

	if s := ev.Signals; s != nil {
		fmt.Fprintf(&b, "Chars: %d | Words: %d | Questions: %d\n", s.CharCount, s.WordCount, s.QuestionCount)
		if len(s.TopWords) > 0 {
			fmt.Fprintf(&b, "Top terms: %s\n", colonTerms(s.TopWords))
		}
		line(&b, "URLs", head(s.URLs, listLimit))
		line(&b, "Emails", head(s.Emails, listLimit))
		line(&b, "Task signals", s.TaskSignals)
		line(&b, "Urgency signals", s.UrgencySignals)
		line(&b, "Alert themes", s.AlertThemes)
	}
	if ev.Summary != "" {
		b.WriteString(ev.Summary + "\n")
	}

	if r := ev.Report; r != nil {
		if r.IsError {
			fmt.Fprintf(&b, "Analysis error: %s\n", r.Narrative)
		} else {
			fmt.Fprintf(&b, "Analysis (%s): %s\n", r.Mode, r.Narrative)
		}
	}

	b.WriteString("Snippet:\n")
	b.WriteString(orDefault(snippet(ev.Text, SnippetLimit), "(no OCR text)") + "\n")
	b.WriteString(rule + "\n")

	_, _ = io.WriteString(c.out, b.String())
}

func line(b *strings.Builder, label string, xs []string) {
	if len(xs) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(xs, ", "))
}

func colonTerms(ts []extract.TermCount) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = fmt.Sprintf("%s:%d", t.Term, t.Count)
	}
	return strings.Join(parts, ", ")
}

func head(xs []string, n int) []string {
	if len(xs) > n {
		return xs[:n]
	}
	return xs
}

func snippet(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}

func short(digest string) string {
	if len(digest) > 8 {
		return digest[:8]
	}
	return digest
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
