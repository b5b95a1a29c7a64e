// Package history keeps a bounded window of recent captures and summarizes
// the topics running through them
package history

import (
	"strings"

	"screenwatch/internal/core/extract"
)

// SummaryTopK is how many terms the rolling summary shows
const SummaryTopK = 6

const (
	// EmptySummary is returned before anything was recorded
	EmptySummary = "No text captured yet."
	summaryLead  = "Recent topic terms: "
	noTerms      = "n/a"
)

// Buffer is a fixed capacity FIFO, most recent last.
// Not safe for concurrent use; the loop owns it
type Buffer struct {
	items []string
	head  int // index of the oldest entry once full
	full  bool
}

// New returns a Buffer holding at most capacity entries (minimum 1)
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{items: make([]string, 0, capacity)}
}

// Cap returns the configured capacity
func (b *Buffer) Cap() int { return cap(b.items) }

// Len returns the number of entries held
func (b *Buffer) Len() int { return len(b.items) }

// Record appends text, evicting the oldest entry when at capacity
func (b *Buffer) Record(text string) {
	if !b.full {
		b.items = append(b.items, text)
		b.full = len(b.items) == cap(b.items)
		return
	}
	b.items[b.head] = text
	b.head = (b.head + 1) % len(b.items)
}

// Entries returns a copy of the buffer in insertion order
func (b *Buffer) Entries() []string {
	out := make([]string, 0, len(b.items))
	out = append(out, b.items[b.head:]...)
	out = append(out, b.items[:b.head]...)
	return out
}

// Terms ranks terms across every buffered entry
func (b *Buffer) Terms() []extract.TermCount {
	if len(b.items) == 0 {
		return []extract.TermCount{}
	}
	return extract.TopTerms(strings.Join(b.Entries(), "\n"), SummaryTopK)
}

// Summarize renders the rolling topic line
func (b *Buffer) Summarize() string {
	if len(b.items) == 0 {
		return EmptySummary
	}
	terms := b.Terms()
	if len(terms) == 0 {
		return summaryLead + noTerms
	}
	return summaryLead + extract.FormatTerms(terms)
}
