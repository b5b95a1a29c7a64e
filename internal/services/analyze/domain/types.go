// Package domain defines the analyzer variants and the report they produce
package domain

import (
	"strings"
	"time"

	perr "screenwatch/internal/platform/errors"
)

// Kind tags the analyzer variant
type Kind uint8

const (
	// KindLocal is the offline heuristic analyzer
	KindLocal Kind = iota
	// KindRemote delegates to a hosted model
	KindRemote
)

// LocalName is the config value selecting the local analyzer
const LocalName = "local"

// Mode is decided once at config time; Remote carries its model id
type Mode struct {
	kind  Kind
	model string
}

// Local selects the heuristic analyzer
func Local() Mode { return Mode{kind: KindLocal} }

// Remote selects the hosted analyzer for model
func Remote(model string) Mode { return Mode{kind: KindRemote, model: model} }

// ParseMode maps "local" (or empty) to Local and anything else to Remote(model)
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, LocalName) {
		return Local(), nil
	}
	if strings.ContainsAny(s, " \t\n") {
		return Mode{}, perr.Configf("invalid model id %q", s)
	}
	return Remote(s), nil
}

// Kind returns the variant tag
func (m Mode) Kind() Kind { return m.kind }

// IsRemote reports whether the hosted analyzer is selected
func (m Mode) IsRemote() bool { return m.kind == KindRemote }

// Model returns the remote model id, empty for Local
func (m Mode) Model() string { return m.model }

func (m Mode) String() string {
	if m.IsRemote() {
		return m.model
	}
	return LocalName
}

// Report is the outcome of one analysis, error or not
type Report struct {
	ID        string        `json:"id"`
	Mode      string        `json:"mode"`
	Narrative string        `json:"narrative"`
	IsError   bool          `json:"is_error"`
	Elapsed   time.Duration `json:"elapsed"`
}

// CompletionRequest is one call to the remote analysis service
type CompletionRequest struct {
	Model       string
	Prompt      string
	APIKey      string
	Temperature float64
}
