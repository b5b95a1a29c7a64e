// Package normalize canonicalizes captured screen text
// Pipeline order
// 1 Sanitize control characters and invalid UTF-8
// 2 Mode specific shaping
//   - collapse: drop CR, squash horizontal whitespace runs, cap blank lines at one, trim
//   - strict: trim every line and drop empty lines
package normalize

import (
	"regexp"
	"strings"

	perr "screenwatch/internal/platform/errors"
)

// Mode selects the shaping stage
type Mode int

const (
	// ModeCollapse keeps paragraph breaks, diff friendly
	ModeCollapse Mode = iota
	// ModeStrict keeps only non-empty trimmed lines
	ModeStrict
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	default:
		return "collapse"
	}
}

// ParseMode maps a config value to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "collapse":
		return ModeCollapse, nil
	case "strict":
		return ModeStrict, nil
	default:
		return ModeCollapse, perr.Configf("unknown normalize mode %q (want collapse|strict)", s)
	}
}

var (
	hspaceRun = regexp.MustCompile(`[ \t]+`)
	blankRun  = regexp.MustCompile(`\n{3,}`)
)

// Normalizer is stateless and safe for concurrent use
type Normalizer struct {
	mode Mode
}

// New constructs a Normalizer for mode
func New(mode Mode) *Normalizer { return &Normalizer{mode: mode} }

// Mode reports the configured mode
func (n *Normalizer) Mode() Mode { return n.mode }

// Normalize returns the canonical form of raw
func (n *Normalizer) Normalize(raw string) string {
	if n.mode == ModeStrict {
		return Strict(raw)
	}
	return Collapse(raw)
}

// Collapse removes CR, squashes spaces/tabs to one space, limits blank line runs
// to a single empty line and trims the whole text
func Collapse(raw string) string {
	if raw == "" {
		return ""
	}
	s := Sanitize(raw)
	s = strings.ReplaceAll(s, "\r", "")
	s = hspaceRun.ReplaceAllString(s, " ")
	s = blankRun.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Strict trims each line and drops the empty ones
func Strict(raw string) string {
	if raw == "" {
		return ""
	}
	s := Sanitize(raw)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, ln := range lines {
		if ln = strings.TrimSpace(ln); ln != "" {
			out = append(out, ln)
		}
	}
	return strings.Join(out, "\n")
}
