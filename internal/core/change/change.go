// Package change decides whether a new capture differs enough from the previous one
// to warrant analysis
package change

import (
	"strings"

	perr "screenwatch/internal/platform/errors"
)

// Strategy names a Detector implementation
type Strategy string

const (
	// StrategyFuzzy compares an edit magnitude against a threshold
	StrategyFuzzy Strategy = "fuzzy"
	// StrategyDigest suppresses exact duplicates only
	StrategyDigest Strategy = "digest"
)

// ParseStrategy maps a config value to a Strategy
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyFuzzy:
		return StrategyFuzzy, nil
	case StrategyDigest:
		return StrategyDigest, nil
	default:
		return "", perr.Configf("unknown change strategy %q (want fuzzy|digest)", s)
	}
}

// Verdict is the outcome of one decision.
// Magnitude is set by the fuzzy strategy only, Digest by the digest strategy only
type Verdict struct {
	Changed   bool   `json:"changed"`
	Magnitude *int   `json:"magnitude,omitempty"`
	Digest    string `json:"digest,omitempty"`
}

// Detector is a pure decision over (previous, current) normalized text
type Detector interface {
	Decide(previous, current string) Verdict
	Strategy() Strategy
}

// New builds the detector for s. minChange only applies to the fuzzy strategy
func New(s Strategy, minChange int) (Detector, error) {
	switch s {
	case StrategyFuzzy:
		if minChange < 0 {
			return nil, perr.Configf("min change must be >= 0, got %d", minChange)
		}
		return Fuzzy{MinChange: minChange}, nil
	case StrategyDigest:
		return Digest{}, nil
	default:
		return nil, perr.Configf("unknown change strategy %q", s)
	}
}
