package change

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Fuzzy aligns previous and current character sequences and counts every
// character outside a matching block on either side
type Fuzzy struct {
	MinChange int
}

// Strategy implements Detector
func (Fuzzy) Strategy() Strategy { return StrategyFuzzy }

// Decide implements Detector. Identical text is never a change, even at threshold 0
func (f Fuzzy) Decide(previous, current string) Verdict {
	m := Magnitude(previous, current)
	return Verdict{Changed: m > 0 && m >= f.MinChange, Magnitude: &m}
}

// Magnitude sums (i2-i1)+(j2-j1) over all non-equal opcodes
func Magnitude(previous, current string) int {
	if previous == current {
		return 0
	}
	a, b := runes(previous), runes(current)
	if len(a) == 0 || len(b) == 0 {
		return len(a) + len(b)
	}

	total := 0
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		total += (op.I2 - op.I1) + (op.J2 - op.J1)
	}
	return total
}

// runes splits s into one element per code point
func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
