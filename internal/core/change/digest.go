package change

import (
	"crypto/sha1"
	"encoding/hex"
)

// Digest flags any non-empty text whose fingerprint differs from the previous one
type Digest struct{}

// Strategy implements Detector
func (Digest) Strategy() Strategy { return StrategyDigest }

// Decide implements Detector. Empty current text never counts as a change
func (Digest) Decide(previous, current string) Verdict {
	d := Sum(current)
	if d == "" || d == Sum(previous) {
		return Verdict{Digest: d}
	}
	return Verdict{Changed: true, Digest: d}
}

// Sum is the hex SHA-1 of text, or "" for empty text
func Sum(text string) string {
	if text == "" {
		return ""
	}
	h := sha1.Sum([]byte(text))
	return hex.EncodeToString(h[:])
}
