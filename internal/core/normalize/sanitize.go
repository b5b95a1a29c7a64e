package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops invalid UTF-8 and the control characters OCR and terminal
// captures leak: C0 controls other than tab, LF and CR, DEL, and the C1 range.
// Clean input is returned as is.
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, isJunk) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isJunk(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

func isJunk(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return false
	case r < 0x20, r == 0x7f:
		return true
	default:
		return r >= 0x80 && r <= 0x9f
	}
}
