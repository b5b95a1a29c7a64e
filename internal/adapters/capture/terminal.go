package capture

import (
	"context"
	"strings"

	"screenwatch/internal/services/monitor/domain"

	"github.com/charmbracelet/x/vt"
)

// Default virtual terminal size
const (
	DefaultCols = 120
	DefaultRows = 40
)

// Terminal feeds another provider's output through a virtual terminal and
// returns the composed screen, so cursor addressed output reads the way a person sees it
type Terminal struct {
	inner domain.CapturePort
	cols  int
	rows  int
}

// NewTerminal wraps inner with a cols x rows emulator
func NewTerminal(inner domain.CapturePort, cols, rows int) *Terminal {
	cols, rows = dims(cols, rows)
	return &Terminal{inner: inner, cols: cols, rows: rows}
}

// Capture implements domain.CapturePort
func (t *Terminal) Capture(ctx context.Context, region *domain.Region) (string, error) {
	raw, err := t.inner.Capture(ctx, region)
	if err != nil {
		return "", err
	}
	return Render(raw, t.cols, t.rows), nil
}

// Render interprets ANSI sequences in raw and returns the visible screen text
// with trailing blanks trimmed from each line and trailing empty lines dropped
func Render(raw string, cols, rows int) string {
	cols, rows = dims(cols, rows)
	emu := vt.NewSafeEmulator(cols, rows)
	// bare LF only moves down a row on a real terminal
	_, _ = emu.Write([]byte(crlf(raw)))

	lines := strings.Split(emu.String(), "\n")
	last := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimRight(lines[i], " \t\r") != "" {
			last = i
			break
		}
	}
	if last < 0 {
		return ""
	}
	out := make([]string, last+1)
	for i := 0; i <= last; i++ {
		out[i] = strings.TrimRight(lines[i], " \t\r")
	}
	return strings.Join(out, "\n")
}

func crlf(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}

func dims(cols, rows int) (int, int) {
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	return cols, rows
}
