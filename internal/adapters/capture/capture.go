// Package capture provides the screen text sources the monitor polls
package capture

import (
	"strings"
	"time"

	"screenwatch/internal/platform/config"
	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/services/monitor/domain"
)

// Kinds of capture provider
const (
	KindCommand = "command"
	KindFile    = "file"
)

// Options selects and configures a provider
type Options struct {
	Kind    string
	Command string
	File    string
	Timeout time.Duration

	// PTY runs the command attached to a pseudo terminal of Cols x Rows
	PTY bool
	// ANSI renders output through a virtual terminal of Cols x Rows
	ANSI bool
	Cols int
	Rows int
}

// FromConfig reads SCREENWATCH_CAPTURE_*
func FromConfig(cfg config.Conf) (Options, error) {
	cc := cfg.Prefix("SCREENWATCH_CAPTURE_")
	kind, err := cfg.Prefix("SCREENWATCH_").Enum("CAPTURE", KindCommand, KindCommand, KindFile)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Kind:    kind,
		Command: cc.MayString("CMD", ""),
		File:    cc.MayString("FILE", ""),
		Timeout: cc.MayDuration("TIMEOUT", 30*time.Second),
		PTY:     cc.MayBool("PTY", false),
		ANSI:    cc.MayBool("ANSI", false),
		Cols:    cc.MayInt("COLS", DefaultCols),
		Rows:    cc.MayInt("ROWS", DefaultRows),
	}, nil
}

// New builds the provider described by o
func New(o Options) (domain.CapturePort, error) {
	var p domain.CapturePort
	switch strings.ToLower(o.Kind) {
	case "", KindCommand:
		if strings.TrimSpace(o.Command) == "" {
			return nil, perr.WithField(perr.Configf("capture command is empty (set --capture-cmd or SCREENWATCH_CAPTURE_CMD)"), "capture-cmd")
		}
		p = &Command{Cmd: o.Command, Timeout: o.Timeout, PTY: o.PTY, Cols: o.Cols, Rows: o.Rows}
	case KindFile:
		if strings.TrimSpace(o.File) == "" {
			return nil, perr.WithField(perr.Configf("capture file is empty (set --capture-file or SCREENWATCH_CAPTURE_FILE)"), "capture-file")
		}
		p = &File{Path: o.File}
	default:
		return nil, perr.WithField(perr.Configf("unknown capture provider %q", o.Kind), "capture")
	}
	if o.ANSI {
		p = NewTerminal(p, o.Cols, o.Rows)
	}
	return p, nil
}

// regionEnv exports region to a child process
func regionEnv(r *domain.Region) []string {
	if r == nil {
		return []string{"SCREENWATCH_REGION="}
	}
	return []string{
		"SCREENWATCH_REGION=" + r.String(),
		"SCREENWATCH_X1=" + itoa(r.X1),
		"SCREENWATCH_Y1=" + itoa(r.Y1),
		"SCREENWATCH_X2=" + itoa(r.X2),
		"SCREENWATCH_Y2=" + itoa(r.Y2),
	}
}
