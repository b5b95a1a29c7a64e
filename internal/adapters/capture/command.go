package capture

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/services/monitor/domain"

	"github.com/creack/pty"
)

const stderrTail = 512

// waitDelay bounds how long Wait keeps draining pipes after the command was killed
const waitDelay = time.Second

// Command runs a shell pipeline per capture and returns its stdout,
// e.g. `screencapture -x /tmp/s.png && tesseract /tmp/s.png stdout`
type Command struct {
	Cmd     string
	Timeout time.Duration

	PTY  bool
	Cols int
	Rows int
}

// Capture implements domain.CapturePort
func (c *Command) Capture(ctx context.Context, region *domain.Region) (string, error) {
	if strings.TrimSpace(c.Cmd) == "" {
		return "", perr.Capturef("capture command is empty")
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, shell(), "-c", c.Cmd)
	cmd.Env = append(os.Environ(), regionEnv(region)...)
	killGroupOnCancel(cmd)
	cmd.WaitDelay = waitDelay

	var (
		out []byte
		err error
	)
	if c.PTY {
		out, err = c.runPTY(cmd)
	} else {
		out, err = runPiped(cmd)
	}
	if ctx.Err() == context.DeadlineExceeded {
		return "", perr.Wrapf(ctx.Err(), perr.ErrorCodeCapture, "capture command timed out after %s", c.Timeout)
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func runPiped(cmd *exec.Cmd) ([]byte, error) {
	ownProcessGroup(cmd)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeCapture, "capture command failed: %s", tail(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// runPTY attaches the command to a pseudo terminal so TUI programs draw their full screen
func (c *Command) runPTY(cmd *exec.Cmd) ([]byte, error) {
	cols, rows := dims(c.Cols, c.Rows)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeCapture, "capture pty start failed")
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	_, rerr := io.Copy(&buf, ptmx)
	werr := cmd.Wait()
	// the master side reports EIO once the child closes the terminal
	if rerr != nil && !errors.Is(rerr, syscall.EIO) {
		return nil, perr.Wrap(rerr, perr.ErrorCodeCapture, "capture pty read failed")
	}
	if werr != nil {
		return nil, perr.Wrapf(werr, perr.ErrorCodeCapture, "capture command failed: %s", tail(buf.String()))
	}
	return buf.Bytes(), nil
}

func shell() string {
	if s := os.Getenv("SHELL"); s != "" && !strings.HasSuffix(s, "fish") {
		return s
	}
	return "/bin/sh"
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTail {
		s = s[len(s)-stderrTail:]
	}
	if s == "" {
		return "(no stderr)"
	}
	return s
}

func itoa(n int) string { return strconv.Itoa(n) }
