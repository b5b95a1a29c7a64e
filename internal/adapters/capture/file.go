package capture

import (
	"context"
	"os"

	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/services/monitor/domain"
)

// File re-reads a text file each tick, for OCR daemons that write their output to disk
type File struct {
	Path string
}

// Capture implements domain.CapturePort. The region is ignored
func (f *File) Capture(ctx context.Context, _ *domain.Region) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeCapture, "read capture file %s", f.Path)
	}
	return string(b), nil
}
