package errors

import (
	"context"
	stderrs "errors"
)

// Retryable reports whether a remote call failed in a way worth retrying.
// Local cancellations and timeouts are never retried; the caller owns that decision
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch CodeOf(err) {
	case ErrorCodeUnavailable, ErrorCodeTooManyRequests:
		return true
	default:
		return false
	}
}
