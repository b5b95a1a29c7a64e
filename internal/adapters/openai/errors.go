package openai

import (
	"encoding/json"
	stderrs "errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	perr "screenwatch/internal/platform/errors"
)

// StatusError keeps the HTTP status and server hint of a failed call
type StatusError struct {
	Status     int
	Message    string
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openai api error (%d): %s", e.Status, e.Message)
}

// HTTPStatus interface
func (e *StatusError) HTTPStatus() int { return e.Status }

func statusError(resp *http.Response, raw []byte) error {
	msg := string(raw)
	var ae apiError
	if err := json.Unmarshal(raw, &ae); err == nil && ae.Error.Message != "" {
		msg = ae.Error.Message
	}
	se := &StatusError{Status: resp.StatusCode, Message: clip(msg, maxErrorRunes), RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return perr.Wrap(se, perr.ErrorCodeUnauthorized, "openai rejected credential")
	case resp.StatusCode == http.StatusTooManyRequests:
		return perr.Wrap(se, perr.ErrorCodeTooManyRequests, "openai rate limited")
	case resp.StatusCode >= 500:
		return perr.Wrap(se, perr.ErrorCodeUnavailable, "openai server error")
	case resp.StatusCode == http.StatusNotFound:
		return perr.Wrap(se, perr.ErrorCodeNotFound, "openai model or endpoint not found")
	default:
		return perr.Wrap(se, perr.ErrorCodeAnalysis, "openai request rejected")
	}
}

const maxErrorRunes = 512

// clip keeps at most n runes of s, never splitting one
func clip(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// parseRetryAfter reads the seconds form of Retry-After
func parseRetryAfter(h string) time.Duration {
	if h == "" {
		return 0
	}
	s, err := strconv.Atoi(h)
	if err != nil || s <= 0 {
		return 0
	}
	return time.Duration(s) * time.Second
}

func retryAfter(err error) time.Duration {
	var se *StatusError
	if stderrs.As(err, &se) {
		return se.RetryAfter
	}
	return 0
}
