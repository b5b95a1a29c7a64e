package errors

import "net/http"

// ErrorCode classifies a failure so callers can branch without string matching
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	ErrorCodeUnavailable
	ErrorCodeTooManyRequests
	ErrorCodeUnauthorized
	ErrorCodeNotFound

	// ErrorCodeConfig is fatal at startup; the loop never runs
	ErrorCodeConfig

	// ErrorCodeCapture is recoverable per tick
	ErrorCodeCapture

	// ErrorCodeAnalysis surfaces as an error report, never as a loop failure
	ErrorCodeAnalysis
)

type codeMeta struct {
	label  string
	status int
}

var codes = map[ErrorCode]codeMeta{
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeTooManyRequests: {"too_many_requests", http.StatusTooManyRequests},
	ErrorCodeUnauthorized:    {"unauthorized", http.StatusUnauthorized},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeConfig:          {"config", http.StatusBadRequest},
	ErrorCodeCapture:         {"capture", http.StatusBadGateway},
	ErrorCodeAnalysis:        {"analysis", http.StatusBadGateway},
}

func (c ErrorCode) meta() codeMeta {
	if m, ok := codes[c]; ok {
		return m
	}
	return codeMeta{"unknown", http.StatusInternalServerError}
}

// String is the short label written to logs
func (c ErrorCode) String() string { return c.meta().label }

// HTTPStatusCode maps a code onto the status API's response status
func HTTPStatusCode(c ErrorCode) int { return c.meta().status }
