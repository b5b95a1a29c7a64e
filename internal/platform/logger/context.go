package logger

import "context"

type ctxKey int

const (
	runKey ctxKey = iota
	requestKey
)

// WithRun tags ctx with the monitor run id
func WithRun(ctx context.Context, runID string) context.Context {
	if runID == "" {
		return ctx
	}
	return context.WithValue(ctx, runKey, runID)
}

// WithRequest tags ctx with a status API request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestKey, reqID)
}

// C returns the root logger carrying whatever ids ctx holds
func C(ctx context.Context) *Logger {
	b := Get().With()
	if id, _ := ctx.Value(runKey).(string); id != "" {
		b = b.Str("run_id", id)
	}
	if id, _ := ctx.Value(requestKey).(string); id != "" {
		b = b.Str("request_id", id)
	}
	l := b.Logger()
	return &l
}
