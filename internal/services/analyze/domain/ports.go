package domain

import "context"

// AnalyzerPort is one analyzer variant
type AnalyzerPort interface {
	Analyze(ctx context.Context, text string) (string, error)
}

// DispatcherPort picks the configured variant and never fails
type DispatcherPort interface {
	Dispatch(ctx context.Context, text string) Report
	Mode() Mode
}

// CompleterPort is the remote analysis service
type CompleterPort interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Ports are dependencies injected into the analyze module
type Ports struct {
	Completer CompleterPort // required for remote mode
}
