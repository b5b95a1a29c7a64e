package net_test

import (
	"context"
	"testing"

	pnet "screenwatch/internal/platform/net"
)

func TestWithRequest(t *testing.T) {
	ctx := pnet.WithRequest(context.Background(), "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q", got)
	}
	if got := pnet.RequestID(pnet.WithRequest(context.Background(), "")); got != "" {
		t.Fatalf("empty id stored: %q", got)
	}
}
