package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"screenwatch/internal/platform/config"
	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/platform/testkit"
	"screenwatch/internal/services/analyze/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := NewClient(Options{BaseURL: srv.URL + "/", RetryBase: 10 * time.Millisecond})
	var slept []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, &slept
}

func req() domain.CompletionRequest {
	return domain.CompletionRequest{Model: "gpt-4.1-mini", Prompt: "OCR text:\nhello", APIKey: "sk-test", Temperature: 0.2}
}

func TestComplete_Success(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/responses" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("auth = %q", got)
		}
		var body responsesRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
		}
		if body.Model != "gpt-4.1-mini" || body.Input != "OCR text:\nhello" || body.Temperature != 0.2 {
			t.Errorf("body = %+v", body)
		}
		_, _ = w.Write([]byte(`{"output":[{"type":"reasoning","content":[]},{"type":"message","content":[{"type":"output_text","text":"- a\n"},{"type":"output_text","text":"- b"}]}]}`))
	})

	out, err := c.Complete(context.Background(), req())
	if err != nil {
		t.Fatal(err)
	}
	if out != "- a\n- b" {
		t.Fatalf("out = %q", out)
	}
}

func TestComplete_OutputTextField(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"output_text":"summary"}`))
	})
	out, err := c.Complete(context.Background(), req())
	if err != nil || out != "summary" {
		t.Fatalf("out = %q, err = %v", out, err)
	}
}

func TestComplete_RetriesTransient(t *testing.T) {
	var calls atomic.Int32
	c, slept := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":{"message":"upstream"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"output_text":"ok"}`))
	})

	out, err := c.Complete(context.Background(), req())
	if err != nil || out != "ok" {
		t.Fatalf("out = %q, err = %v", out, err)
	}
	if calls.Load() != 3 {
		t.Fatalf("calls = %d", calls.Load())
	}
	if len(*slept) != 2 || (*slept)[0] != 10*time.Millisecond || (*slept)[1] != 20*time.Millisecond {
		t.Fatalf("backoff = %v", *slept)
	}
}

func TestComplete_RateLimitedHonoursRetryAfter(t *testing.T) {
	var calls atomic.Int32
	c, slept := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
	})

	_, err := c.Complete(context.Background(), req())
	testkit.MustCode(t, err, perr.ErrorCodeTooManyRequests)
	testkit.MustContain(t, err.Error(), "slow down")
	if calls.Load() != defaultMaxRetry {
		t.Fatalf("calls = %d", calls.Load())
	}
	for _, d := range *slept {
		if d != 2*time.Second {
			t.Fatalf("expected Retry-After wait, got %v", *slept)
		}
	}
}

func TestComplete_NoRetryOnClientErrors(t *testing.T) {
	cases := []struct {
		status int
		code   perr.ErrorCode
	}{
		{http.StatusUnauthorized, perr.ErrorCodeUnauthorized},
		{http.StatusForbidden, perr.ErrorCodeUnauthorized},
		{http.StatusNotFound, perr.ErrorCodeNotFound},
		{http.StatusBadRequest, perr.ErrorCodeAnalysis},
	}
	for _, tc := range cases {
		var calls atomic.Int32
		c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`not json`))
		})
		_, err := c.Complete(context.Background(), req())
		testkit.MustCode(t, err, tc.code)
		if calls.Load() != 1 {
			t.Fatalf("status %d retried %d times", tc.status, calls.Load())
		}
	}
}

func TestComplete_Malformed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"output":`))
	})
	_, err := c.Complete(context.Background(), req())
	testkit.MustCode(t, err, perr.ErrorCodeAnalysis)
}

func TestComplete_MissingKey(t *testing.T) {
	c, _ := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Error("server must not be called")
	})
	r := req()
	r.APIKey = ""
	_, err := c.Complete(context.Background(), r)
	testkit.MustCode(t, err, perr.ErrorCodeUnauthorized)
}

func TestComplete_Cancelled(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c.sleep = sleepCtx
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Complete(ctx, req())
	if err == nil {
		t.Fatal("expected error on cancelled context")
	}
}

func TestBackoffCap(t *testing.T) {
	c := NewClient(Options{RetryBase: time.Second})
	if c.backoff(0) != time.Second || c.backoff(2) != 4*time.Second || c.backoff(10) != maxBackoff {
		t.Fatal("backoff schedule")
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("SCREENWATCH_ANALYZE_RPS", "0.5")
	t.Setenv("SCREENWATCH_ANALYZE_TIMEOUT", "")
	o := FromConfig(config.New())
	if o.BaseURL != "http://localhost:8080/v1" || o.RPS != 0.5 || o.Timeout != defaultTimeout {
		t.Fatalf("options = %+v", o)
	}
}

func TestStatusError_ClipsMessageOnRuneBoundary(t *testing.T) {
	body := "x" + strings.Repeat("é", 600)
	resp := &http.Response{StatusCode: http.StatusBadRequest, Header: http.Header{}}

	err := statusError(resp, []byte(body))
	testkit.MustCode(t, err, perr.ErrorCodeAnalysis)

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("no StatusError in %v", err)
	}
	if !utf8.ValidString(se.Message) {
		t.Fatalf("message is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(se.Message); n != maxErrorRunes {
		t.Fatalf("message has %d runes, want %d", n, maxErrorRunes)
	}
}

func TestClip(t *testing.T) {
	if got := clip("héllo", 2); got != "hé" {
		t.Fatalf("clip = %q", got)
	}
	if got := clip("hi", 5); got != "hi" {
		t.Fatalf("clip short = %q", got)
	}
}
