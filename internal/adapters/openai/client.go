// Package openai is a small client for the OpenAI Responses API used by the remote analyzer
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/platform/logger"
	"screenwatch/internal/services/analyze/domain"

	"golang.org/x/time/rate"
)

const (
	baseURLDefault   = "https://api.openai.com/v1"
	defaultTimeout   = 60 * time.Second
	defaultUA        = "screenwatch"
	defaultMaxRetry  = 3
	defaultRetryBase = time.Second
	maxBackoff       = 30 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// RPS paces outgoing requests; zero or less disables pacing
	RPS float64

	// attempts including the first one
	MaxRetries int
	RetryBase  time.Duration
}

// Client implements analyze/domain.CompleterPort
type Client struct {
	http    *http.Client
	opts    Options
	limiter *rate.Limiter
	log     logger.Logger
	sleep   func(context.Context, time.Duration) error
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	lim := rate.NewLimiter(rate.Inf, 1)
	if o.RPS > 0 {
		lim = rate.NewLimiter(rate.Limit(o.RPS), 1)
	}
	return &Client{
		http:    &http.Client{Timeout: o.Timeout},
		opts:    o,
		limiter: lim,
		log:     *logger.Named("openai"),
		sleep:   sleepCtx,
	}
}

type responsesRequest struct {
	Model       string  `json:"model"`
	Input       string  `json:"input"`
	Temperature float64 `json:"temperature"`
}

type responsesResponse struct {
	OutputText string `json:"output_text"`
	Output     []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete sends one prompt to POST {base}/responses and returns the output text.
// 429 and 5xx responses and transport errors are retried with exponential backoff
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	if strings.TrimSpace(req.APIKey) == "" {
		return "", perr.Unauthorizedf("missing api key")
	}
	body, err := json.Marshal(responsesRequest{Model: req.Model, Input: req.Prompt, Temperature: req.Temperature})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeAnalysis, "encode request")
	}

	var lastErr error
	for attempt := 0; attempt < c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			back := c.backoff(attempt - 1)
			if ra := retryAfter(lastErr); ra > 0 {
				back = ra
			}
			c.log.Warn().Err(lastErr).Dur("retry_in", back).Int("attempt", attempt).Msg("openai retrying")
			if err := c.sleep(ctx, back); err != nil {
				return "", err
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		out, err := c.do(ctx, req.APIKey, body)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !perr.Retryable(err) {
			return "", err
		}
	}
	return "", perr.Wrapf(lastErr, perr.CodeOf(lastErr), "openai gave up after %d attempts", c.opts.MaxRetries)
}

func (c *Client) do(ctx context.Context, apiKey string, body []byte) (string, error) {
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeAnalysis, "openai new request failed")
	}
	hreq.Header.Set("Authorization", "Bearer "+apiKey)
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("User-Agent", c.opts.UserAgent)

	start := time.Now()
	resp, err := c.http.Do(hreq)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "openai request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "openai read body failed")
	}
	c.log.Debug().Int("status", resp.StatusCode).Dur("latency", time.Since(start)).Int("bytes", len(raw)).Msg("openai http response")

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp, raw)
	}

	var out responsesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeAnalysis, "openai malformed response")
	}
	return out.text(), nil
}

// text joins every output_text part, preferring the aggregated field when present
func (r responsesResponse) text() string {
	if r.OutputText != "" {
		return r.OutputText
	}
	var b strings.Builder
	for _, o := range r.Output {
		for _, part := range o.Content {
			if part.Type == "output_text" || part.Type == "text" {
				b.WriteString(part.Text)
			}
		}
	}
	return b.String()
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
