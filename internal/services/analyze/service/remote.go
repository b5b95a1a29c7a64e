package service

import (
	"context"
	"strings"

	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/services/analyze/domain"
)

const (
	// PromptTextLimit bounds how much captured text goes into one request
	PromptTextLimit = 12000
	// NoAnalysis stands in for an empty model response
	NoAnalysis = "(no analysis returned)"
	// Temperature for remote completions
	Temperature = 0.2

	promptHeader = "You analyze live OCR text from a user's screen. " +
		"Return concise bullets: 1) what changed, 2) likely intent/context, " +
		"3) any actionable next steps. Keep it under 90 words.\n\n" +
		"OCR text:\n"
)

// CredentialFunc resolves the API key at call time
type CredentialFunc func() string

// Remote delegates analysis to a hosted model
type Remote struct {
	model      string
	client     domain.CompleterPort
	credential CredentialFunc
}

// NewRemote constructs a Remote analyzer
func NewRemote(model string, client domain.CompleterPort, credential CredentialFunc) *Remote {
	return &Remote{model: model, client: client, credential: credential}
}

// Analyze implements domain.AnalyzerPort
func (r *Remote) Analyze(ctx context.Context, text string) (string, error) {
	key := ""
	if r.credential != nil {
		key = strings.TrimSpace(r.credential())
	}
	if key == "" {
		return "", perr.Configf("OPENAI_API_KEY is not set")
	}
	if r.client == nil {
		return "", perr.Analysisf("remote analyzer has no client")
	}

	out, err := r.client.Complete(ctx, domain.CompletionRequest{
		Model:       r.model,
		Prompt:      BuildPrompt(text),
		APIKey:      key,
		Temperature: Temperature,
	})
	if err != nil {
		if _, ok := perr.As(err); ok {
			return "", err
		}
		return "", perr.Wrap(err, perr.ErrorCodeAnalysis, "remote analysis failed")
	}
	if out = strings.TrimSpace(out); out == "" {
		return NoAnalysis, nil
	}
	return out, nil
}

// BuildPrompt frames text with the fixed instructions, truncating to PromptTextLimit runes
func BuildPrompt(text string) string {
	return promptHeader + truncate(text, PromptTextLimit)
}
