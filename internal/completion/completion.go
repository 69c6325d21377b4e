// Copyright Akcero Labs Inc., 2026. All rights reserved.

// Package completion provides the optional text-completion capability
// used to polish designated blueprint prose. Every call site keeps a
// deterministic templated default, so a failing or absent backend never
// breaks a run.
package completion

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/akcero/blueprint-engine/pkg/types"
)

// Request is one completion call. System frames the task, Prompt carries
// the run-specific context.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int32
}

// Client generates completions. Refines reports whether per-field
// refinement is worthwhile; the deterministic fallback returns false so
// synthesizers keep their templated prose instead of echo text, while
// summary and pitch still call Generate unconditionally.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
	Refines() bool
}

// Fallback is the deterministic offline client. Its output is a fixed
// function of the request, so repeated runs stay byte-identical.
type Fallback struct{}

// Generate renders the templated response from the system intent line
// and the prompt context.
func (Fallback) Generate(_ context.Context, req Request) (string, error) {
	focus := strings.TrimSpace(req.Prompt)
	if focus == "" {
		focus = "the provided concept"
	}
	intent := "General ideation guidance."
	if req.System != "" {
		intent, _, _ = strings.Cut(req.System, "\n")
	}
	return "System Intent: " + intent + "\nInsight: Focus on " + focus + ".", nil
}

// Refines reports false: templated defaults beat echoed prompts.
func (Fallback) Refines() bool { return false }

// Refine returns the generated text for req, or def when the client does
// not refine, errors, or returns an empty string.
func Refine(ctx context.Context, client Client, req Request, def string) string {
	if client == nil || !client.Refines() {
		return def
	}
	out, err := client.Generate(ctx, req)
	if err != nil {
		return def
	}
	if out = strings.TrimSpace(out); out == "" {
		return def
	}
	return out
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// generateWithRetry calls the underlying generator with exponential
// backoff between attempts.
func generateWithRetry(ctx context.Context, gen func(context.Context, Request) (string, error), req Request, maxRetries int) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		out, err := gen(ctx, req)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return "", lastErr
}

// FromConfig builds the configured client. Gemini is used when the
// provider selects it, or when the provider is unset and an API key is
// present. Everything else gets the fallback.
func FromConfig(ctx context.Context, cfg types.CompletionConfig) (Client, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGemini(ctx, cfg)
	case "", "auto":
		if cfg.APIKey != "" {
			return NewGemini(ctx, cfg)
		}
		return Fallback{}, nil
	default:
		return Fallback{}, nil
	}
}
