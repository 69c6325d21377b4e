// Copyright Akcero Labs Inc., 2026. All rights reserved.

package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	genai "google.golang.org/genai"

	"github.com/akcero/blueprint-engine/pkg/types"
)

// ErrEmptyResponse is returned when the model yields no candidates.
var ErrEmptyResponse = errors.New("completion: empty response from model")

const defaultModel = "gemini-2.5-flash"

// Gemini wraps the official genai client behind the Client interface.
type Gemini struct {
	cli        *genai.Client
	model      string
	timeout    time.Duration
	maxRetries int
}

// NewGemini builds a Gemini client from config. Timeout and retry
// defaults apply when the config leaves them zero.
func NewGemini(ctx context.Context, cfg types.CompletionConfig) (*Gemini, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 2
	}
	return &Gemini{cli: cli, model: model, timeout: timeout, maxRetries: maxRetries}, nil
}

// Refines reports true: the model produces genuinely new prose.
func (g *Gemini) Refines() bool { return true }

// Generate runs one completion with the configured timeout and retry
// budget. The system framing and prompt are concatenated into a single
// user turn.
func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	return generateWithRetry(ctx, g.generateOnce, req, g.maxRetries)
}

func (g *Gemini) generateOnce(ctx context.Context, req Request) (string, error) {
	full := req.Prompt
	if req.System != "" {
		full = req.System + "\n\n" + req.Prompt
	}

	cfg := &genai.GenerateContentConfig{}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(req.Temperature)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = req.MaxTokens
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: full}}}},
		cfg,
	)
	if err != nil {
		return "", fmt.Errorf("generating completion: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
