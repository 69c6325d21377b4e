// Copyright Akcero Labs Inc., 2026. All rights reserved.

// Package pipeline orchestrates the staged blueprint run: feature
// extraction, four synthesizer stages with barriers, then summary and
// optional pitch. Stages one and two run their two synthesizers
// concurrently; everything joins at the stage barrier before the next
// stage starts.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/akcero/blueprint-engine/internal/catalog"
	"github.com/akcero/blueprint-engine/internal/completion"
	"github.com/akcero/blueprint-engine/internal/extract"
	"github.com/akcero/blueprint-engine/internal/synth"
	"github.com/akcero/blueprint-engine/pkg/types"
)

// Options control a single run.
type Options struct {
	// Pitch requests the elevator pitch after the summary.
	Pitch bool
}

// Runner executes blueprint runs. It is safe for concurrent use.
type Runner struct {
	extractor *extract.Extractor
	synth     *synth.Synthesizer
	client    completion.Client
	observer  Observer
	log       *zap.Logger
}

// New builds a Runner over the catalog and completion client. A nil
// client degrades to the deterministic fallback; a nil logger is
// replaced with a no-op one.
func New(cat *catalog.Catalog, client completion.Client, observer Observer, log *zap.Logger) *Runner {
	if client == nil {
		client = completion.Fallback{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		extractor: extract.New(cat),
		synth:     synth.New(cat, client),
		client:    client,
		observer:  observer,
		log:       log,
	}
}

// Run executes the full pipeline for the idea text. The only failure
// modes are context cancellation between stages; synthesizer and
// completion failures degrade to templated output instead.
func (r *Runner) Run(ctx context.Context, ideaText string, opts Options) (*types.Blueprint, error) {
	idea := extract.EffectiveIdea(ideaText)

	// Stage 0: extraction plus the idea facet, sequential. Every later
	// stage consumes the bundle unchanged.
	r.notify(StepIdea, StateRunning)
	bundle := r.extractor.Extract(idea)
	brief := r.synth.Idea(ctx, bundle, idea)
	r.notify(StepIdea, StateCompleted)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 1: business and tech, concurrent.
	var business types.BusinessPlan
	var tech types.TechPlan
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r.notify(StepBusiness, StateRunning)
		business = r.synth.Business(gctx, bundle, idea)
		r.notify(StepBusiness, StateCompleted)
		return nil
	})
	g.Go(func() error {
		r.notify(StepTech, StateRunning)
		tech = r.synth.Tech(gctx, bundle)
		r.notify(StepTech, StateCompleted)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: design and market, concurrent.
	var design types.DesignPlan
	var market types.MarketPlan
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		r.notify(StepDesign, StateRunning)
		design = r.synth.Design(gctx, bundle)
		r.notify(StepDesign, StateCompleted)
		return nil
	})
	g.Go(func() error {
		r.notify(StepMarket, StateRunning)
		market = r.synth.Market(gctx, bundle, idea)
		r.notify(StepMarket, StateCompleted)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: timeline, sequential, anchored on business and tech.
	r.notify(StepTimeline, StateRunning)
	timeline := r.synth.Timeline(ctx, bundle, business, tech)
	r.notify(StepTimeline, StateCompleted)

	bp := &types.Blueprint{
		Idea:     brief,
		Business: business,
		Tech:     tech,
		Design:   design,
		Market:   market,
		Timeline: timeline,
	}
	bp.Summary = r.summarize(ctx, bp)
	if opts.Pitch {
		bp.Pitch = r.pitch(ctx, bp)
	}
	return bp, nil
}

// generate runs one completion call, degrading to the deterministic
// fallback when the backend errors or returns nothing.
func (r *Runner) generate(ctx context.Context, req completion.Request) string {
	out, err := r.client.Generate(ctx, req)
	if err != nil || strings.TrimSpace(out) == "" {
		if err != nil {
			r.log.Warn("completion failed, using fallback", zap.Error(err))
		}
		out, _ = completion.Fallback{}.Generate(ctx, req)
	}
	return strings.TrimSpace(out)
}

func (r *Runner) summarize(ctx context.Context, bp *types.Blueprint) string {
	system := "Create a confident executive summary for the product blueprint. " +
		"Highlight the core problem, signature solution, business model + pricing, " +
		"technical advantage, design POV, market positioning, and launch momentum. " +
		"Cap the summary at 130 words."

	context := strings.Join([]string{
		fmt.Sprintf("Problem: %s", bp.Idea.Problem),
		fmt.Sprintf("Solution: %s", bp.Idea.Solution),
		fmt.Sprintf("Audience: %s", bp.Idea.Audience),
		fmt.Sprintf("Complexity: %s", bp.Idea.Complexity),
		fmt.Sprintf("Value Props: %s", joinFirst(bp.Idea.ValueProps, 2)),
		fmt.Sprintf("Business Model: %s", bp.Business.Model),
		fmt.Sprintf("Pricing: %s", bp.Business.PricingStrategy),
		fmt.Sprintf("GTM: %s", bp.Business.GoToMarket),
		fmt.Sprintf("Key Metrics: %s", joinFirst(bp.Business.KeyMetrics, 2)),
		fmt.Sprintf("Tech Stack: %s", strings.Join(bp.Tech.Stack, ", ")),
		fmt.Sprintf("Architecture: %s", bp.Tech.Architecture),
		fmt.Sprintf("AI Edge: %s", joinFirst(bp.Tech.AIComponents, 2)),
		fmt.Sprintf("Design Focus: %s", strings.Join(bp.Design.Principles, ", ")),
		fmt.Sprintf("Market Segment: %s", bp.Market.Segment),
		fmt.Sprintf("Competitors: %s", strings.Join(bp.Market.Competitors, ", ")),
		fmt.Sprintf("Differentiators: %s", strings.Join(bp.Market.Differentiators, ", ")),
		fmt.Sprintf("Positioning: %s", bp.Market.Positioning),
		fmt.Sprintf("Momentum: %s", bp.Market.MomentumNotes),
		fmt.Sprintf("Launch Channels: %s", joinFirst(bp.Market.Channels, 2)),
		fmt.Sprintf("Timeline: %d weeks", bp.Timeline.TotalDurationWeeks),
		fmt.Sprintf("Cadence: %s", bp.Timeline.CadenceNotes),
		fmt.Sprintf("Risk Watchlist: %s", bp.Timeline.RiskWatchlist),
	}, "\n")

	return r.generate(ctx, completion.Request{System: system, Prompt: context})
}

func (r *Runner) pitch(ctx context.Context, bp *types.Blueprint) string {
	system := "Craft a 6 sentence elevator pitch highlighting the problem, " +
		"solution, business opportunity, pricing, tech advantage, market traction, " +
		"and roadmap. Keep it upbeat and visionary."

	context := strings.Join([]string{
		fmt.Sprintf("Problem: %s", bp.Idea.Problem),
		fmt.Sprintf("Solution: %s", bp.Idea.Solution),
		fmt.Sprintf("Audience: %s", bp.Idea.Audience),
		fmt.Sprintf("Complexity: %s", bp.Idea.Complexity),
		fmt.Sprintf("Business Model: %s", bp.Business.Model),
		fmt.Sprintf("Pricing: %s", bp.Business.PricingStrategy),
		fmt.Sprintf("Tech: %s", strings.Join(bp.Tech.Stack, ", ")),
		fmt.Sprintf("Differentiator: %s", strings.Join(bp.Market.Differentiators, ", ")),
		fmt.Sprintf("Positioning: %s", bp.Market.Positioning),
		fmt.Sprintf("Momentum: %s", bp.Market.MomentumNotes),
		fmt.Sprintf("Roadmap: %d week plan", bp.Timeline.TotalDurationWeeks),
	}, "\n")

	return r.generate(ctx, completion.Request{
		System:      system,
		Prompt:      context,
		Temperature: 0.4,
		MaxTokens:   220,
	})
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
