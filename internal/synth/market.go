// Copyright Akcero Labs Inc., 2026. All rights reserved.

package synth

import (
	"context"
	"fmt"
	"strings"

	"github.com/akcero/blueprint-engine/internal/completion"
	"github.com/akcero/blueprint-engine/pkg/types"
)

// Market derives the market facet from the catalog playbook with
// attribute augmentation. Positioning and momentum notes are
// completion-refinable.
func (s *Synthesizer) Market(ctx context.Context, bundle types.FeatureBundle, ideaText string) types.MarketPlan {
	rec := s.cat.Market(s.cat.ResolveCategory(bundle.Domain))

	plan := types.MarketPlan{
		Segment:          rec.Segment,
		Competitors:      append([]string(nil), rec.Competitors...),
		Differentiators:  append([]string(nil), rec.Differentiators...),
		Personas:         append([]string(nil), rec.Personas...),
		Channels:         append([]string(nil), rec.Channels...),
		Challenges:       append([]string(nil), rec.Challenges...),
		LaunchStrategy:   rec.Launch,
		Positioning:      rec.Positioning,
		GoToMarketIntent: complexityLabel(bundle.Complexity),
	}

	attrs := bundle.Attributes
	if attrs[types.AttrMarketplace] {
		plan.Differentiators = append(plan.Differentiators, "Orchestrates dual-sided market dynamics with agent intelligence")
		plan.Challenges = append(plan.Challenges, "Need to balance supply and demand narratives early")
	}
	if attrs[types.AttrRegulatory] {
		plan.Differentiators = append(plan.Differentiators, "Compliance telemetry wired into every blueprint")
	}
	if attrs[types.AttrCommunity] {
		plan.Channels = append(plan.Channels, "Community-led roundtables and ambassador streams")
	}
	if attrs[types.AttrDeveloper] {
		plan.Personas = append(plan.Personas, "Lead platform engineer")
		plan.Channels = append(plan.Channels, "Open-source and developer relations campaigns")
	}

	plan.Competitors = dedupe(plan.Competitors)
	plan.Differentiators = dedupe(plan.Differentiators)
	plan.Personas = dedupe(plan.Personas)
	plan.Channels = dedupe(plan.Channels)
	plan.Challenges = dedupe(plan.Challenges)

	plan.Positioning = completion.Refine(ctx, s.client, completion.Request{
		System: "Write a crisp positioning statement (1 sentence) naming the wedge and momentum.",
		Prompt: fmt.Sprintf("Idea: %s\nDomain: %s\nAudience: %s\nDifferentiators: %s",
			ideaText, bundle.Domain, bundle.Audience,
			strings.Join(plan.Differentiators, ", ")),
		Temperature: 0.55,
		MaxTokens:   120,
	}, plan.Positioning)

	momentum := "Near-term focus: secure lighthouse design partners, publish quantified wins, and capture narrative authority."
	plan.MomentumNotes = completion.Refine(ctx, s.client, completion.Request{
		System: "Provide a momentum insight (1 sentence) highlighting urgency and proof loops.",
		Prompt: fmt.Sprintf("Segment: %s\nChallenges: %s\nChannels: %s",
			plan.Segment,
			strings.Join(plan.Challenges, ", "),
			strings.Join(plan.Channels, ", ")),
		Temperature: 0.45,
		MaxTokens:   80,
	}, momentum)

	return plan
}
