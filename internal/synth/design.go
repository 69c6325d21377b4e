// Copyright Akcero Labs Inc., 2026. All rights reserved.

package synth

import (
	"context"
	"fmt"
	"strings"

	"github.com/akcero/blueprint-engine/internal/completion"
	"github.com/akcero/blueprint-engine/pkg/types"
)

// Design derives the design facet from the catalog palette with
// attribute and audience conditioning. Inspiration references are
// completion-refinable.
func (s *Synthesizer) Design(ctx context.Context, bundle types.FeatureBundle) types.DesignPlan {
	rec := s.cat.Design(s.cat.ResolveCategory(bundle.Domain))

	plan := types.DesignPlan{
		Principles:          append([]string(nil), rec.Principles...),
		KeyScreens:          append([]string(nil), rec.KeyScreens...),
		InteractionPatterns: append([]string(nil), rec.Interactions...),
		BrandVoice:          rec.Voice,
		VisualLanguage:      rec.Visual,
		ContentTone:         rec.Tone,
		DesignComplexity:    complexityLabel(bundle.Complexity),
	}

	attrs := bundle.Attributes
	if attrs[types.AttrDeveloper] {
		plan.InteractionPatterns = append(plan.InteractionPatterns, "Keyboard-first power commands")
		plan.Principles = append(plan.Principles, "Expose system status for advanced users")
	}
	if attrs[types.AttrRegulatory] {
		plan.Principles = append(plan.Principles, "Surface compliance guardrails contextually")
		plan.InteractionPatterns = append(plan.InteractionPatterns, "Audit-ready export flows")
	}
	if attrs[types.AttrMarketplace] {
		plan.KeyScreens = append(plan.KeyScreens, "Supply & demand orchestration board")
	}
	if attrs[types.AttrCommunity] {
		plan.KeyScreens = append(plan.KeyScreens, "Community pulse and ambassador missions")
	}
	if strings.Contains(bundle.Audience, "Enterprise") {
		plan.BrandVoice += " with executive polish"
		plan.ContentTone += ". Always tie outcomes to strategic imperatives."
	}

	plan.Principles = dedupe(plan.Principles)
	plan.KeyScreens = dedupe(plan.KeyScreens)
	plan.InteractionPatterns = dedupe(plan.InteractionPatterns)

	inspiration := fmt.Sprintf(
		"Blend Akcero's luminous minimalism with proven patterns from category-defining %s products and high-trust productivity tools.",
		strings.ToLower(bundle.Domain))

	plan.InspirationReferences = completion.Refine(ctx, s.client, completion.Request{
		System: "Suggest design inspiration references (1 sentence) mixing product and brand cues.",
		Prompt: fmt.Sprintf("Domain: %s\nAudience: %s\nPrinciples: %s\nAttributes: %s",
			bundle.Domain, bundle.Audience,
			strings.Join(plan.Principles, ", "),
			activeAttributes(attrs)),
		Temperature: 0.5,
		MaxTokens:   120,
	}, inspiration)

	return plan
}
