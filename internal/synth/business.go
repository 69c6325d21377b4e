// Copyright Akcero Labs Inc., 2026. All rights reserved.

package synth

import (
	"context"
	"fmt"
	"strings"

	"github.com/akcero/blueprint-engine/internal/completion"
	"github.com/akcero/blueprint-engine/pkg/types"
)

// Business derives the commercial facet: catalog template, keyword-based
// model and pricing hints, attribute augmentation, and a refinable
// expansion strategy.
func (s *Synthesizer) Business(ctx context.Context, bundle types.FeatureBundle, ideaText string) types.BusinessPlan {
	rec := s.cat.Business(s.cat.ResolveCategory(bundle.Domain))

	plan := types.BusinessPlan{
		Model:             rec.Model,
		PricingStrategy:   rec.Pricing,
		RevenueStreams:    append([]string(nil), rec.Revenue...),
		GoToMarket:        fillPlaceholders(rec.GoToMarket, bundle.Audience, bundle.Domain),
		Partners:          append([]string(nil), rec.Partners...),
		KeyMetrics:        append([]string(nil), rec.KeyMetrics...),
		SalesEnablement:   append([]string(nil), rec.Enablement...),
		ExpansionStrategy: rec.Expansion,
		ComplexityProfile: complexityLabel(bundle.Complexity),
	}

	if base := detectModel(ideaText); !strings.Contains(strings.ToLower(rec.Model), strings.ToLower(base)) {
		plan.Model = base + " | " + rec.Model
	} else {
		plan.Model = base
	}
	if hint := pricingHint(ideaText); !strings.Contains(strings.ToLower(plan.PricingStrategy), strings.ToLower(hint)) {
		plan.PricingStrategy += ". " + hint + "."
	}

	attrs := bundle.Attributes
	if attrs[types.AttrMarketplace] {
		plan.RevenueStreams = append(plan.RevenueStreams, "Curated marketplace commissions and vendor sponsorships")
		plan.GoToMarket += " Recruit a dual-sided design partner cohort to validate supply-demand resonance."
	}
	if attrs[types.AttrDeveloper] {
		plan.RevenueStreams = append(plan.RevenueStreams, "Usage-based API tier with premium tooling bundles")
		plan.SalesEnablement = append(plan.SalesEnablement, "Developer-first documentation and SDK launch kit")
	}
	if attrs[types.AttrCommunity] {
		plan.RevenueStreams = append(plan.RevenueStreams, "Community membership and certification programs")
		plan.GoToMarket += " Launch ambassador-driven community drops and co-creation labs."
	}
	if attrs[types.AttrRegulatory] {
		plan.PricingStrategy += " Include compliance assurance fees for bespoke reviews."
		plan.KeyMetrics = append(plan.KeyMetrics, "Regulatory milestone velocity")
	}
	if attrs[types.AttrEnterprise] {
		plan.Partners = append(plan.Partners, "Enterprise enablement consultancies")
		plan.SalesEnablement = append(plan.SalesEnablement, "Executive risk mitigation narrative")
	}

	plan.RevenueStreams = dedupe(plan.RevenueStreams)
	plan.Partners = dedupe(plan.Partners)
	plan.KeyMetrics = dedupe(plan.KeyMetrics)
	plan.SalesEnablement = dedupe(plan.SalesEnablement)

	plan.ExpansionStrategy = completion.Refine(ctx, s.client, completion.Request{
		System: "Craft a crisp expansion narrative (2 sentences) that highlights scale opportunities and risk controls.",
		Prompt: fmt.Sprintf("Domain: %s\nAudience: %s\nModel: %s\nGTM: %s\nComplexity: %s",
			bundle.Domain, bundle.Audience, plan.Model, plan.GoToMarket, bundle.Complexity),
		Temperature: 0.4,
		MaxTokens:   150,
	}, plan.ExpansionStrategy)

	second := "scalable add-ons"
	if len(plan.RevenueStreams) > 1 {
		second = plan.RevenueStreams[1]
	}
	plan.MonetisationNotes = fmt.Sprintf("Lead with %s while layering %s to reinforce predictable ARR.",
		plan.RevenueStreams[0], second)

	return plan
}

// detectModel infers a base business model from keywords in the raw
// idea text. Checked before the catalog template so the idea's own
// monetisation language leads.
func detectModel(text string) string {
	lowered := strings.ToLower(text)
	switch {
	case containsAny(lowered, "marketplace", "network", "two-sided"):
		return "Marketplace commissions with premium workflow subscriptions"
	case containsAny(lowered, "api", "developer"):
		return "Usage-based API platform augmented with enterprise plans"
	case containsAny(lowered, "mobile", "app"):
		return "Freemium mobile experience with pro subscription unlocks"
	case containsAny(lowered, "consulting", "services"):
		return "Hybrid subscription plus expert services retainer"
	case containsAny(lowered, "hardware", "iot"):
		return "Hardware-enabled subscription with device leasing"
	default:
		return "Tiered SaaS subscription with outcome-based add-ons"
	}
}

func pricingHint(text string) string {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "enterprise"):
		return "Enterprise annual agreements anchored to ROI milestones"
	case containsAny(lowered, "startup", "founder"):
		return "Founders-first pricing: free discovery tier, $249/mo accelerator tier"
	case strings.Contains(lowered, "marketplace"):
		return "1.9% transaction fee plus $99/mo curated vendor spotlight"
	default:
		return "Layered pricing mixing usage meters with collaborative seats"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
