// Copyright Akcero Labs Inc., 2026. All rights reserved.

package synth

import (
	"context"
	"fmt"
	"strings"

	"github.com/akcero/blueprint-engine/internal/completion"
	"github.com/akcero/blueprint-engine/internal/extract"
	"github.com/akcero/blueprint-engine/pkg/types"
)

// successMetrics maps full domain names to pilot success metrics.
var successMetrics = map[string][]string{
	"Healthcare & Wellness": {
		"Clinical validation achieved for top three use-cases",
		"HIPAA-aligned data handling sign-off",
	},
	"Finance & Fintech": {
		"Regulatory review with compliance team completed",
		"Pilot customers reach 20% workflow automation savings",
	},
	"Education & Learning": {
		"Learner engagement score above 75 NPS in pilot",
		"Curriculum iteration cycle under two weeks",
	},
	"Commerce & Retail": {
		"Average order value uplift by 15% in beta cohort",
		"Customer acquisition cost payback within three months",
	},
	"Productivity & Collaboration": {
		"Time-to-decision reduced by 30% across teams",
		"Weekly active usage above 65% of invited members",
	},
	"Customer Experience": {
		"CSAT improvement of 10 points post-launch",
		"First-response automation covering 40% of tickets",
	},
	"Developer Tools": {
		"Time-to-first-API-call under 5 minutes",
		"95%+ reliability across key endpoints",
	},
	"Marketing & Growth": {
		"Pipeline contribution up 25%",
		"Test velocity doubles without infrastructure debt",
	},
	"Sustainability & Climate": {
		"Verified carbon reduction milestone",
		"Supply chain transparency index uplift",
	},
	"Manufacturing & Industry": {
		"Downtime reduced by 20% in pilot facilities",
		"Yield and throughput improvements documented",
	},
}

var defaultSuccessMetrics = []string{
	"100 design partner sessions completed",
	"Launch readiness scorecard signed off by leadership",
}

// Idea enriches the feature bundle into the stage-0 facet output. The
// solution and narrative fields are completion-refinable; everything
// else is deterministic.
func (s *Synthesizer) Idea(ctx context.Context, bundle types.FeatureBundle, ideaText string) types.IdeaBrief {
	brief := types.IdeaBrief{FeatureBundle: bundle}

	// A default solution means no sentence named one; worth asking the
	// model for a crisper phrase when refinement is on.
	if bundle.Solution == extract.DefaultSolution {
		brief.Solution = completion.Refine(ctx, s.client, completion.Request{
			System:    "Extract a crisp solution phrase for the concept.",
			Prompt:    ideaText,
			MaxTokens: 120,
		}, extract.DefaultSolution)
	}

	brief.ValueProps = s.valueProps(bundle.Domain, bundle.Audience)
	brief.SuccessMetrics = s.metrics(bundle.Domain)
	brief.TopOpportunities = opportunities(bundle)
	brief.AttributeHighlights = highlights(bundle.Attributes)
	brief.Narrative = s.narrative(ctx, brief)
	return brief
}

func (s *Synthesizer) valueProps(domain, audience string) []string {
	props := []string{
		"Aligns multi-disciplinary teams around a shared product narrative",
		"Transforms fuzzy concepts into execution-ready roadmaps",
		"Surfaces market-ready differentiation in every deliverable",
	}
	switch s.cat.ResolveCategory(domain) {
	case "Healthcare":
		props = append(props, "Encodes compliance and patient safety considerations by default")
	case "Finance":
		props = append(props, "Highlights traceability and risk controls for regulated launch")
	case "Commerce":
		props = append(props, "Optimises conversion levers across the buying journey")
	case "Developer":
		props = append(props, "Provides deep technical architecture and integration playbooks")
	case "Marketing":
		props = append(props, "Maps campaigns to data-backed growth experiments")
	case "Sustainability":
		props = append(props, "Connects impact measurement to product delivery choices")
	}
	if strings.Contains(audience, "Enterprise") {
		props = append(props, "Supports governance workflows and executive-ready reporting")
	}
	if len(props) > 6 {
		props = props[:6]
	}
	return props
}

func (s *Synthesizer) metrics(domain string) []string {
	base, ok := successMetrics[domain]
	if !ok {
		base = defaultSuccessMetrics
	}
	out := make([]string, 0, len(base)+1)
	out = append(out, base...)
	return append(out, "Founders unlock clear investor-ready storytelling")
}

func opportunities(bundle types.FeatureBundle) []string {
	keywords := bundle.Keywords
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, fmt.Sprintf("%s opportunity: unlock %s leverage for %s",
			bundle.Domain,
			strings.ReplaceAll(kw, "-", " "),
			strings.ToLower(bundle.Audience)))
	}
	return out
}

func highlights(attrs map[string]bool) []string {
	var out []string
	for _, name := range attributeOrder {
		if attrs[name] {
			out = append(out, titleWords(name))
		}
	}
	return out
}

func (s *Synthesizer) narrative(ctx context.Context, brief types.IdeaBrief) string {
	def := fmt.Sprintf(
		"Akcero refines the %s challenge of %q into a blueprint that empowers %s with a differentiated, agent-powered solution.",
		strings.ToLower(brief.Domain), brief.Problem, strings.ToLower(brief.Audience))

	prompt := fmt.Sprintf("Problem: %s\nSolution: %s\nAudience: %s\nDomain: %s\nComplexity: %s",
		brief.Problem, brief.Solution, brief.Audience, brief.Domain, brief.Complexity)

	return completion.Refine(ctx, s.client, completion.Request{
		System:      "Craft a bold two-sentence product narrative emphasising problem-solution fit and audience impact.",
		Prompt:      prompt,
		Temperature: 0.5,
		MaxTokens:   140,
	}, def)
}
