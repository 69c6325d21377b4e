// Copyright Akcero Labs Inc., 2026. All rights reserved.

package synth

import (
	"context"
	"fmt"
	"strings"

	"github.com/akcero/blueprint-engine/internal/completion"
	"github.com/akcero/blueprint-engine/pkg/types"
)

// timelineWindows maps each complexity tier to its five phase windows.
var timelineWindows = map[types.Complexity][]string{
	types.ComplexityLean:     {"Weeks 1-2", "Weeks 3-5", "Weeks 6-9", "Weeks 10-13", "Weeks 14-16"},
	types.ComplexityStandard: {"Weeks 1-3", "Weeks 4-7", "Weeks 8-13", "Weeks 14-18", "Weeks 19-22"},
	types.ComplexityComplex:  {"Weeks 1-4", "Weeks 5-9", "Weeks 10-16", "Weeks 17-22", "Weeks 23-26"},
}

var timelineTotals = map[types.Complexity]int{
	types.ComplexityLean:     16,
	types.ComplexityStandard: 22,
	types.ComplexityComplex:  26,
}

var phaseNames = []string{
	"Discovery & Insight Sprint",
	"Experience Blueprinting",
	"MVP Build & Instrumentation",
	"Pilot & Iteration Loop",
	"Launch & Scale Enablement",
}

var phaseOwners = []string{
	"Product discovery lead",
	"Design + research squad",
	"Engineering pod",
	"Customer success & product marketing",
	"Founding leadership & revenue ops",
}

// Timeline composes the execution roadmap. It runs after the business
// and tech facets so their model and architecture can anchor the
// alignment fields. The risk watchlist is completion-refinable.
func (s *Synthesizer) Timeline(ctx context.Context, bundle types.FeatureBundle, business types.BusinessPlan, tech types.TechPlan) types.Timeline {
	complexity := bundle.Complexity
	windows, ok := timelineWindows[complexity]
	if !ok {
		complexity = types.ComplexityStandard
		windows = timelineWindows[complexity]
	}

	domainLower := strings.ToLower(bundle.Domain)
	focus := []string{
		fmt.Sprintf("Immerse with %s experts, surface pains, and quantify opportunity", domainLower),
		fmt.Sprintf("Design signature %s experiences and validation flows", domainLower),
		"Build core services, harden data pipelines, and wire observability",
		"Run closed pilots, harvest ROI metrics, and iterate narrative + pricing",
		"Launch publicly, operationalise GTM motions, and ready scale infrastructure",
	}
	exit := []string{
		fmt.Sprintf("Validated %s opportunity map and success metrics", domainLower),
		"Experience prototypes tested with priority personas",
		"Production-ready MVP with telemetry + governance",
		"Pilot cohort delivering quantified wins",
		"Launch scorecard and next-wave backlog approved",
	}

	attrs := bundle.Attributes
	if attrs[types.AttrRegulatory] {
		focus[0] += "; capture compliance constraints and stakeholders"
		focus[2] += "; embed audit logging & access controls"
		exit[2] += " with compliance review sign-off"
	}
	if attrs[types.AttrMarketplace] {
		focus[1] += "; map supply-demand personas and incentives"
		focus[3] += "; balance both sides of the marketplace"
		exit[3] += " with dual-sided retention signals"
	}
	if attrs[types.AttrHardware] {
		focus[1] += "; align hardware/IoT roadmap"
		focus[2] += "; integrate edge device telemetry"
	}
	if attrs[types.AttrDeveloper] {
		focus[2] += "; expose APIs and CLI early"
		focus[4] += "; launch developer advocacy runway"
	}

	phases := make([]types.TimelinePhase, len(phaseNames))
	for i, name := range phaseNames {
		phases[i] = types.TimelinePhase{
			Name:         name,
			Duration:     windows[i],
			Focus:        focus[i],
			Owner:        phaseOwners[i],
			ExitCriteria: exit[i],
		}
	}

	notes := s.cat.Timeline(s.cat.ResolveCategory(bundle.Domain))
	milestones := []string{
		"Narrative blueprint approved by executive sponsor",
		"Pilot cohort signed with clear success metrics",
		"AI reliability benchmarks achieved (>95% consistency)",
		"Public launch with quantified customer stories",
	}
	if notes.Milestone != "" {
		milestones = dedupe(append(milestones, notes.Milestone))
	}

	risk := "Monitor scope creep, data readiness, and stakeholder engagement across the orchestration."
	risk = completion.Refine(ctx, s.client, completion.Request{
		System: "List the top risk or contingency to watch (1 sentence).",
		Prompt: fmt.Sprintf("Domain: %s\nComplexity: %s\nBusiness model: %s\nArchitecture: %s\nAttributes: %s",
			bundle.Domain, bundle.Complexity, business.Model, tech.Architecture, activeAttributes(attrs)),
		Temperature: 0.4,
		MaxTokens:   80,
	}, risk)

	businessAlignment := business.Model
	if businessAlignment == "" {
		businessAlignment = "Model TBD"
	}
	techAlignment := tech.Architecture
	if techAlignment == "" {
		techAlignment = "Architecture TBD"
	}

	return types.Timeline{
		Phases:             phases,
		TotalDurationWeeks: timelineTotals[complexity],
		Milestones:         milestones,
		CadenceNotes: fmt.Sprintf("%s cadence with emphasis on %s risk mitigation and momentum. Launch focus: %s",
			complexityLabel(complexity), domainLower, notes.Launch),
		RiskWatchlist:     risk,
		BusinessAlignment: businessAlignment,
		TechAlignment:     techAlignment,
	}
}
