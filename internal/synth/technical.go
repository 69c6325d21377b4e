// Copyright Akcero Labs Inc., 2026. All rights reserved.

package synth

import (
	"context"
	"fmt"
	"strings"

	"github.com/akcero/blueprint-engine/internal/completion"
	"github.com/akcero/blueprint-engine/pkg/types"
)

// Tech derives the technical facet from the catalog template with
// attribute augmentation. Architecture and resilience notes are
// completion-refinable.
func (s *Synthesizer) Tech(ctx context.Context, bundle types.FeatureBundle) types.TechPlan {
	category := s.cat.ResolveCategory(bundle.Domain)
	rec := s.cat.Tech(category)

	plan := types.TechPlan{
		Architecture:      rec.Architecture,
		Stack:             append([]string(nil), rec.Stack...),
		AIComponents:      append([]string(nil), rec.AI...),
		ServiceComponents: append([]string(nil), rec.Services...),
		DataStrategy:      rec.DataStrategy,
		DevOps:            append([]string(nil), rec.DevOps...),
		IntegrationPoints: append([]string(nil), rec.Integrations...),
	}

	attrs := bundle.Attributes
	if attrs[types.AttrRealtime] {
		plan.Stack = append(plan.Stack, "Event streaming backbone (Kafka / Pulsar)")
		plan.AIComponents = append(plan.AIComponents, "Real-time signal prioritisation agent")
	}
	if attrs[types.AttrMarketplace] {
		plan.ServiceComponents = append(plan.ServiceComponents, "Supply-demand matching engine")
		plan.AIComponents = append(plan.AIComponents, "Marketplace liquidity forecaster")
	}
	if attrs[types.AttrHardware] {
		plan.Stack = append(plan.Stack, "IoT ingestion via MQTT/Greengrass")
		plan.ServiceComponents = append(plan.ServiceComponents, "Edge device fleet manager")
	}
	if attrs[types.AttrMobile] && !stackMentions(plan.Stack, "React Native") {
		plan.Stack = append(plan.Stack, "React Native / Expo mobile shell")
	}
	if attrs[types.AttrDeveloper] {
		plan.IntegrationPoints = append(plan.IntegrationPoints, "CLI and SDK distribution pipeline")
		plan.DevOps = append(plan.DevOps, "Developer sandbox orchestration")
	}
	if attrs[types.AttrEnterprise] {
		plan.DevOps = append(plan.DevOps, "Policy-as-code with Conftest / OPA")
	}

	plan.Stack = dedupe(plan.Stack)
	plan.AIComponents = dedupe(plan.AIComponents)
	plan.ServiceComponents = dedupe(plan.ServiceComponents)
	plan.DevOps = dedupe(plan.DevOps)
	plan.IntegrationPoints = dedupe(plan.IntegrationPoints)

	resilience := fmt.Sprintf("%s delivery profile with guardrails for %s workloads.",
		complexityLabel(bundle.Complexity), strings.ToLower(category))

	plan.Architecture = completion.Refine(ctx, s.client, completion.Request{
		System: "Summarise the architecture in one vivid sentence that emphasises reliability and extensibility.",
		Prompt: fmt.Sprintf("Architecture: %s\nStack: %s\nAI: %s\nDomain: %s\nComplexity: %s",
			plan.Architecture,
			strings.Join(plan.Stack, ", "),
			strings.Join(plan.AIComponents, ", "),
			bundle.Domain, bundle.Complexity),
		Temperature: 0.4,
		MaxTokens:   140,
	}, plan.Architecture)

	plan.ResilienceNotes = completion.Refine(ctx, s.client, completion.Request{
		System: "Provide one sentence on reliability and risk mitigation priorities for this architecture.",
		Prompt: fmt.Sprintf("Domain: %s\nComplexity: %s\nAttributes: %s\nCurrent notes: %s",
			bundle.Domain, bundle.Complexity, activeAttributes(attrs), resilience),
		Temperature: 0.3,
		MaxTokens:   120,
	}, resilience)

	plan.Scalability = fmt.Sprintf("%s delivery cadence with guardrails for %s workloads.",
		complexityLabel(bundle.Complexity), strings.ToLower(category))

	return plan
}

func stackMentions(stack []string, needle string) bool {
	for _, item := range stack {
		if strings.Contains(item, needle) {
			return true
		}
	}
	return false
}

// activeAttributes renders the set attributes in stable order for
// prompt context.
func activeAttributes(attrs map[string]bool) string {
	var active []string
	for _, name := range attributeOrder {
		if attrs[name] {
			active = append(active, name)
		}
	}
	if len(active) == 0 {
		return "none"
	}
	return strings.Join(active, ", ")
}
