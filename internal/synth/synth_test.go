// Copyright Akcero Labs Inc., 2026. All rights reserved.

package synth

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/akcero/blueprint-engine/internal/catalog"
	"github.com/akcero/blueprint-engine/pkg/types"
)

func testBundle(domain string, complexity types.Complexity, active ...string) types.FeatureBundle {
	attrs := make(map[string]bool, len(attributeOrder))
	for _, name := range attributeOrder {
		attrs[name] = false
	}
	for _, name := range active {
		attrs[name] = true
	}
	return types.FeatureBundle{
		Problem:    "Vendors struggle to reach verified buyers.",
		Solution:   "A curated marketplace platform with trust scoring.",
		Domain:     domain,
		Audience:   "Founders and product leaders",
		Keywords:   []string{"vendors", "buyers", "trust"},
		Attributes: attrs,
		Complexity: complexity,
	}
}

func newSynth() *Synthesizer {
	return New(catalog.Default(), nil)
}

func TestFallbackOutputsAreIdempotent(t *testing.T) {
	s := newSynth()
	ctx := context.Background()
	bundle := testBundle("Commerce & Retail", types.ComplexityStandard, types.AttrMarketplace, types.AttrRegulatory)
	idea := "A regulated marketplace for verified vendors."

	first := struct {
		Idea     types.IdeaBrief
		Business types.BusinessPlan
		Tech     types.TechPlan
		Design   types.DesignPlan
		Market   types.MarketPlan
	}{
		s.Idea(ctx, bundle, idea),
		s.Business(ctx, bundle, idea),
		s.Tech(ctx, bundle),
		s.Design(ctx, bundle),
		s.Market(ctx, bundle, idea),
	}
	second := struct {
		Idea     types.IdeaBrief
		Business types.BusinessPlan
		Tech     types.TechPlan
		Design   types.DesignPlan
		Market   types.MarketPlan
	}{
		s.Idea(ctx, bundle, idea),
		s.Business(ctx, bundle, idea),
		s.Tech(ctx, bundle),
		s.Design(ctx, bundle),
		s.Market(ctx, bundle, idea),
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("fallback synthesis is not idempotent")
	}
}

func TestBusinessMarketplaceAugmentation(t *testing.T) {
	s := newSynth()
	bundle := testBundle("Commerce & Retail", types.ComplexityStandard, types.AttrMarketplace)

	plan := s.Business(context.Background(), bundle, "A two-sided marketplace for vendors.")

	found := false
	for _, r := range plan.RevenueStreams {
		if r == "Curated marketplace commissions and vendor sponsorships" {
			found = true
		}
	}
	if !found {
		t.Error("marketplace revenue stream not appended")
	}
	if !strings.Contains(plan.GoToMarket, "dual-sided design partner cohort") {
		t.Error("marketplace go-to-market augmentation missing")
	}
	if strings.Contains(plan.GoToMarket, "{audience}") || strings.Contains(plan.GoToMarket, "{domain}") {
		t.Errorf("unresolved placeholder in go-to-market: %q", plan.GoToMarket)
	}
	assertNoDuplicates(t, plan.RevenueStreams, "revenue streams")
	assertNoDuplicates(t, plan.KeyMetrics, "key metrics")
}

func TestBusinessRegulatoryPricingAndMetrics(t *testing.T) {
	s := newSynth()
	bundle := testBundle("Finance & Fintech", types.ComplexityComplex, types.AttrRegulatory)

	plan := s.Business(context.Background(), bundle, "Compliance automation for banks.")

	if !strings.Contains(plan.PricingStrategy, "compliance assurance fees") {
		t.Errorf("regulatory pricing clause missing: %q", plan.PricingStrategy)
	}
	found := false
	for _, m := range plan.KeyMetrics {
		if m == "Regulatory milestone velocity" {
			found = true
		}
	}
	if !found {
		t.Error("regulatory key metric not appended")
	}
	if plan.ComplexityProfile != "Complex" {
		t.Errorf("complexity profile = %q, want Complex", plan.ComplexityProfile)
	}
	if plan.MonetisationNotes == "" || !strings.HasPrefix(plan.MonetisationNotes, "Lead with ") {
		t.Errorf("unexpected monetisation notes: %q", plan.MonetisationNotes)
	}
}

func TestTechMobileStackGuard(t *testing.T) {
	s := newSynth()
	bundle := testBundle("Technology & Innovation", types.ComplexityLean, types.AttrMobile)

	plan := s.Tech(context.Background(), bundle)

	count := 0
	for _, item := range plan.Stack {
		if strings.Contains(item, "React Native") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one React Native stack entry, got %d", count)
	}
	assertNoDuplicates(t, plan.Stack, "stack")
	if plan.Scalability == "" || plan.ResilienceNotes == "" {
		t.Error("scalability or resilience notes empty")
	}
}

func TestDesignEnterpriseVoice(t *testing.T) {
	s := newSynth()
	bundle := testBundle("Productivity & Collaboration", types.ComplexityStandard)
	bundle.Audience = "Enterprise innovation teams"

	plan := s.Design(context.Background(), bundle)

	if !strings.HasSuffix(plan.BrandVoice, "with executive polish") {
		t.Errorf("brand voice missing executive polish: %q", plan.BrandVoice)
	}
	if !strings.Contains(plan.ContentTone, "strategic imperatives") {
		t.Errorf("content tone missing enterprise clause: %q", plan.ContentTone)
	}
	if plan.InspirationReferences == "" {
		t.Error("inspiration references empty")
	}
}

func TestMarketDeveloperAugmentation(t *testing.T) {
	s := newSynth()
	bundle := testBundle("Developer Tools", types.ComplexityStandard, types.AttrDeveloper)

	plan := s.Market(context.Background(), bundle, "An API observability toolkit.")

	foundPersona := false
	for _, p := range plan.Personas {
		if p == "Lead platform engineer" {
			foundPersona = true
		}
	}
	if !foundPersona {
		t.Error("developer persona not appended")
	}
	assertNoDuplicates(t, plan.Channels, "channels")
	if plan.GoToMarketIntent != "Standard" {
		t.Errorf("go-to-market intent = %q, want Standard", plan.GoToMarketIntent)
	}
}

func TestTimelineWindowsPerComplexity(t *testing.T) {
	s := newSynth()
	ctx := context.Background()

	tests := []struct {
		complexity types.Complexity
		weeks      int
		first      string
		last       string
	}{
		{types.ComplexityLean, 16, "Weeks 1-2", "Weeks 14-16"},
		{types.ComplexityStandard, 22, "Weeks 1-3", "Weeks 19-22"},
		{types.ComplexityComplex, 26, "Weeks 1-4", "Weeks 23-26"},
	}
	for _, tt := range tests {
		t.Run(string(tt.complexity), func(t *testing.T) {
			bundle := testBundle("Healthcare & Wellness", tt.complexity)
			tl := s.Timeline(ctx, bundle, types.BusinessPlan{Model: "SaaS"}, types.TechPlan{Architecture: "mesh"})

			if len(tl.Phases) != 5 {
				t.Fatalf("expected 5 phases, got %d", len(tl.Phases))
			}
			if tl.TotalDurationWeeks != tt.weeks {
				t.Errorf("total weeks = %d, want %d", tl.TotalDurationWeeks, tt.weeks)
			}
			if tl.Phases[0].Duration != tt.first {
				t.Errorf("first window = %q, want %q", tl.Phases[0].Duration, tt.first)
			}
			if tl.Phases[4].Duration != tt.last {
				t.Errorf("last window = %q, want %q", tl.Phases[4].Duration, tt.last)
			}
		})
	}
}

func TestTimelineRegulatoryConditioning(t *testing.T) {
	s := newSynth()
	bundle := testBundle("Healthcare & Wellness", types.ComplexityComplex, types.AttrRegulatory)

	tl := s.Timeline(context.Background(), bundle, types.BusinessPlan{}, types.TechPlan{})

	if !strings.Contains(tl.Phases[0].Focus, "compliance constraints") {
		t.Error("discovery focus missing compliance conditioning")
	}
	if !strings.HasSuffix(tl.Phases[2].ExitCriteria, "compliance review sign-off") {
		t.Errorf("build exit criteria missing sign-off: %q", tl.Phases[2].ExitCriteria)
	}
	if tl.BusinessAlignment != "Model TBD" || tl.TechAlignment != "Architecture TBD" {
		t.Error("empty upstream plans should yield TBD alignment fields")
	}

	foundNote := false
	for _, m := range tl.Milestones {
		if m == "Clinical advisory board validates pilot protocol" {
			foundNote = true
		}
	}
	if !foundNote {
		t.Error("category milestone note not folded into milestones")
	}
	assertNoDuplicates(t, tl.Milestones, "milestones")
}

func TestIdeaEnrichment(t *testing.T) {
	s := newSynth()
	bundle := testBundle("Healthcare & Wellness", types.ComplexityStandard, types.AttrRegulatory, types.AttrDataHeavy)
	bundle.Audience = "Enterprise innovation teams"

	brief := s.Idea(context.Background(), bundle, "A compliance analytics hub for hospitals.")

	if len(brief.ValueProps) > 6 {
		t.Errorf("value props exceed cap: %d", len(brief.ValueProps))
	}
	foundHealthcare := false
	for _, p := range brief.ValueProps {
		if strings.Contains(p, "patient safety") {
			foundHealthcare = true
		}
	}
	if !foundHealthcare {
		t.Error("healthcare value prop not appended")
	}
	if len(brief.TopOpportunities) != 3 {
		t.Errorf("expected 3 opportunities, got %d", len(brief.TopOpportunities))
	}
	wantHighlights := []string{"Regulatory", "Data Heavy"}
	if !reflect.DeepEqual(brief.AttributeHighlights, wantHighlights) {
		t.Errorf("highlights = %v, want %v", brief.AttributeHighlights, wantHighlights)
	}
	if !strings.Contains(brief.Narrative, "Akcero refines") {
		t.Errorf("fallback narrative unexpected: %q", brief.Narrative)
	}
	want := "Founders unlock clear investor-ready storytelling"
	if brief.SuccessMetrics[len(brief.SuccessMetrics)-1] != want {
		t.Errorf("success metrics missing closing entry: %v", brief.SuccessMetrics)
	}
}

func assertNoDuplicates(t *testing.T, items []string, label string) {
	t.Helper()
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it] {
			t.Errorf("duplicate %s entry %q", label, it)
		}
		seen[it] = true
	}
}
