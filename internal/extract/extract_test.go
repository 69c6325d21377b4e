// Copyright Akcero Labs Inc., 2026. All rights reserved.

package extract

import (
	"reflect"
	"testing"

	"github.com/akcero/blueprint-engine/internal/catalog"
	"github.com/akcero/blueprint-engine/pkg/types"
)

func newExtractor() *Extractor {
	return New(catalog.Default())
}

func TestExtractDeterministic(t *testing.T) {
	e := newExtractor()
	idea := "A marketplace connecting independent sellers with enterprise buyers. The problem is fragmented vendor discovery."

	a := e.Extract(idea)
	b := e.Extract(idea)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical input produced different bundles")
	}
}

func TestExtractEmptyInputUsesPlaceholder(t *testing.T) {
	e := newExtractor()

	bundle := e.Extract("   ")
	if bundle.Problem == "" || bundle.Solution == "" {
		t.Fatal("placeholder extraction left empty problem or solution")
	}
	if bundle.Domain == "" || bundle.Audience == "" {
		t.Fatal("placeholder extraction left empty domain or audience")
	}
	if len(bundle.Keywords) == 0 {
		t.Fatal("placeholder extraction produced no keywords")
	}
	if EffectiveIdea("  ") != PlaceholderIdea {
		t.Errorf("EffectiveIdea on blank input = %q", EffectiveIdea("  "))
	}
}

func TestProblemSolutionSelection(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		name         string
		idea         string
		wantProblem  string
		wantSolution string
	}{
		{
			name:         "explicit problem and solution sentences",
			idea:         "Shoppers face a real pain finding ethical brands. Our platform curates verified sustainable stores.",
			wantProblem:  "Shoppers face a real pain finding ethical brands",
			wantSolution: "Our platform curates verified sustainable stores.",
		},
		{
			name:         "no markers falls back to first sentence and default",
			idea:         "Connect gardeners with neighbours who own unused land.",
			wantProblem:  "Connect gardeners with neighbours who own unused land.",
			wantSolution: DefaultSolution,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := e.Extract(tt.idea)
			if bundle.Problem != tt.wantProblem {
				t.Errorf("problem = %q, want %q", bundle.Problem, tt.wantProblem)
			}
			if bundle.Solution != tt.wantSolution {
				t.Errorf("solution = %q, want %q", bundle.Solution, tt.wantSolution)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{
			name:  "frequency ranks first",
			text:  "wellness coaching wellness journeys wellness coaching nutrition",
			limit: 3,
			want:  []string{"wellness", "coaching", "nutrition"},
		},
		{
			name:  "first occurrence breaks ties",
			text:  "garden tools garden tools compost compost",
			limit: 4,
			want:  []string{"garden", "tools", "compost"},
		},
		{
			name:  "stopwords and short tokens dropped",
			text:  "the ai platform for it teams",
			limit: 5,
			want:  []string{"innovation", "blueprint"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Keywords(tt.text, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAttributesDetected(t *testing.T) {
	e := newExtractor()
	idea := "A HIPAA compliant marketplace with real-time analytics for enterprise care teams."

	bundle := e.Extract(idea)
	for _, attr := range []string{
		types.AttrRegulatory,
		types.AttrMarketplace,
		types.AttrRealtime,
		types.AttrDataHeavy,
		types.AttrEnterprise,
	} {
		if !bundle.Attributes[attr] {
			t.Errorf("attribute %q not detected", attr)
		}
	}
	if bundle.Attributes[types.AttrHardware] {
		t.Error("hardware detected without hardware keywords")
	}
	if len(bundle.Attributes) != 10 {
		t.Errorf("expected all 10 attributes present, got %d", len(bundle.Attributes))
	}
}

func TestComplexityTiers(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		name string
		idea string
		want types.Complexity
	}{
		{
			name: "minimal idea is lean",
			idea: "A journaling notebook companion.",
			want: types.ComplexityLean,
		},
		{
			name: "couple of weighted attributes is standard",
			idea: "A mobile companion with live updates for commuters.",
			want: types.ComplexityStandard,
		},
		{
			name: "regulated marketplace is complex",
			idea: "A regulated two-sided marketplace matching hardware vendors with enterprise buyers under strict compliance audit rules.",
			want: types.ComplexityComplex,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extract(tt.idea).Complexity; got != tt.want {
				t.Errorf("complexity = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInferDomain(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		name string
		idea string
		want string
	}{
		{"healthcare keyword", "A wellness tracker for chronic pain patients.", "Healthcare & Wellness"},
		{"fintech keyword", "Automated fintech reconciliation workflows.", "Finance & Fintech"},
		{"no match falls back", "A scheduling helper for dog walkers.", catalog.DefaultDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extract(tt.idea).Domain; got != tt.want {
				t.Errorf("domain = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInferAudience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"founder", "a toolkit every startup founder needs", "Founders and product leaders"},
		{"enterprise", "built for enterprise innovation squads", "Enterprise innovation teams"},
		{"consumer secondary", "a delightful consumer journaling app", "Design-forward consumers"},
		{"default", "an aquarium monitoring helper", DefaultAudience},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferAudience(tt.text); got != tt.want {
				t.Errorf("InferAudience(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
