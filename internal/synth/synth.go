// Copyright Akcero Labs Inc., 2026. All rights reserved.

// Package synth holds the five facet synthesizers. Each one folds the
// feature bundle into its catalog template, applies attribute-conditioned
// augmentation, and optionally refines designated prose through the
// completion client. Synthesizers never fail: with the fallback client
// their output is a pure function of the bundle.
package synth

import (
	"strings"

	"github.com/akcero/blueprint-engine/internal/catalog"
	"github.com/akcero/blueprint-engine/internal/completion"
	"github.com/akcero/blueprint-engine/pkg/types"
)

// Synthesizer binds the catalog and completion client shared by all
// facets. Safe for concurrent use: methods only read shared state.
type Synthesizer struct {
	cat    *catalog.Catalog
	client completion.Client
}

// New returns a Synthesizer over the catalog and client. A nil client
// behaves like the deterministic fallback.
func New(cat *catalog.Catalog, client completion.Client) *Synthesizer {
	if client == nil {
		client = completion.Fallback{}
	}
	return &Synthesizer{cat: cat, client: client}
}

// attributeOrder fixes the iteration order for attribute-derived lists.
var attributeOrder = []string{
	types.AttrRegulatory,
	types.AttrMarketplace,
	types.AttrHardware,
	types.AttrRealtime,
	types.AttrDataHeavy,
	types.AttrMobile,
	types.AttrEnterprise,
	types.AttrCommunity,
	types.AttrDeveloper,
	types.AttrAINative,
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}

// fillPlaceholders substitutes the {audience} and {domain} slots in
// catalog template text. Domain is lowercased, matching how templates
// embed it mid-sentence.
func fillPlaceholders(s, audience, domain string) string {
	s = strings.ReplaceAll(s, "{audience}", audience)
	return strings.ReplaceAll(s, "{domain}", strings.ToLower(domain))
}

// titleWords capitalizes each underscore- or space-separated word.
func titleWords(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// complexityLabel renders the complexity tier for display fields.
func complexityLabel(c types.Complexity) string {
	return titleWords(string(c))
}
