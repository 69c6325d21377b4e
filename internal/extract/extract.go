// Copyright Akcero Labs Inc., 2026. All rights reserved.

// Package extract derives a normalized feature bundle from raw idea text.
// Extraction is fully deterministic: the same input always yields the
// same bundle, and every downstream synthesizer consumes the bundle
// unchanged so the whole blueprint agrees on domain, audience, and
// complexity.
package extract

import (
	"regexp"
	"strings"

	"github.com/akcero/blueprint-engine/internal/catalog"
	"github.com/akcero/blueprint-engine/pkg/types"
)

// PlaceholderIdea substitutes for empty input so the pipeline always has
// something to reason about.
const PlaceholderIdea = "An AI copilot that turns founder vision statements into validated product roadmaps."

// DefaultProblem is used when the idea text has no sentences at all.
const DefaultProblem = "Founders need a sharper way to translate ideas into products."

// DefaultSolution is used when no sentence names the solution. The idea
// synthesizer may later replace it with a refined phrasing.
const DefaultSolution = "The platform orchestrates expert agents to translate founder intent into a validated blueprint."

// DefaultAudience is the audience label when no audience keyword matches.
const DefaultAudience = "Visionary product builders"

const keywordLimit = 10

var (
	wordPattern     = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9-]+`)
	sentencePattern = regexp.MustCompile(`[.!?]\s+`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

var problemTokens = []string{"problem", "struggle", "pain", "friction", "challenge"}

var solutionTokens = []string{"solution", "platform", "tool", "product", "service", "assistant"}

// Extractor derives feature bundles against a fixed domain catalog.
type Extractor struct {
	cat *catalog.Catalog
}

// New returns an Extractor scanning the given catalog's domain list.
func New(cat *catalog.Catalog) *Extractor {
	return &Extractor{cat: cat}
}

// Extract computes the feature bundle for the idea text. Empty or
// whitespace-only input is replaced by PlaceholderIdea first.
func (e *Extractor) Extract(text string) types.FeatureBundle {
	idea := strings.TrimSpace(text)
	if idea == "" {
		idea = PlaceholderIdea
	}

	sentences := splitSentences(idea)
	attrs := detectAttributes(idea)

	return types.FeatureBundle{
		Problem:    selectSentence(sentences, problemTokens, firstOr(sentences, DefaultProblem)),
		Solution:   selectSentence(sentences, solutionTokens, DefaultSolution),
		Domain:     e.inferDomain(idea),
		Audience:   InferAudience(idea),
		Keywords:   Keywords(idea, keywordLimit),
		Attributes: attrs,
		Complexity: assessComplexity(idea, attrs),
	}
}

// EffectiveIdea returns the text extraction actually ran on, substituting
// the placeholder for empty input. Callers persist and summarize this
// value so stored runs match the generated blueprint.
func EffectiveIdea(text string) string {
	if idea := strings.TrimSpace(text); idea != "" {
		return idea
	}
	return PlaceholderIdea
}

// normalize collapses runs of whitespace to single spaces.
func normalize(s string) string {
	return spacePattern.ReplaceAllString(strings.TrimSpace(s), " ")
}

// splitSentences breaks text on terminal punctuation followed by
// whitespace, discarding empty fragments.
func splitSentences(text string) []string {
	parts := sentencePattern.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := normalize(p); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// selectSentence returns the first sentence containing any of the tokens,
// or the fallback when none match.
func selectSentence(sentences, tokens []string, fallback string) string {
	for _, s := range sentences {
		lowered := strings.ToLower(s)
		for _, tok := range tokens {
			if strings.Contains(lowered, tok) {
				return s
			}
		}
	}
	return fallback
}

func firstOr(sentences []string, fallback string) string {
	if len(sentences) > 0 {
		return sentences[0]
	}
	return fallback
}

// Keywords returns up to limit keywords ranked by frequency, with first
// occurrence in the text breaking ties. Stopwords and tokens of length
// two or less are dropped. An empty result falls back to generic terms.
func Keywords(text string, limit int) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := make([]string, 0, len(words))
	for i, w := range words {
		if len(w) <= 2 || stopwords[w] {
			continue
		}
		if _, seen := counts[w]; !seen {
			firstSeen[w] = i
			order = append(order, w)
		}
		counts[w]++
	}

	// Stable selection sort keeps ties in first-seen order without
	// allocating a comparator closure over two maps per call.
	ranked := make([]string, len(order))
	copy(ranked, order)
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0; j-- {
			a, b := ranked[j-1], ranked[j]
			if counts[b] > counts[a] || (counts[b] == counts[a] && firstSeen[b] < firstSeen[a]) {
				ranked[j-1], ranked[j] = b, a
			} else {
				break
			}
		}
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if len(ranked) == 0 {
		return []string{"innovation", "blueprint"}
	}
	return ranked
}

// detectAttributes checks every attribute keyword set against the
// lowered text. Every known attribute gets an entry, true or false.
func detectAttributes(text string) map[string]bool {
	lowered := strings.ToLower(text)
	attrs := make(map[string]bool, len(attributeKeywords))
	for name, keywords := range attributeKeywords {
		hit := false
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				hit = true
				break
			}
		}
		attrs[name] = hit
	}
	return attrs
}

// assessComplexity scores the idea from its attributes and length.
// Scores of six and above are complex, three and above standard,
// anything lower lean.
func assessComplexity(text string, attrs map[string]bool) types.Complexity {
	score := 1
	for attr, active := range attrs {
		if !active {
			continue
		}
		if w, ok := complexityWeights[attr]; ok {
			score += w
		} else {
			score++
		}
	}

	wordCount := len(strings.Fields(text))
	if wordCount > 140 {
		score++
	}
	if wordCount > 220 {
		score++
	}
	if attrs[types.AttrRegulatory] && attrs[types.AttrMarketplace] {
		score++
	}

	switch {
	case score >= 6:
		return types.ComplexityComplex
	case score >= 3:
		return types.ComplexityStandard
	default:
		return types.ComplexityLean
	}
}

// inferDomain scans the catalog's domain categories in order and returns
// the first whose name tokens appear in the text. Tokens are the
// comma/ampersand-separated parts of the category name, lowercased.
func (e *Extractor) inferDomain(text string) string {
	lowered := strings.ToLower(text)
	for _, d := range e.cat.Domains() {
		for _, token := range domainTokens(d.Name) {
			if strings.Contains(lowered, token) {
				return d.Name
			}
		}
	}
	return catalog.DefaultDomain
}

func domainTokens(name string) []string {
	parts := strings.Split(strings.ReplaceAll(name, "&", ","), ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.ToLower(strings.TrimSpace(p)); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// InferAudience maps the first matching audience keyword to its label.
// "consumer" is only checked after the primary rules so more specific
// audiences win.
func InferAudience(text string) string {
	lowered := strings.ToLower(text)
	for _, rule := range audienceRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.label
		}
	}
	if strings.Contains(lowered, "consumer") {
		return "Design-forward consumers"
	}
	return DefaultAudience
}
