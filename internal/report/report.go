// Copyright Akcero Labs Inc., 2026. All rights reserved.

// Package report renders a blueprint into shareable documents. Markdown
// is the primary format; JSON and YAML are provided for machine
// consumers.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/akcero/blueprint-engine/pkg/types"
)

// Format identifies an export format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q", name)
	}
}

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	default:
		return ".md"
	}
}

// Render produces the blueprint document in the requested format.
func Render(bp *types.Blueprint, format Format) ([]byte, error) {
	switch format {
	case FormatMarkdown:
		return []byte(Markdown(bp)), nil
	case FormatJSON:
		out, err := json.MarshalIndent(bp, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding blueprint as JSON: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(bp)
		if err != nil {
			return nil, fmt.Errorf("encoding blueprint as YAML: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// Markdown renders the full blueprint as a Markdown document.
func Markdown(bp *types.Blueprint) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Product Blueprint\n\n")
	fmt.Fprintf(&b, "## Executive Summary\n\n%s\n\n", bp.Summary)

	fmt.Fprintf(&b, "## Idea\n\n")
	fmt.Fprintf(&b, "- **Problem:** %s\n", bp.Idea.Problem)
	fmt.Fprintf(&b, "- **Solution:** %s\n", bp.Idea.Solution)
	fmt.Fprintf(&b, "- **Domain:** %s\n", bp.Idea.Domain)
	fmt.Fprintf(&b, "- **Audience:** %s\n", bp.Idea.Audience)
	fmt.Fprintf(&b, "- **Complexity:** %s\n\n", bp.Idea.Complexity)
	fmt.Fprintf(&b, "%s\n\n", bp.Idea.Narrative)
	section(&b, "Value Propositions", bp.Idea.ValueProps)
	section(&b, "Success Metrics", bp.Idea.SuccessMetrics)
	section(&b, "Top Opportunities", bp.Idea.TopOpportunities)

	fmt.Fprintf(&b, "## Business Model\n\n")
	fmt.Fprintf(&b, "- **Model:** %s\n", bp.Business.Model)
	fmt.Fprintf(&b, "- **Pricing:** %s\n", bp.Business.PricingStrategy)
	fmt.Fprintf(&b, "- **Go-to-Market:** %s\n\n", bp.Business.GoToMarket)
	section(&b, "Revenue Streams", bp.Business.RevenueStreams)
	section(&b, "Partners", bp.Business.Partners)
	section(&b, "Key Metrics", bp.Business.KeyMetrics)
	section(&b, "Sales Enablement", bp.Business.SalesEnablement)
	fmt.Fprintf(&b, "**Expansion:** %s\n\n", bp.Business.ExpansionStrategy)
	fmt.Fprintf(&b, "**Monetisation:** %s\n\n", bp.Business.MonetisationNotes)

	fmt.Fprintf(&b, "## Technical Plan\n\n")
	fmt.Fprintf(&b, "- **Architecture:** %s\n", bp.Tech.Architecture)
	fmt.Fprintf(&b, "- **Data Strategy:** %s\n", bp.Tech.DataStrategy)
	fmt.Fprintf(&b, "- **Scalability:** %s\n\n", bp.Tech.Scalability)
	section(&b, "Stack", bp.Tech.Stack)
	section(&b, "AI Components", bp.Tech.AIComponents)
	section(&b, "Service Components", bp.Tech.ServiceComponents)
	section(&b, "DevOps", bp.Tech.DevOps)
	section(&b, "Integration Points", bp.Tech.IntegrationPoints)
	fmt.Fprintf(&b, "**Resilience:** %s\n\n", bp.Tech.ResilienceNotes)

	fmt.Fprintf(&b, "## Experience Design\n\n")
	fmt.Fprintf(&b, "- **Brand Voice:** %s\n", bp.Design.BrandVoice)
	fmt.Fprintf(&b, "- **Visual Language:** %s\n", bp.Design.VisualLanguage)
	fmt.Fprintf(&b, "- **Content Tone:** %s\n\n", bp.Design.ContentTone)
	section(&b, "Experience Principles", bp.Design.Principles)
	section(&b, "Key Screens", bp.Design.KeyScreens)
	section(&b, "Interaction Patterns", bp.Design.InteractionPatterns)
	fmt.Fprintf(&b, "**Inspiration:** %s\n\n", bp.Design.InspirationReferences)

	fmt.Fprintf(&b, "## Market Analysis\n\n")
	fmt.Fprintf(&b, "- **Segment:** %s\n", bp.Market.Segment)
	fmt.Fprintf(&b, "- **Positioning:** %s\n", bp.Market.Positioning)
	fmt.Fprintf(&b, "- **Launch Strategy:** %s\n\n", bp.Market.LaunchStrategy)
	section(&b, "Competitors", bp.Market.Competitors)
	section(&b, "Differentiators", bp.Market.Differentiators)
	section(&b, "Personas", bp.Market.Personas)
	section(&b, "Marketing Channels", bp.Market.Channels)
	section(&b, "Market Challenges", bp.Market.Challenges)
	fmt.Fprintf(&b, "**Momentum:** %s\n\n", bp.Market.MomentumNotes)

	fmt.Fprintf(&b, "## Execution Timeline\n\n")
	fmt.Fprintf(&b, "Total duration: %d weeks\n\n", bp.Timeline.TotalDurationWeeks)
	fmt.Fprintf(&b, "| Phase | Duration | Owner |\n|---|---|---|\n")
	for _, p := range bp.Timeline.Phases {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Name, p.Duration, p.Owner)
	}
	fmt.Fprintf(&b, "\n")
	for _, p := range bp.Timeline.Phases {
		fmt.Fprintf(&b, "### %s (%s)\n\n", p.Name, p.Duration)
		fmt.Fprintf(&b, "- **Focus:** %s\n", p.Focus)
		fmt.Fprintf(&b, "- **Owner:** %s\n", p.Owner)
		fmt.Fprintf(&b, "- **Exit Criteria:** %s\n\n", p.ExitCriteria)
	}
	section(&b, "Milestones", bp.Timeline.Milestones)
	fmt.Fprintf(&b, "**Cadence:** %s\n\n", bp.Timeline.CadenceNotes)
	fmt.Fprintf(&b, "**Risk Watchlist:** %s\n", bp.Timeline.RiskWatchlist)

	if bp.Pitch != "" {
		fmt.Fprintf(&b, "\n## Elevator Pitch\n\n%s\n", bp.Pitch)
	}

	return b.String()
}

// section writes a titled bullet list, skipping empty lists entirely.
func section(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	fmt.Fprintf(b, "\n")
}
