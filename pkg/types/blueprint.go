// Copyright Akcero Labs Inc., 2026. All rights reserved.

package types

// Complexity is the execution-complexity tier derived from the idea text.
type Complexity string

const (
	ComplexityLean     Complexity = "lean"
	ComplexityStandard Complexity = "standard"
	ComplexityComplex  Complexity = "complex"
)

// Attribute names detected by the feature extractor. Each maps to a
// boolean flag in FeatureBundle.Attributes.
const (
	AttrRegulatory  = "regulatory"
	AttrMarketplace = "marketplace"
	AttrHardware    = "hardware"
	AttrRealtime    = "realtime"
	AttrDataHeavy   = "data_heavy"
	AttrMobile      = "mobile"
	AttrEnterprise  = "enterprise"
	AttrCommunity   = "community"
	AttrDeveloper   = "developer"
	AttrAINative    = "ai_native"
)

// FeatureBundle is the normalized feature set extracted once from the raw
// idea text. It is computed by the extractor at stage 0 and reused
// unchanged by every downstream synthesizer, so the whole blueprint
// agrees on domain, audience, and complexity.
type FeatureBundle struct {
	// Problem is the sentence framing the pain the idea addresses.
	Problem string `json:"problem" yaml:"problem"`

	// Solution is the sentence describing what the product does about it.
	Solution string `json:"solution" yaml:"solution"`

	// Domain is the full category name (e.g. "Healthcare & Wellness"),
	// one of the fixed category set or the default.
	Domain string `json:"domain" yaml:"domain"`

	// Audience is the target-audience label.
	Audience string `json:"target_audience" yaml:"target_audience"`

	// Keywords are ranked by frequency, first-occurrence order breaking
	// ties, at most ten entries.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Attributes maps each attribute name to whether its keyword set
	// appears in the idea text.
	Attributes map[string]bool `json:"attributes" yaml:"attributes"`

	// Complexity is the derived execution tier.
	Complexity Complexity `json:"execution_complexity" yaml:"execution_complexity"`
}

// IdeaBrief is the stage-0 facet output: the FeatureBundle plus the
// enrichments the idea synthesizer layers on top of it.
type IdeaBrief struct {
	FeatureBundle `yaml:",inline"`

	ValueProps          []string `json:"value_propositions" yaml:"value_propositions"`
	SuccessMetrics      []string `json:"success_metrics" yaml:"success_metrics"`
	TopOpportunities    []string `json:"top_opportunities" yaml:"top_opportunities"`
	AttributeHighlights []string `json:"attribute_highlights" yaml:"attribute_highlights"`
	Narrative           string   `json:"narrative" yaml:"narrative"`
}

// BusinessPlan is the business facet of the blueprint.
type BusinessPlan struct {
	Model             string   `json:"model" yaml:"model"`
	PricingStrategy   string   `json:"pricing_strategy" yaml:"pricing_strategy"`
	RevenueStreams    []string `json:"revenue_streams" yaml:"revenue_streams"`
	GoToMarket        string   `json:"go_to_market" yaml:"go_to_market"`
	Partners          []string `json:"partners" yaml:"partners"`
	KeyMetrics        []string `json:"key_metrics" yaml:"key_metrics"`
	SalesEnablement   []string `json:"sales_enablement" yaml:"sales_enablement"`
	ExpansionStrategy string   `json:"expansion_strategy" yaml:"expansion_strategy"`
	MonetisationNotes string   `json:"monetisation_notes" yaml:"monetisation_notes"`
	ComplexityProfile string   `json:"complexity_profile" yaml:"complexity_profile"`
}

// TechPlan is the technical facet of the blueprint.
type TechPlan struct {
	Architecture      string   `json:"architecture" yaml:"architecture"`
	Stack             []string `json:"stack" yaml:"stack"`
	AIComponents      []string `json:"ai_components" yaml:"ai_components"`
	ServiceComponents []string `json:"service_components" yaml:"service_components"`
	DataStrategy      string   `json:"data_strategy" yaml:"data_strategy"`
	DevOps            []string `json:"devops" yaml:"devops"`
	IntegrationPoints []string `json:"integration_points" yaml:"integration_points"`
	ResilienceNotes   string   `json:"resilience_notes" yaml:"resilience_notes"`
	Scalability       string   `json:"scalability" yaml:"scalability"`
}

// DesignPlan is the design facet of the blueprint.
type DesignPlan struct {
	Principles            []string `json:"experience_principles" yaml:"experience_principles"`
	KeyScreens            []string `json:"key_screens" yaml:"key_screens"`
	InteractionPatterns   []string `json:"interaction_patterns" yaml:"interaction_patterns"`
	BrandVoice            string   `json:"brand_voice" yaml:"brand_voice"`
	VisualLanguage        string   `json:"visual_language" yaml:"visual_language"`
	ContentTone           string   `json:"content_tone" yaml:"content_tone"`
	InspirationReferences string   `json:"inspiration_references" yaml:"inspiration_references"`
	DesignComplexity      string   `json:"design_complexity" yaml:"design_complexity"`
}

// MarketPlan is the market facet of the blueprint.
type MarketPlan struct {
	Segment          string   `json:"segment" yaml:"segment"`
	Competitors      []string `json:"competitors" yaml:"competitors"`
	Differentiators  []string `json:"differentiators" yaml:"differentiators"`
	Personas         []string `json:"personas" yaml:"personas"`
	Channels         []string `json:"marketing_channels" yaml:"marketing_channels"`
	Challenges       []string `json:"market_challenges" yaml:"market_challenges"`
	LaunchStrategy   string   `json:"launch_strategy" yaml:"launch_strategy"`
	Positioning      string   `json:"positioning_statement" yaml:"positioning_statement"`
	MomentumNotes    string   `json:"momentum_notes" yaml:"momentum_notes"`
	GoToMarketIntent string   `json:"go_to_market_intent" yaml:"go_to_market_intent"`
}

// TimelinePhase is one of the five fixed execution phases.
type TimelinePhase struct {
	Name         string `json:"phase" yaml:"phase"`
	Duration     string `json:"duration" yaml:"duration"`
	Focus        string `json:"focus" yaml:"focus"`
	Owner        string `json:"owner" yaml:"owner"`
	ExitCriteria string `json:"exit_criteria" yaml:"exit_criteria"`
}

// Timeline is the execution-timeline facet of the blueprint.
type Timeline struct {
	Phases             []TimelinePhase `json:"phases" yaml:"phases"`
	TotalDurationWeeks int             `json:"total_duration_weeks" yaml:"total_duration_weeks"`
	Milestones         []string        `json:"milestones" yaml:"milestones"`
	CadenceNotes       string          `json:"cadence_notes" yaml:"cadence_notes"`
	RiskWatchlist      string          `json:"risk_watchlist" yaml:"risk_watchlist"`
	BusinessAlignment  string          `json:"business_alignment" yaml:"business_alignment"`
	TechAlignment      string          `json:"tech_alignment" yaml:"tech_alignment"`
}

// Blueprint aggregates all facet results for one pipeline run. It is
// assembled once after the final stage and never mutated afterwards.
type Blueprint struct {
	Idea     IdeaBrief    `json:"idea" yaml:"idea"`
	Business BusinessPlan `json:"business_model" yaml:"business_model"`
	Tech     TechPlan     `json:"tech_stack" yaml:"tech_stack"`
	Design   DesignPlan   `json:"ui_design" yaml:"ui_design"`
	Market   MarketPlan   `json:"market_analysis" yaml:"market_analysis"`
	Timeline Timeline     `json:"timeline" yaml:"timeline"`

	// Summary is the executive summary generated after stage 3.
	Summary string `json:"summary" yaml:"summary"`

	// Pitch is the optional elevator pitch; empty unless pitch mode was
	// requested for the run.
	Pitch string `json:"pitch,omitempty" yaml:"pitch,omitempty"`
}
