// Copyright Akcero Labs Inc., 2026. All rights reserved.

package catalog

// The go-to-market lines carry {audience} and {domain} placeholders that
// the business synthesizer substitutes per run.
var businessRecords = map[string]BusinessRecord{
	"Healthcare": {
		Model:   "Compliance-first SaaS with expert enablement",
		Pricing: "Pilot-based pricing tied to clinical outcomes and scale",
		Revenue: []string{
			"Clinical innovation subscription for care teams",
			"Implementation & interoperability services",
			"Outcome analytics add-ons for administrators",
		},
		GoToMarket: "Co-create with {audience} and hospital innovation programs, spotlighting measurable patient impact in the {domain} space.",
		Partners: []string{
			"Hospital innovation labs",
			"EHR / HL7 integration specialists",
			"Clinical research networks",
		},
		KeyMetrics: []string{
			"Patient outcome uplift after pilot",
			"Compliance audit pass rate",
			"Care team activation within 60 days",
		},
		Enablement: []string{
			"Clinical validation briefs",
			"Security & compliance FAQ",
			"ROI calculator tailored to administrators",
		},
		Expansion: "Expand into adjacent care pathways once regulatory approvals are secured.",
	},
	"Finance": {
		Model:   "Risk-aware SaaS with premium analytics services",
		Pricing: "Tiered pricing aligned to assets under management and automation throughput",
		Revenue: []string{
			"Core compliance & automation subscription",
			"Premium risk analytics dashboards",
			"Advisory integrations and onboarding services",
		},
		GoToMarket: "Leverage {audience} relationships and fintech sandboxes, emphasising trust, controls, and measurable ROI in {domain}.",
		Partners: []string{
			"Fintech accelerators & regulatory sandboxes",
			"Core banking and payment processors",
			"Audit and compliance consultancies",
		},
		KeyMetrics: []string{
			"Time-to-compliance reduction",
			"Automation-driven cost savings",
			"Portfolio coverage within 90 days",
		},
		Enablement: []string{
			"Regulator-ready security brief",
			"Value justification deck with benchmarks",
			"Integration playbooks for core systems",
		},
		Expansion: "Layer on adjacent risk products once trust is established with early adopters.",
	},
	"Education": {
		Model:   "Learning innovation platform with cohort services",
		Pricing: "Per-program licensing with learner volume accelerators",
		Revenue: []string{
			"Institutional subscription",
			"Curriculum design & accreditation services",
			"Learning analytics premium module",
		},
		GoToMarket: "Activate {audience} champions within universities and bootcamps, pairing thought leadership with credentialed pilots across {domain}.",
		Partners: []string{
			"Edtech accelerators",
			"Curriculum design experts",
			"Learning management vendors",
		},
		KeyMetrics: []string{
			"Learner engagement score",
			"Time-to-curriculum refresh",
			"Placement or certification uplift",
		},
		Enablement: []string{
			"Instructional design case studies",
			"Learner journey storyboard",
			"Funding & grants negotiation toolkit",
		},
		Expansion: "Extend to corporate enablement and lifelong learning marketplaces once initial programs excel.",
	},
	"Commerce": {
		Model:   "Experience-led commerce platform with monetised insights",
		Pricing: "GMV-linked SaaS with performance-based boosters",
		Revenue: []string{
			"Core storefront intelligence subscription",
			"Conversion-optimisation services",
			"Data monetisation via benchmarks",
		},
		GoToMarket: "Target {audience} within high-growth brands, co-market with ecosystem agencies, and prove conversion lift across {domain} segments.",
		Partners: []string{
			"E-commerce agencies",
			"Logistics & fulfilment networks",
			"Payment providers",
		},
		KeyMetrics: []string{
			"Average order value lift",
			"Checkout conversion increase",
			"Customer lifetime value expansion",
		},
		Enablement: []string{
			"Merchandising playbook",
			"Experiment roadmap template",
			"Executive dashboard mockups",
		},
		Expansion: "Scale into new verticals via channel partnerships and white-label intelligence.",
	},
	"Productivity": {
		Model:   "Workflow orchestration platform with analytics add-ons",
		Pricing: "Seat-based pricing with outcome accelerators",
		Revenue: []string{
			"Core workspace subscription",
			"Automation marketplace",
			"Insights & governance module",
		},
		GoToMarket: "Launch with {audience} inside product-led organisations, emphasising measurable cross-team velocity in the {domain} arena.",
		Partners: []string{
			"Product-led growth communities",
			"Product ops consultancies",
			"Integration partners (Slack, Atlassian)",
		},
		KeyMetrics: []string{
			"Workflow completion velocity",
			"Cross-team alignment score",
			"Automation adoption within 30 days",
		},
		Enablement: []string{
			"Change management toolkit",
			"Operational maturity benchmark",
			"Executive summary narrative",
		},
		Expansion: "Expand into adjacent departments once flagship workspace metrics are achieved.",
	},
	"Customer": {
		Model:   "Customer intelligence hub with service automation",
		Pricing: "Tiered pricing aligned to customer volume and SLAs",
		Revenue: []string{
			"Insight subscription",
			"Service automation add-ons",
			"Voice of customer analytics",
		},
		GoToMarket: "Equip {audience} with proof of CSAT gains and time-to-resolution improvements within {domain} teams.",
		Partners: []string{
			"CX consultancies",
			"CRM vendors",
			"Support community programs",
		},
		KeyMetrics: []string{
			"CSAT / NPS uplift",
			"First-response automation coverage",
			"Retention increase across segments",
		},
		Enablement: []string{
			"Executive listening tour agenda",
			"Customer journey storyboard",
			"Automation ROI worksheet",
		},
		Expansion: "Layer in revenue enablement offerings once support motion proves value.",
	},
	"Developer": {
		Model:   "Usage-based API platform with collaboration seats",
		Pricing: "Pay-as-you-go API meters plus enterprise support plans",
		Revenue: []string{
			"Core API consumption",
			"Premium orchestration add-ons",
			"Enterprise success engineering",
		},
		GoToMarket: "Drive adoption through {audience}, open-source showcases, and deep integration tutorials tailored to {domain} builders.",
		Partners: []string{
			"Developer advocacy communities",
			"Cloud marketplaces",
			"Systems integrators",
		},
		KeyMetrics: []string{
			"Active developers",
			"Time-to-first-integration",
			"Production usage retention",
		},
		Enablement: []string{
			"Reference architecture kits",
			"Postman / SDK bundles",
			"Proof-of-concept accelerator scripts",
		},
		Expansion: "Grow into ecosystem marketplaces and private deployments as enterprise demand matures.",
	},
	"Marketing": {
		Model:   "Campaign intelligence platform with experiment services",
		Pricing: "Channel-based tiering with performance bonuses",
		Revenue: []string{
			"Growth intelligence subscription",
			"Managed experiment services",
			"Attribution analytics add-on",
		},
		GoToMarket: "Collaborate with {audience} to launch lighthouse growth experiments and publish benchmark reports across {domain}.",
		Partners: []string{
			"Growth agencies",
			"Ad platforms",
			"Influencer networks",
		},
		KeyMetrics: []string{
			"Cost per acquisition improvement",
			"Campaign experiment velocity",
			"Pipeline contribution",
		},
		Enablement: []string{
			"Campaign hypothesis library",
			"Executive revenue alignment narrative",
			"Attribution modelling toolkit",
		},
		Expansion: "Introduce ecosystem marketplaces and co-marketing alliances after initial channel mastery.",
	},
	"Sustainability": {
		Model:   "Impact data platform with advisory overlays",
		Pricing: "Subscription indexed to emissions footprint and reporting scope",
		Revenue: []string{
			"ESG reporting subscription",
			"Carbon reduction advisory",
			"Marketplace of certified partners",
		},
		GoToMarket: "Activate {audience} and sustainability leads, uniting regulatory compliance with innovation narratives in {domain}.",
		Partners: []string{
			"Climate tech alliances",
			"Regulatory consultants",
			"Data providers (emissions, offsets)",
		},
		KeyMetrics: []string{
			"Emission reduction verified",
			"Reporting cycle compression",
			"Partner program expansion",
		},
		Enablement: []string{
			"ESG storytelling kit",
			"Regulatory mapping template",
			"Executive sustainability heatmap",
		},
		Expansion: "Scale into supply chain transparency once carbon accounting flywheel spins.",
	},
	"Industry": {
		Model:   "Operational intelligence platform with edge services",
		Pricing: "Footprint-based pricing with production outcome bonuses",
		Revenue: []string{
			"Factory orchestration subscription",
			"Predictive maintenance services",
			"Supply-chain visibility add-ons",
		},
		GoToMarket: "Partner with {audience} and industrial innovation labs to prove downtime reduction across {domain} plants.",
		Partners: []string{
			"Systems integrators",
			"IoT hardware vendors",
			"Manufacturing associations",
		},
		KeyMetrics: []string{
			"Downtime reduction",
			"Yield improvement",
			"Throughput increase",
		},
		Enablement: []string{
			"Operational excellence playbook",
			"Factory data readiness assessment",
			"Change management workshop kit",
		},
		Expansion: "Expand regionally via strategic OEM alliances and reseller channels.",
	},
	"Innovation": {
		Model:   "Multi-agent SaaS with advisory overlays",
		Pricing: "Tiered SaaS plus outcomes-based accelerator programs",
		Revenue: []string{
			"Core multi-agent workspace",
			"Strategic advisory sprints",
			"Data & integration marketplace",
		},
		GoToMarket: "Inspire {audience} through founder stories, live blueprint showcases, and community-led launches across {domain}.",
		Partners: []string{
			"Venture studios",
			"Startup communities",
			"Tooling ecosystems",
		},
		KeyMetrics: []string{
			"Blueprint completion velocity",
			"Pilot conversion to build",
			"Founder NPS",
		},
		Enablement: []string{
			"Investor storytelling pack",
			"Blueprint KPI dashboard",
			"Launch playbook for co-marketing",
		},
		Expansion: "Add vertical-specific playbooks once initial cohorts show repeatable wins.",
	},
}
