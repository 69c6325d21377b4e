// Copyright Akcero Labs Inc., 2026. All rights reserved.

package catalog

var marketRecords = map[string]MarketRecord{
	"Healthcare": {
		Segment: "Healthcare innovators seeking compliant AI copilots for faster validation",
		Competitors: []string{
			"Notable Health",
			"Abridge",
			"Kahun",
		},
		Differentiators: []string{
			"Multi-agent workflow tuned for clinical governance",
			"Explainable narratives linked to compliance artifacts",
			"Out-of-the-box audit telemetry",
		},
		Personas: []string{
			"Chief Innovation Officer",
			"Clinical transformation lead",
			"Digital health startup founder",
		},
		Channels: []string{
			"Healthcare innovation forums",
			"Regulatory roundtables",
			"Clinical podcast circuit",
		},
		Challenges: []string{
			"Procurement scrutiny around data residency",
			"Proof of clinical efficacy required",
		},
		Positioning: "Akcero turns fragmented clinical ideas into rigorously governed product blueprints in days, not quarters.",
		Launch:      "Secure lighthouse health systems, publish de-identified case outcomes, and host a compliance-focused launch webinar.",
	},
	"Finance": {
		Segment: "Fintech and financial ops teams pursuing supervised AI automation",
		Competitors: []string{
			"Veryfi",
			"OpenRisk",
			"Canoe Intelligence",
		},
		Differentiators: []string{
			"Continuous compliance baked into agent workflows",
			"Decision trails for auditors",
			"Real-time scenario modelling",
		},
		Personas: []string{
			"Head of Operations",
			"Chief Risk Officer",
			"Fintech founder",
		},
		Channels: []string{
			"Fintech accelerators",
			"RegTech conferences",
			"LinkedIn thought leadership series",
		},
		Challenges: []string{
			"Regulatory approval timelines",
			"Risk-averse buyers demand references",
		},
		Positioning: "Akcero delivers supervised AI blueprints that pass risk and compliance checks without slowing product velocity.",
		Launch:      "Co-host sandbox demos with regulators and publish risk-case tear-downs showing measurable ROI.",
	},
	"Education": {
		Segment: "Edtech builders modernising curriculum and learner engagement with AI",
		Competitors: []string{
			"Instructure AI",
			"Knewton",
			"Sana",
		},
		Differentiators: []string{
			"Human-first storytelling for instructors",
			"Agent collaboration tuned for learning design",
			"Embedded metrics for outcomes and equity",
		},
		Personas: []string{
			"Academic innovation dean",
			"Program director",
			"Learning design lead",
		},
		Channels: []string{
			"Edtech communities",
			"Teacher influencer partnerships",
			"Conference workshops",
		},
		Challenges: []string{
			"Budget cycles and accreditation",
			"Need to prove learner impact quickly",
		},
		Positioning: "Akcero helps educators ship future-proof programs with agents that co-design, validate, and measure learning impact.",
		Launch:      "Curate design partner cohort across universities and publish before/after learner stories.",
	},
	"Commerce": {
		Segment: "Commerce operators chasing conversion breakthroughs with AI-led planning",
		Competitors: []string{
			"Triple Whale",
			"Malomo",
			"Shopify Sidekick",
		},
		Differentiators: []string{
			"Multi-agent GTM orchestrations",
			"Narratives linking conversion gains to roadmap",
			"Real-time marketplace telemetry",
		},
		Personas: []string{
			"VP Growth",
			"Head of Merchandising",
			"Founder / operator",
		},
		Channels: []string{
			"DTC communities",
			"Performance marketing podcasts",
			"Product Hunt launch",
		},
		Challenges: []string{
			"Crowded tooling category",
			"Proof required on conversion lift",
		},
		Positioning: "Akcero transforms raw commerce ideas into conversion-maximising blueprints orchestrated by specialised agents.",
		Launch:      "Partner with 3 flagship brands, televise experiment wins, and run joint launch live streams.",
	},
	"Productivity": {
		Segment: "Product & strategy teams aligning cross-functional delivery",
		Competitors: []string{
			"Productboard",
			"Aha!",
			"Notion AI",
		},
		Differentiators: []string{
			"Agent swarm translating narrative to execution",
			"Executive-ready storytelling",
			"Telemetry that links decision to outcome",
		},
		Personas: []string{
			"Head of Product",
			"Strategy lead",
			"Chief of Staff",
		},
		Channels: []string{
			"Product leadership roundtables",
			"Founder communities",
			"Thought leadership newsletter",
		},
		Challenges: []string{
			"Need to reframe beyond classic roadmap tools",
			"Stakeholder trust in AI decisions",
		},
		Positioning: "Akcero's multi-agent studio makes every product idea investor, exec, and team ready in one collaborative motion.",
		Launch:      "Host live blueprint showcases with design partners and release template library on launch week.",
	},
	"Customer": {
		Segment: "Customer success leaders scaling narrative-driven retention",
		Competitors: []string{
			"Gainsight AI",
			"Catalyst",
			"Vitally",
		},
		Differentiators: []string{
			"Blueprints connecting customer voice to roadmap",
			"Executive-grade narratives auto-generated",
			"Playbooks measured by revenue impact",
		},
		Personas: []string{
			"VP Customer Success",
			"Revenue operations director",
			"CS Ops lead",
		},
		Channels: []string{
			"CS leadership communities",
			"Revenue forums",
			"Webinars with customer heroes",
		},
		Challenges: []string{
			"Proving attribution to revenue",
			"Integration expectations",
		},
		Positioning: "Akcero turns customer signals into boardroom-ready blueprints that close renewals and expansions faster.",
		Launch:      "Run a lighthouse cohort with CS leaders, publish revenue turnaround stories, and launch on G2/Product Hunt.",
	},
	"Developer": {
		Segment: "Platform and infrastructure leaders building AI-enabled tooling",
		Competitors: []string{
			"Vercel AI",
			"Postman Intelligence",
			"Buildkite Copilot",
		},
		Differentiators: []string{
			"Agentic design tailored for technical buyers",
			"Traceable architecture narratives",
			"CLI and API parity",
		},
		Personas: []string{
			"Head of Platform",
			"Staff engineer",
			"DevRel lead",
		},
		Channels: []string{
			"Open-source launches",
			"Developer conferences",
			"Technical AMAs",
		},
		Challenges: []string{
			"Need to prove reliability",
			"Sophisticated buyer expectations",
		},
		Positioning: "Akcero augments platform teams with agentic blueprints that ship resilient architecture and developer joy.",
		Launch:      "Release reference architectures, run live coding streams, and create integration challenges with partners.",
	},
	"Marketing": {
		Segment: "Marketing leaders orchestrating AI-powered growth engines",
		Competitors: []string{
			"Jasper",
			"Mutiny",
			"June.so",
		},
		Differentiators: []string{
			"Narrative-first GTM agent collective",
			"Attribution-aware action plans",
			"Investor-ready storytelling",
		},
		Personas: []string{
			"Chief Marketing Officer",
			"Growth director",
			"Brand strategist",
		},
		Channels: []string{
			"CMO circles",
			"Growth podcasts",
			"Thought leadership reports",
		},
		Challenges: []string{
			"Saturation of AI copy tools",
			"Need for proven attribution",
		},
		Positioning: "Akcero architects growth engines that connect creative ambition to pipeline reality through specialised agents.",
		Launch:      "Release growth benchmark report, run joint webinars with design partners, and seed community challenges.",
	},
	"Sustainability": {
		Segment: "Climate innovators and ESG leaders translating targets into action",
		Competitors: []string{
			"Watershed",
			"Persefoni",
			"Sweep",
		},
		Differentiators: []string{
			"Agent collective linking carbon data to product decisions",
			"Investor-grade reporting narratives",
			"Marketplace for certified partners",
		},
		Personas: []string{
			"Chief Sustainability Officer",
			"Product sustainability lead",
			"Impact entrepreneur",
		},
		Channels: []string{
			"Climate accelerators",
			"ESG analyst forums",
			"Impact investor networks",
		},
		Challenges: []string{
			"Data quality and proof of impact",
			"Evolving regulations globally",
		},
		Positioning: "Akcero compresses sustainability roadmapping from quarters to weeks with agentic rigor and measurable impact.",
		Launch:      "Publish impact scorecards with design partners and host a climate innovation summit.",
	},
	"Industry": {
		Segment: "Industrial innovators digitising operations with AI co-pilots",
		Competitors: []string{
			"Sight Machine",
			"Augury",
			"GE Predix",
		},
		Differentiators: []string{
			"Agentic orchestration spanning plant to exec",
			"Digital twin storytelling",
			"Operational telemetry fused with product insights",
		},
		Personas: []string{
			"VP Operations",
			"Digital transformation lead",
			"Innovation lab head",
		},
		Channels: []string{
			"Industry consortiums",
			"Manufacturing events",
			"Public-private innovation programs",
		},
		Challenges: []string{
			"Lengthy procurement",
			"Integration with legacy systems",
		},
		Positioning: "Akcero accelerates industrial transformation with agentic blueprints that tie plant telemetry to board-level narratives.",
		Launch:      "Co-host factory innovation tours and publish ROI benchmarks with early adopters.",
	},
	"Innovation": {
		Segment: "Founders and venture studios moving from concept to conviction",
		Competitors: []string{
			"Notion AI",
			"Gamma",
			"FigJam",
		},
		Differentiators: []string{
			"Six specialised agents collaborating in real-time",
			"Investor-ready executive narrative",
			"Proof loops that quantify traction",
		},
		Personas: []string{
			"Founder",
			"Head of Product",
			"Studio partner",
		},
		Channels: []string{
			"Founder communities",
			"Product Hunt",
			"Venture newsletters",
		},
		Challenges: []string{
			"Signal vs noise in AI tooling",
			"Ensuring outcomes feel proprietary",
		},
		Positioning: "Akcero makes every founder idea investor, customer, and team-ready through orchestrated AI agents.",
		Launch:      "Host live multi-agent blueprint showcases and publish the Akcero Product Builder playbook.",
	},
}
