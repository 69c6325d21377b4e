// Copyright Akcero Labs Inc., 2026. All rights reserved.

package catalog

var designRecords = map[string]DesignRecord{
	"Healthcare": {
		Principles: []string{
			"Empathetic clarity with clinician-first language",
			"Trust signals via audit trails and explainability",
			"Assistive automation that keeps humans in control",
		},
		KeyScreens: []string{
			"Clinical opportunity map",
			"Compliance command centre",
			"Patient impact dashboard",
			"Care pathway timeline",
		},
		Interactions: []string{
			"Guided playbooks with safety checkpoints",
			"Evidence trace overlays",
			"Scenario comparison mode",
		},
		Voice:  "Reassuring, expert, compliance-aware",
		Visual: "Calming neutrals with Akcero blue accents and data-rich panels",
		Tone:   "Evidence-led storytelling that balances innovation with safety",
	},
	"Finance": {
		Principles: []string{
			"Control and auditability",
			"Scenario thinking at a glance",
			"Signal prioritisation for analysts",
		},
		KeyScreens: []string{
			"Risk cockpit",
			"Regulatory action log",
			"Portfolio automation canvas",
			"Executive reporting suite",
		},
		Interactions: []string{
			"Explainable AI drilldowns",
			"Playbook builder",
			"Threshold alert designer",
		},
		Voice:  "Trusted, precise, and accountability-driven",
		Visual: "High-contrast dashboards with precise typography and data density",
		Tone:   "Commanding confidence while highlighting safeguards",
	},
	"Education": {
		Principles: []string{
			"Guided creation with playful clarity",
			"Community feedback loops",
			"Celebration of learner progress",
		},
		KeyScreens: []string{
			"Curriculum atelier",
			"Learner journey mapper",
			"Engagement analytics",
			"Credential showcase",
		},
		Interactions: []string{
			"Commentary threads",
			"Interactive storyboards",
			"Adaptive preview",
		},
		Voice:  "Encouraging, human, future-positive",
		Visual: "Warm neutrals with energetic accent gradients",
		Tone:   "Inspiring craftsmanship with practical scaffolding",
	},
	"Commerce": {
		Principles: []string{
			"Conversion clarity",
			"Revenue storytelling",
			"Fast iteration loops",
		},
		KeyScreens: []string{
			"Revenue command centre",
			"Experiment tracker",
			"Marketplace health",
			"Customer journey heatmap",
		},
		Interactions: []string{
			"Scenario toggles",
			"Smart playbook suggestions",
			"Live funnel overlays",
		},
		Voice:  "Energetic, growth-minded, and data-backed",
		Visual: "Bold hero stats with modular cards and high-contrast calls-to-action",
		Tone:   "Outcome-obsessed yet grounded in feasibility",
	},
	"Productivity": {
		Principles: []string{
			"Narrative alignment",
			"Transparency of agent decisions",
			"Momentum cues",
		},
		KeyScreens: []string{
			"Unified mission brief",
			"Dependency radar",
			"AI assistant timeline",
			"Insights backlog",
		},
		Interactions: []string{
			"Command palette",
			"Timeline scrubber",
			"Focus mode",
		},
		Voice:  "Strategic, energising, partner-like",
		Visual: "Layered cards, subtle glassmorphism, and rich whitespace",
		Tone:   "Confident acceleration without overwhelm",
	},
	"Customer": {
		Principles: []string{
			"Empathy showcased by design",
			"Signal-to-action mapping",
			"Moments of celebration for wins",
		},
		KeyScreens: []string{
			"Customer health overview",
			"Journey timeline",
			"Executive briefing suite",
			"Renewal planner",
		},
		Interactions: []string{
			"Success pulse checks",
			"Playbook branching",
			"Collaboration co-editing",
		},
		Voice:  "Supportive, pragmatic, north-star oriented",
		Visual: "Soft gradients with crisp data cards and personable iconography",
		Tone:   "Empathetic authority that rallies teams",
	},
	"Developer": {
		Principles: []string{
			"Make power visible",
			"Surfacing telemetry without noise",
			"Shortcut-first execution",
		},
		KeyScreens: []string{
			"Service topology",
			"Usage analytics",
			"API playground",
			"Incident retros",
		},
		Interactions: []string{
			"Command palette + CLI parity",
			"Split-pane diff view",
			"Automations panel",
		},
		Voice:  "Direct, expert, builder-to-builder",
		Visual: "Dark theme with neon accents and monospace highlights",
		Tone:   "Matter-of-fact, unlocking mastery and velocity",
	},
	"Marketing": {
		Principles: []string{
			"Narrative framing of data",
			"Experiment storytelling",
			"Collaboration rituals",
		},
		KeyScreens: []string{
			"Campaign studio",
			"Audience intelligence",
			"Budget orchestration",
			"Launch calendar",
		},
		Interactions: []string{
			"What-if toggles",
			"Creative inspiration wall",
			"Auto-generated executive briefs",
		},
		Voice:  "Bold, visionary, momentum-building",
		Visual: "Vibrant gradient washes with crisp typography and video-friendly layouts",
		Tone:   "Ambitious with proof at every step",
	},
	"Sustainability": {
		Principles: []string{
			"Transparency",
			"Collaborative accountability",
			"Hopeful pragmatism",
		},
		KeyScreens: []string{
			"Impact dashboard",
			"Target tracking",
			"Supplier alignment space",
			"Investor-ready narrative",
		},
		Interactions: []string{
			"Scenario sliders",
			"Compliance checklists",
			"Goal visualisations",
		},
		Voice:  "Purposeful, optimistic, evidence-rich",
		Visual: "Earthy neutrals with crisp data overlays and optimism cues",
		Tone:   "Inspiring urgency backed by action",
	},
	"Industry": {
		Principles: []string{
			"Operational clarity",
			"Proactive alerts",
			"Human + machine partnership",
		},
		KeyScreens: []string{
			"Factory digital twin",
			"Maintenance planner",
			"Supply chain monitor",
			"Executive value cockpit",
		},
		Interactions: []string{
			"Drill-through timelines",
			"Command centre quick actions",
			"Augmented reality overlays (roadmap)",
		},
		Voice:  "Assured, precision-focused, efficiency obsessed",
		Visual: "High-contrast industrial UI with data-rich modules",
		Tone:   "Operationally authoritative with clear ROI",
	},
	"Innovation": {
		Principles: []string{
			"Story-driven intelligence",
			"Actionable transparency",
			"Momentum you can feel",
		},
		KeyScreens: []string{
			"Idea intake cockpit",
			"Opportunity canvas",
			"Blueprint narrative board",
			"Roadmap scenario explorer",
		},
		Interactions: []string{
			"Multiplayer editing",
			"Timeline scrubbing",
			"Agent rationale reveals",
		},
		Voice:  "Visionary, expert, energising",
		Visual: "Luminous blues with clean glassmorphism and statement typography",
		Tone:   "Confident storytelling that rallies investors and teams",
	},
}
