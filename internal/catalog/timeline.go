// Copyright Akcero Labs Inc., 2026. All rights reserved.

package catalog

var timelineNotes = map[string]TimelineNotes{
	"Healthcare": {
		Milestone: "Clinical advisory board validates pilot protocol",
		Launch:    "Coordinate regulatory sign-off and publish patient impact case study",
	},
	"Finance": {
		Milestone: "Regulatory sandbox approval achieved",
		Launch:    "Risk & compliance go-live checklist completed",
	},
	"Education": {
		Milestone: "Curriculum accreditation secured",
		Launch:    "Learner showcase event executed",
	},
	"Commerce": {
		Milestone: "Dual-sided pilot conversion benchmarks hit",
		Launch:    "Public launch paired with flagship brand testimonial",
	},
	"Productivity": {
		Milestone: "Cross-functional operating rhythm locked",
		Launch:    "Company-wide rollout playbook activated",
	},
	"Customer": {
		Milestone: "Executive renewal narrative approved",
		Launch:    "Customer advisory board celebrates early wins",
	},
	"Developer": {
		Milestone: "Public API GA with reliability SLAs",
		Launch:    "Developer advocacy tour launched",
	},
	"Marketing": {
		Milestone: "Signature growth experiment proves pipeline lift",
		Launch:    "Category narrative published with partner amplification",
	},
	"Sustainability": {
		Milestone: "Verified carbon reduction report delivered",
		Launch:    "Impact summit with ecosystem partners",
	},
	"Industry": {
		Milestone: "Predictive maintenance ROI validated",
		Launch:    "Factory leadership alignment summit",
	},
	"Innovation": {
		Milestone: "Investor-ready blueprint deck signed off",
		Launch:    "Public beta with ambassador cohort",
	},
}
