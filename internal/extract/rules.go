// Copyright Akcero Labs Inc., 2026. All rights reserved.

package extract

import "github.com/akcero/blueprint-engine/pkg/types"

// stopwords are dropped from keyword ranking. The set deliberately
// includes generic product vocabulary that would otherwise dominate
// every idea.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"from": true, "into": true, "this": true, "your": true, "their": true,
	"about": true, "will": true, "make": true, "build": true, "help": true,
	"using": true, "through": true, "across": true, "data": true,
	"user": true, "users": true, "product": true, "ai": true,
	"artificial": true, "intelligence": true, "system": true,
	"platform": true, "experience": true, "solution": true,
	"create": true, "creating": true, "design": true, "digital": true,
	"idea": true, "ideas": true, "team": true, "teams": true,
}

// attributeKeywords drives attribute detection via substring checks on
// the lowered idea text.
var attributeKeywords = map[string][]string{
	types.AttrRegulatory: {
		"regulation", "regulated", "compliance", "hipaa", "gdpr", "sox",
		"audit", "risk", "governance",
	},
	types.AttrMarketplace: {
		"marketplace", "two-sided", "multi-sided", "buyers", "sellers",
		"vendors", "matching",
	},
	types.AttrHardware: {
		"hardware", "device", "sensor", "iot", "wearable", "embedded",
	},
	types.AttrRealtime: {
		"real-time", "realtime", "live", "streaming", "instant",
		"event-driven",
	},
	types.AttrDataHeavy: {
		"analytics", "warehouse", "lakehouse", "big data", "data",
		"insight", "forecast",
	},
	types.AttrMobile:     {"mobile", "ios", "android", "smartphone"},
	types.AttrEnterprise: {"enterprise", "fortune", "corporate", "global"},
	types.AttrCommunity:  {"community", "social", "network", "member"},
	types.AttrDeveloper:  {"developer", "api", "sdk", "cli", "devops"},
	types.AttrAINative:   {"agent", "agents", "multi-agent", "autonomous"},
}

// complexityWeights scores active attributes. Attributes absent here
// count one.
var complexityWeights = map[string]int{
	types.AttrRegulatory:  2,
	types.AttrMarketplace: 2,
	types.AttrHardware:    2,
	types.AttrEnterprise:  1,
	types.AttrDataHeavy:   1,
	types.AttrRealtime:    1,
	types.AttrDeveloper:   1,
	types.AttrMobile:      1,
	types.AttrCommunity:   1,
}

type audienceRule struct {
	keyword string
	label   string
}

// audienceRules is checked in order; the first match wins.
var audienceRules = []audienceRule{
	{"founder", "Founders and product leaders"},
	{"startup", "Founders and product leaders"},
	{"entrepreneur", "Founders and product leaders"},
	{"operations", "Operations and strategy teams"},
	{"strategy", "Operations and strategy teams"},
	{"pm", "Product managers and discovery leads"},
	{"enterprise", "Enterprise innovation teams"},
	{"developer", "Developers and technical platform teams"},
	{"engineer", "Developers and technical platform teams"},
	{"marketing", "Growth and marketing leadership"},
	{"growth", "Growth and marketing leadership"},
	{"customer", "Customer success and revenue leaders"},
	{"cs", "Customer success and revenue leaders"},
	{"education", "Learning and enablement leaders"},
	{"sustain", "Sustainability and impact leaders"},
}
