// Copyright Akcero Labs Inc., 2026. All rights reserved.

package catalog

// DefaultKey is the category every miss falls back to.
const DefaultKey = "Innovation"

// DefaultDomain is the full name of the fallback category.
const DefaultDomain = "Technology & Innovation"

// Defaults returns the built-in catalog content. The returned Data is a
// fresh value each call; the record maps are shared and must be treated
// as read-only.
func Defaults() Data {
	return Data{
		Domains:    defaultDomains(),
		Business:   businessRecords,
		Tech:       techRecords,
		Design:     designRecords,
		Market:     marketRecords,
		Timeline:   timelineNotes,
		DefaultKey: DefaultKey,
	}
}

// defaultDomains lists the recognized domain categories in scan order.
// The fallback category comes last so more specific domains win.
func defaultDomains() []DomainCategory {
	return []DomainCategory{
		{Name: "Healthcare & Wellness", Key: "Healthcare"},
		{Name: "Finance & Fintech", Key: "Finance"},
		{Name: "Education & Learning", Key: "Education"},
		{Name: "Commerce & Retail", Key: "Commerce"},
		{Name: "Productivity & Collaboration", Key: "Productivity"},
		{Name: "Customer Experience", Key: "Customer"},
		{Name: "Developer Tools", Key: "Developer"},
		{Name: "Marketing & Growth", Key: "Marketing"},
		{Name: "Sustainability & Climate", Key: "Sustainability"},
		{Name: "Manufacturing & Industry", Key: "Industry"},
		{Name: DefaultDomain, Key: DefaultKey},
	}
}
