// Copyright Akcero Labs Inc., 2026. All rights reserved.

// Package catalog holds the per-domain template records the facet
// synthesizers select from. A Catalog is built once from immutable Data
// and is safe to share across concurrent synthesizer calls; callers must
// copy list fields before modifying them.
package catalog

import (
	"fmt"
	"strings"
)

// DomainCategory pairs a full domain name with its normalized catalog key.
// The order of the default slice is the order the extractor scans in.
type DomainCategory struct {
	Name string `json:"name" yaml:"name"`
	Key  string `json:"key" yaml:"key"`
}

// BusinessRecord is the business-facet template for one category.
type BusinessRecord struct {
	Model      string   `json:"model" yaml:"model"`
	Pricing    string   `json:"pricing" yaml:"pricing"`
	Revenue    []string `json:"revenue" yaml:"revenue"`
	GoToMarket string   `json:"gtm" yaml:"gtm"`
	Partners   []string `json:"partners" yaml:"partners"`
	KeyMetrics []string `json:"key_metrics" yaml:"key_metrics"`
	Enablement []string `json:"enablement" yaml:"enablement"`
	Expansion  string   `json:"expansion" yaml:"expansion"`
}

// TechRecord is the technical-facet template for one category.
type TechRecord struct {
	Architecture string   `json:"architecture" yaml:"architecture"`
	Stack        []string `json:"stack" yaml:"stack"`
	AI           []string `json:"ai" yaml:"ai"`
	Services     []string `json:"services" yaml:"services"`
	DataStrategy string   `json:"data" yaml:"data"`
	DevOps       []string `json:"devops" yaml:"devops"`
	Integrations []string `json:"integrations" yaml:"integrations"`
}

// DesignRecord is the design-facet template for one category.
type DesignRecord struct {
	Principles   []string `json:"principles" yaml:"principles"`
	KeyScreens   []string `json:"key_screens" yaml:"key_screens"`
	Interactions []string `json:"interactions" yaml:"interactions"`
	Voice        string   `json:"voice" yaml:"voice"`
	Visual       string   `json:"visual" yaml:"visual"`
	Tone         string   `json:"tone" yaml:"tone"`
}

// MarketRecord is the market-facet template for one category.
type MarketRecord struct {
	Segment         string   `json:"segment" yaml:"segment"`
	Competitors     []string `json:"competitors" yaml:"competitors"`
	Differentiators []string `json:"differentiators" yaml:"differentiators"`
	Personas        []string `json:"personas" yaml:"personas"`
	Channels        []string `json:"channels" yaml:"channels"`
	Challenges      []string `json:"challenges" yaml:"challenges"`
	Positioning     string   `json:"positioning" yaml:"positioning"`
	Launch          string   `json:"launch" yaml:"launch"`
}

// TimelineNotes carries the category-specific milestone and launch
// language folded into the execution timeline.
type TimelineNotes struct {
	Milestone string `json:"milestone" yaml:"milestone"`
	Launch    string `json:"launch" yaml:"launch"`
}

// Data is the full catalog content. It is injected at construction so
// tests can supply reduced or custom catalogs.
type Data struct {
	Domains  []DomainCategory         `json:"domains" yaml:"domains"`
	Business map[string]BusinessRecord `json:"business" yaml:"business"`
	Tech     map[string]TechRecord     `json:"tech" yaml:"tech"`
	Design   map[string]DesignRecord   `json:"design" yaml:"design"`
	Market   map[string]MarketRecord   `json:"market" yaml:"market"`
	Timeline map[string]TimelineNotes  `json:"timeline" yaml:"timeline"`

	// DefaultKey is the category key used when a lookup misses.
	DefaultKey string `json:"default_key" yaml:"default_key"`
}

// Catalog provides read-only, category-keyed access to template records.
type Catalog struct {
	data Data
	keys map[string]string // full domain name → key
}

// New builds a Catalog from data. The default key must be present in all
// five facet maps so fallback lookups always succeed, and every business
// record must list at least one revenue stream.
func New(data Data) (*Catalog, error) {
	if data.DefaultKey == "" {
		return nil, fmt.Errorf("catalog: default key is empty")
	}
	if _, ok := data.Business[data.DefaultKey]; !ok {
		return nil, fmt.Errorf("catalog: default key %q missing from business records", data.DefaultKey)
	}
	if _, ok := data.Tech[data.DefaultKey]; !ok {
		return nil, fmt.Errorf("catalog: default key %q missing from tech records", data.DefaultKey)
	}
	if _, ok := data.Design[data.DefaultKey]; !ok {
		return nil, fmt.Errorf("catalog: default key %q missing from design records", data.DefaultKey)
	}
	if _, ok := data.Market[data.DefaultKey]; !ok {
		return nil, fmt.Errorf("catalog: default key %q missing from market records", data.DefaultKey)
	}
	if _, ok := data.Timeline[data.DefaultKey]; !ok {
		return nil, fmt.Errorf("catalog: default key %q missing from timeline notes", data.DefaultKey)
	}
	// Monetisation notes index the first revenue stream, so an empty
	// list in a loaded catalog must fail here rather than at synthesis.
	for key, rec := range data.Business {
		if len(rec.Revenue) == 0 {
			return nil, fmt.Errorf("catalog: business record %q has no revenue streams", key)
		}
	}

	keys := make(map[string]string, len(data.Domains))
	for _, d := range data.Domains {
		keys[d.Name] = d.Key
	}
	return &Catalog{data: data, keys: keys}, nil
}

// Default returns a Catalog built from the built-in template data.
func Default() *Catalog {
	c, err := New(Defaults())
	if err != nil {
		// The built-in data is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}

// Domains returns the ordered domain categories.
func (c *Catalog) Domains() []DomainCategory {
	out := make([]DomainCategory, len(c.data.Domains))
	copy(out, c.data.Domains)
	return out
}

// DefaultKey returns the fallback category key.
func (c *Catalog) DefaultKey() string {
	return c.data.DefaultKey
}

// ResolveCategory maps a full domain name to its catalog key. Unknown
// domains fall back to the substring before the first "&", trimmed; if
// that is empty the default key is returned. The resulting key may still
// miss the record maps, in which case the facet lookups below fall back
// to the default record.
func (c *Catalog) ResolveCategory(domain string) string {
	if key, ok := c.keys[domain]; ok {
		return key
	}
	head, _, _ := strings.Cut(domain, "&")
	if key := strings.TrimSpace(head); key != "" {
		return key
	}
	return c.data.DefaultKey
}

// Business returns the business record for category, falling back to the
// default category when absent.
func (c *Catalog) Business(category string) BusinessRecord {
	if rec, ok := c.data.Business[category]; ok {
		return rec
	}
	return c.data.Business[c.data.DefaultKey]
}

// Tech returns the technical record for category, falling back to the
// default category when absent.
func (c *Catalog) Tech(category string) TechRecord {
	if rec, ok := c.data.Tech[category]; ok {
		return rec
	}
	return c.data.Tech[c.data.DefaultKey]
}

// Design returns the design record for category, falling back to the
// default category when absent.
func (c *Catalog) Design(category string) DesignRecord {
	if rec, ok := c.data.Design[category]; ok {
		return rec
	}
	return c.data.Design[c.data.DefaultKey]
}

// Market returns the market record for category, falling back to the
// default category when absent.
func (c *Catalog) Market(category string) MarketRecord {
	if rec, ok := c.data.Market[category]; ok {
		return rec
	}
	return c.data.Market[c.data.DefaultKey]
}

// Timeline returns the timeline notes for category, falling back to the
// default category when absent.
func (c *Catalog) Timeline(category string) TimelineNotes {
	if rec, ok := c.data.Timeline[category]; ok {
		return rec
	}
	return c.data.Timeline[c.data.DefaultKey]
}
