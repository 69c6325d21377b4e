// Copyright Akcero Labs Inc., 2026. All rights reserved.

package catalog

import (
	"testing"
)

func TestResolveCategory(t *testing.T) {
	c := Default()

	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{"known domain", "Healthcare & Wellness", "Healthcare"},
		{"fallback domain", "Technology & Innovation", "Innovation"},
		{"unknown with ampersand", "Robotics & Automation", "Robotics"},
		{"unknown without ampersand", "Gaming", "Gaming"},
		{"empty", "", "Innovation"},
		{"only ampersand", "&", "Innovation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ResolveCategory(tt.domain); got != tt.want {
				t.Errorf("ResolveCategory(%q) = %q, want %q", tt.domain, got, tt.want)
			}
		})
	}
}

func TestDefaultsCoverAllDomains(t *testing.T) {
	data := Defaults()
	for _, d := range data.Domains {
		if _, ok := data.Business[d.Key]; !ok {
			t.Errorf("business record missing for %q", d.Key)
		}
		if _, ok := data.Tech[d.Key]; !ok {
			t.Errorf("tech record missing for %q", d.Key)
		}
		if _, ok := data.Design[d.Key]; !ok {
			t.Errorf("design record missing for %q", d.Key)
		}
		if _, ok := data.Market[d.Key]; !ok {
			t.Errorf("market record missing for %q", d.Key)
		}
		if _, ok := data.Timeline[d.Key]; !ok {
			t.Errorf("timeline notes missing for %q", d.Key)
		}
	}
}

func TestFacetLookupFallsBack(t *testing.T) {
	c := Default()

	def := c.Business(DefaultKey)
	got := c.Business("NoSuchCategory")
	if got.Model != def.Model {
		t.Errorf("Business fallback: got model %q, want %q", got.Model, def.Model)
	}
	if c.Tech("NoSuchCategory").Architecture != c.Tech(DefaultKey).Architecture {
		t.Error("Tech lookup did not fall back to default record")
	}
	if c.Timeline("NoSuchCategory").Milestone != c.Timeline(DefaultKey).Milestone {
		t.Error("Timeline lookup did not fall back to default record")
	}
}

func TestNewRejectsMissingDefault(t *testing.T) {
	data := Defaults()
	data.DefaultKey = "Nonexistent"
	if _, err := New(data); err == nil {
		t.Fatal("expected error for default key absent from record maps")
	}
}

func TestNewRejectsEmptyRevenue(t *testing.T) {
	data := Defaults()
	// Defaults shares the package-level maps; copy before mutating.
	business := make(map[string]BusinessRecord, len(data.Business))
	for k, v := range data.Business {
		business[k] = v
	}
	rec := business["Finance"]
	rec.Revenue = nil
	business["Finance"] = rec
	data.Business = business

	if _, err := New(data); err == nil {
		t.Fatal("expected error for business record without revenue streams")
	}
}

func TestDomainOrderStable(t *testing.T) {
	c := Default()
	domains := c.Domains()
	if len(domains) != 11 {
		t.Fatalf("expected 11 domain categories, got %d", len(domains))
	}
	if domains[0].Name != "Healthcare & Wellness" {
		t.Errorf("first domain = %q, want Healthcare & Wellness", domains[0].Name)
	}
	if domains[len(domains)-1].Key != DefaultKey {
		t.Errorf("last domain key = %q, want %q", domains[len(domains)-1].Key, DefaultKey)
	}
}
