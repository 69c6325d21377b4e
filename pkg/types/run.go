// Copyright Akcero Labs Inc., 2026. All rights reserved.

package types

import "time"

// RunRecord is a persisted blueprint run.
type RunRecord struct {
	// ID is the run identifier assigned by the store.
	ID string `json:"id" yaml:"id"`

	// IdeaText is the raw idea text the run was generated from.
	IdeaText string `json:"idea_text" yaml:"idea_text"`

	// Blueprint is the full result set, pitch included when one was
	// generated.
	Blueprint Blueprint `json:"blueprint" yaml:"blueprint"`

	// CreatedAt is the UTC creation time.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// RunSummary is a one-line view of a persisted run, used for listings.
type RunSummary struct {
	ID string `json:"id" yaml:"id"`

	// IdeaExcerpt is the leading portion of the idea text.
	IdeaExcerpt string `json:"idea_excerpt" yaml:"idea_excerpt"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
