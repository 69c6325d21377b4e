// Copyright Akcero Labs Inc., 2026. All rights reserved.

package types

import "time"

// CompletionConfig holds settings for the text-completion capability.
type CompletionConfig struct {
	// Provider selects the backend: "gemini" or "fallback". An empty
	// value means gemini when an API key is available, fallback
	// otherwise.
	Provider string `json:"provider" yaml:"provider"`

	// Model is the completion model identifier (e.g. "gemini-2.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the completion API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout bounds each completion call. Exceeding it is treated as
	// "completion unavailable" and the templated default is kept
	// (default 20s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of retry attempts for failed completion
	// calls (default 2).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// StorageConfig holds settings for the run store.
type StorageConfig struct {
	// DataDir is the directory holding the run database (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxList is the default maximum number of runs returned by
	// listings (default 50).
	MaxList int `json:"max_list" yaml:"max_list"`
}

// PipelineConfig groups the configuration of all pipeline collaborators.
type PipelineConfig struct {
	Completion CompletionConfig `json:"completion" yaml:"completion"`
	Storage    StorageConfig    `json:"storage" yaml:"storage"`
}
