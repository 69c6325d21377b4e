// Copyright Akcero Labs Inc., 2026. All rights reserved.

// Package main is the entry point for the blueprint-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/akcero/blueprint-engine/internal/secrets"
	"github.com/akcero/blueprint-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the blueprint-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "blueprint-engine",
	Short: "Turn a product idea into a full execution blueprint",
	Long: `blueprint-engine expands a free-text product idea into a structured
blueprint: idea brief, business model, technical plan, experience design,
market analysis, and execution timeline, closed out by an executive summary.

Generation is deterministic by default; configure a Gemini API key to let a
completion model refine selected narrative fields. Runs can be saved locally
and exported as Markdown, JSON, or YAML.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secrets.DefaultDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./blueprint-engine.yaml or ~/.config/blueprint-engine/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log pipeline progress and completion diagnostics")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for the run database (default: ./data)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("blueprint-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "blueprint-engine"))
		}
	}

	viper.SetEnvPrefix("BLUEPRINT_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the pipeline configuration from config file,
// environment, and loaded secrets. The config-file API key wins over the
// secrets directory.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	apiKey := viper.GetString("completion.api_key")
	if apiKey == "" {
		apiKey = loadedSecrets[secrets.GeminiAPIKey]
	}

	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("storage.data_dir")
	}

	return types.PipelineConfig{
		Completion: types.CompletionConfig{
			Provider:   viper.GetString("completion.provider"),
			Model:      viper.GetString("completion.model"),
			APIKey:     apiKey,
			Timeout:    viper.GetDuration("completion.timeout"),
			MaxRetries: viper.GetInt("completion.max_retries"),
		},
		Storage: types.StorageConfig{
			DataDir: dataDir,
			MaxList: viper.GetInt("storage.max_list"),
		},
	}
}

// newLogger returns a development logger when --verbose is set, a no-op
// logger otherwise.
func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
