// Copyright Akcero Labs Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akcero/blueprint-engine/internal/catalog"
	"github.com/akcero/blueprint-engine/internal/completion"
	"github.com/akcero/blueprint-engine/internal/extract"
	"github.com/akcero/blueprint-engine/internal/pipeline"
	"github.com/akcero/blueprint-engine/internal/report"
	"github.com/akcero/blueprint-engine/internal/store"
	"github.com/akcero/blueprint-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [idea text...]",
	Short: "Generate a product blueprint from a free-text idea",
	Long: `Generate runs the staged blueprint pipeline over the idea text: feature
extraction, then business and tech concurrently, then design and market
concurrently, then the execution timeline, closed out by an executive summary.

With no idea text a built-in placeholder idea is used. Pass --pitch for an
elevator pitch, --save to persist the run, and --format/--out to control the
rendered output.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("pitch", false, "include an elevator pitch")
	generateCmd.Flags().Bool("save", false, "persist the run in the local store")
	generateCmd.Flags().String("format", "markdown", "output format: markdown, json, or yaml")
	generateCmd.Flags().String("out", "", "write output to a file instead of stdout")
	generateCmd.Flags().String("catalog", "", "YAML file overriding the built-in template catalog")

	rootCmd.AddCommand(generateCmd)
}

// progressObserver renders step transitions on stderr so stdout stays
// clean for the rendered blueprint.
func progressObserver() pipeline.Observer {
	running := color.New(color.FgYellow).SprintFunc()
	done := color.New(color.FgGreen).SprintFunc()
	return func(step, state string) {
		switch state {
		case pipeline.StateRunning:
			fmt.Fprintf(os.Stderr, "  %s %s\n", running("▸"), step)
		case pipeline.StateCompleted:
			fmt.Fprintf(os.Stderr, "  %s %s\n", done("✓"), step)
		}
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ideaText := strings.Join(args, " ")
	formatName, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")
	pitch, _ := cmd.Flags().GetBool("pitch")
	save, _ := cmd.Flags().GetBool("save")

	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg := pipelineConfig(cmd)
	ctx := context.Background()

	client, err := completion.FromConfig(ctx, cfg.Completion)
	if err != nil {
		return fmt.Errorf("configuring completion client: %w", err)
	}

	cat := catalog.Default()
	if catalogPath, _ := cmd.Flags().GetString("catalog"); catalogPath != "" {
		cat, err = catalog.Load(catalogPath)
		if err != nil {
			return err
		}
	}

	runner := pipeline.New(cat, client, progressObserver(), newLogger(cmd))

	bp, err := runner.Run(ctx, ideaText, pipeline.Options{Pitch: pitch})
	if err != nil {
		return err
	}

	// Persistence failures never block delivery of the blueprint.
	if save {
		if err := saveRun(ctx, cfg.Storage, extract.EffectiveIdea(ideaText), bp); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save run: %v\n", err)
		}
	}

	out, err := report.Render(bp, format)
	if err != nil {
		return err
	}
	if outPath != "" {
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
		return nil
	}
	_, err = os.Stdout.Write(out)
	return err
}

func saveRun(ctx context.Context, cfg types.StorageConfig, ideaText string, bp *types.Blueprint) error {
	s, err := store.New(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.SaveRun(ctx, ideaText, bp)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved run %s\n", id)
	return nil
}
