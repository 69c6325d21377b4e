// Copyright Akcero Labs Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akcero/blueprint-engine/internal/report"
	"github.com/akcero/blueprint-engine/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export [run-id]",
	Short: "Export a saved blueprint run to a file",
	Long: `Export renders a persisted run as Markdown, JSON, or YAML and writes
it to a file. The default filename is the run ID with the format's
extension.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "markdown", "export format: markdown, json, or yaml")
	exportCmd.Flags().String("out", "", "output file (default: <run-id> plus the format extension)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	s, err := store.New(pipelineConfig(cmd).Storage)
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.GetRun(context.Background(), args[0])
	if err != nil {
		return err
	}

	out, err := report.Render(&rec.Blueprint, format)
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = rec.ID + format.Extension()
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("Exported run %s to %s\n", rec.ID, outPath)
	return nil
}
