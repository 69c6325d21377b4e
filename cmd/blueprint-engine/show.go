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

var showCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Display a saved blueprint run",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().String("format", "markdown", "output format: markdown, json, or yaml")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
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

	fmt.Fprintf(os.Stderr, "Run %s, created %s\nIdea: %s\n\n",
		rec.ID, rec.CreatedAt.Format("2006-01-02 15:04:05 MST"), rec.IdeaText)

	out, err := report.Render(&rec.Blueprint, format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
