// Copyright Akcero Labs Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akcero/blueprint-engine/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List saved blueprint runs",
	Long: `Runs lists persisted blueprint runs newest first, with the run ID,
creation time, and the leading portion of the idea text.`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().Int("limit", 0, "maximum runs to list (0 = use default)")
	runsCmd.Flags().Bool("json", false, "output the listing as JSON")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, err := store.New(pipelineConfig(cmd).Storage)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.ListRuns(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No saved runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %s\n", "ID", "Created", "Idea")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %s\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.IdeaExcerpt)
	}
	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(runs))
	return nil
}
