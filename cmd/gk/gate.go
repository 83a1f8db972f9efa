package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var gateCmd = &cobra.Command{
	Use:     "gate <project-id> <gate-id>",
	Short:   "Show one gate's checkpoints and effective status",
	GroupID: "gates",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, gateID := args[0], args[1]

		view, err := gkClient.GetGate(context.Background(), projectID, gateID)
		if err != nil {
			return fmt.Errorf("getting gate %s: %w", gateID, err)
		}

		if jsonOutput {
			printJSON(view)
		} else {
			printGateView(view)
		}
		return nil
	},
}
