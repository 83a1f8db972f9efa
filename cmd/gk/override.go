package main

import (
	"context"
	"fmt"

	"github.com/groblegark/gatekeep/internal/model"
	"github.com/spf13/cobra"
)

var overrideCmd = &cobra.Command{
	Use:     "override <project-id> <gate-id> <Approve|Reject|ReScope|Pending>",
	Short:   "Pin a gate's status, superseding checkpoint decisions (authority only)",
	GroupID: "gates",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, gateID := args[0], args[1]
		status := model.Decision(args[2])
		reason, _ := cmd.Flags().GetString("reason")

		view, err := gkClient.OverrideGate(context.Background(), projectID, gateID, status, reason, callerActor())
		if err != nil {
			return fmt.Errorf("overriding gate: %w", err)
		}

		if jsonOutput {
			printJSON(view)
		} else {
			printGateView(view)
		}
		return nil
	},
}

var clearOverrideCmd = &cobra.Command{
	Use:     "clear-override <project-id> <gate-id>",
	Short:   "Lift a gate override and recompute its status (authority only)",
	GroupID: "gates",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, gateID := args[0], args[1]
		reason, _ := cmd.Flags().GetString("reason")

		view, err := gkClient.ClearOverride(context.Background(), projectID, gateID, reason, callerActor())
		if err != nil {
			return fmt.Errorf("clearing override: %w", err)
		}

		if jsonOutput {
			printJSON(view)
		} else {
			printGateView(view)
		}
		return nil
	},
}

func init() {
	overrideCmd.Flags().String("reason", "", "why the gate is being overridden")
	clearOverrideCmd.Flags().String("reason", "", "why the override is being lifted")
}
