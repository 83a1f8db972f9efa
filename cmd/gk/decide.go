package main

import (
	"context"
	"fmt"

	"github.com/groblegark/gatekeep/internal/model"
	"github.com/spf13/cobra"
)

var decideCmd = &cobra.Command{
	Use:     "decide <project-id> <gate-id> <artifact-key> <Approve|Reject|ReScope|Pending>",
	Short:   "Record a reviewer decision on a checkpoint",
	GroupID: "gates",
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, gateID, key := args[0], args[1], args[2]
		decision := model.Decision(args[3])

		view, err := gkClient.RecordDecision(context.Background(), projectID, gateID, key, decision, callerActor())
		if err != nil {
			return fmt.Errorf("recording decision: %w", err)
		}

		if jsonOutput {
			printJSON(view)
		} else {
			printGateView(view)
		}
		return nil
	},
}
