package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:     "audit <project-id> <gate-id>",
	Short:   "Show the audit trail for a gate",
	GroupID: "gates",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, gateID := args[0], args[1]

		events, err := gkClient.GetAudit(context.Background(), projectID, gateID)
		if err != nil {
			return fmt.Errorf("getting audit trail: %w", err)
		}

		if jsonOutput {
			printJSON(events)
			return nil
		}
		if len(events) == 0 {
			fmt.Println("No audit events.")
			return nil
		}
		printAuditTable(events)
		return nil
	},
}
