package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var gatesCmd = &cobra.Command{
	Use:     "gates",
	Short:   "Show the gate plan the server is running",
	GroupID: "gates",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := gkClient.ListGates(context.Background())
		if err != nil {
			return fmt.Errorf("listing gates: %w", err)
		}

		if jsonOutput {
			printJSON(plan)
		} else {
			printPlanTable(plan)
		}
		return nil
	},
}
