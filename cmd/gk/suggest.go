package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:     "suggest <project-id> <gate-id> <artifact-key>",
	Short:   "Ask the advisor for a non-binding review suggestion",
	GroupID: "gates",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, gateID, key := args[0], args[1], args[2]

		suggestion, err := gkClient.Suggest(context.Background(), projectID, gateID, key)
		if err != nil {
			return fmt.Errorf("getting suggestion: %w", err)
		}

		if jsonOutput {
			printJSON(suggestion)
			return nil
		}
		fmt.Println(suggestion.Text)
		fmt.Println()
		fmt.Printf("Suggested decision: %s", suggestion.Decision)
		if suggestion.Fallback {
			fmt.Print(" (offline heuristic)")
		}
		fmt.Println()
		return nil
	},
}
