package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <project-id>",
	Short:   "Show a project and the state of every gate",
	GroupID: "projects",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		view, err := gkClient.GetProject(context.Background(), id)
		if err != nil {
			return fmt.Errorf("getting project %s: %w", id, err)
		}

		if jsonOutput {
			printJSON(view)
		} else {
			printProjectView(view.Project, view.Gates)
		}
		return nil
	},
}
