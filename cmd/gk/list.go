package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all projects",
	GroupID: "projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := gkClient.ListProjects(context.Background())
		if err != nil {
			return fmt.Errorf("listing projects: %w", err)
		}

		if jsonOutput {
			printJSON(resp.Projects)
		} else {
			printProjectListTable(resp.Projects, resp.Total)
		}
		return nil
	},
}
