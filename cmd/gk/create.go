package main

import (
	"context"
	"fmt"

	"github.com/groblegark/gatekeep/internal/client"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:     "create <name>",
	Short:   "Register a new project at the first gate",
	GroupID: "projects",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		description, _ := cmd.Flags().GetString("description")
		owner, _ := cmd.Flags().GetString("owner")

		req := &client.CreateProjectRequest{
			Name:        name,
			Description: description,
			Owner:       owner,
			Actor:       callerActor(),
		}

		project, err := gkClient.CreateProject(context.Background(), req)
		if err != nil {
			return fmt.Errorf("creating project: %w", err)
		}

		if jsonOutput {
			printJSON(project)
		} else {
			printProjectTable(project)
		}
		return nil
	},
}

func init() {
	createCmd.Flags().StringP("description", "d", "", "project description")
	createCmd.Flags().String("owner", "", "project owner")
}
