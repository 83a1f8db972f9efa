package main

import (
	"context"
	"fmt"

	"github.com/groblegark/gatekeep/internal/model"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status <project-id> <ONGOING|COMPLETED>",
	Short:   "Set the lifecycle status of a project",
	GroupID: "projects",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		status := model.ProjectStatus(args[1])

		project, err := gkClient.SetProjectStatus(context.Background(), id, status, callerActor())
		if err != nil {
			return fmt.Errorf("setting status: %w", err)
		}

		if jsonOutput {
			printJSON(project)
		} else {
			fmt.Printf("%s is now %s\n", project.ID, project.Status)
		}
		return nil
	},
}
