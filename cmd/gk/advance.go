package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var advanceCmd = &cobra.Command{
	Use:     "advance <project-id>",
	Short:   "Move a project past its current gate (authority only)",
	GroupID: "projects",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		view, err := gkClient.AdvanceProject(context.Background(), id, callerActor())
		if err != nil {
			return fmt.Errorf("advancing project: %w", err)
		}

		if jsonOutput {
			printJSON(view)
		} else {
			p := view.Project
			fmt.Printf("%s advanced to gate index %d\n", p.ID, p.CurrentGateIndex)
			printProjectView(p, view.Gates)
		}
		return nil
	},
}
