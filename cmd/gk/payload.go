package main

import (
	"context"
	"fmt"

	"github.com/groblegark/gatekeep/internal/model"
	"github.com/spf13/cobra"
)

var payloadCmd = &cobra.Command{
	Use:     "payload <project-id> <gate-id> <artifact-key>",
	Short:   "Attach evidence to a checkpoint",
	GroupID: "gates",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, gateID, key := args[0], args[1], args[2]

		description, _ := cmd.Flags().GetString("description")
		link, _ := cmd.Flags().GetString("link")
		notes, _ := cmd.Flags().GetString("notes")

		payload := model.Payload{
			Description:  description,
			EvidenceLink: link,
			Notes:        notes,
		}

		view, err := gkClient.RecordPayload(context.Background(), projectID, gateID, key, payload, callerActor())
		if err != nil {
			return fmt.Errorf("recording payload: %w", err)
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
	payloadCmd.Flags().StringP("description", "d", "", "what the evidence is")
	payloadCmd.Flags().String("link", "", "link to the artifact")
	payloadCmd.Flags().String("notes", "", "free-form notes")
}
