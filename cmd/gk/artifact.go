package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var artifactCmd = &cobra.Command{
	Use:     "artifact <project-id> <artifact-key>",
	Short:   "Show the evidence recorded for an artifact key",
	GroupID: "gates",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, key := args[0], args[1]

		resp, err := gkClient.GetArtifact(context.Background(), projectID, key)
		if err != nil {
			return fmt.Errorf("getting artifact: %w", err)
		}

		if jsonOutput {
			printJSON(resp)
			return nil
		}
		if !resp.Present {
			fmt.Printf("No evidence recorded for %s.\n", key)
			return nil
		}
		fmt.Printf("Artifact:    %s\n", resp.ArtifactKey)
		if resp.Payload.Description != "" {
			fmt.Printf("Description: %s\n", resp.Payload.Description)
		}
		if resp.Payload.EvidenceLink != "" {
			fmt.Printf("Link:        %s\n", resp.Payload.EvidenceLink)
		}
		if resp.Payload.Notes != "" {
			fmt.Printf("Notes:       %s\n", resp.Payload.Notes)
		}
		return nil
	},
}
