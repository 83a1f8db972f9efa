package main

import (
	"os"
	"os/exec"
	"strings"

	"github.com/groblegark/gatekeep/internal/client"
	"github.com/groblegark/gatekeep/internal/model"
	"github.com/spf13/cobra"
)

var (
	httpURL    string
	authToken  string
	jsonOutput bool
	actorID    string
	actorRole  string

	gkClient client.GatekeepClient
)

func defaultActor() string {
	if s := os.Getenv("GATEKEEP_ACTOR"); s != "" {
		return s
	}
	out, err := exec.Command("git", "config", "user.name").Output()
	if err == nil {
		name := strings.TrimSpace(string(out))
		if name != "" {
			return name
		}
	}
	return "unknown"
}

func defaultRole() string {
	return os.Getenv("GATEKEEP_ROLE")
}

func defaultHTTPURL() string {
	if s := os.Getenv("GATEKEEP_HTTP_URL"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

func defaultToken() string {
	return os.Getenv("GATEKEEP_AUTH_TOKEN")
}

// callerActor builds the actor attached to every mutation from the
// --actor/--role flags.
func callerActor() model.Actor {
	return model.Actor{ID: actorID, Role: actorRole}
}

var rootCmd = &cobra.Command{
	Use:   "gk <command>",
	Short: "CLI client for the Gatekeep governance service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		gkClient = client.NewHTTPClient(httpURL, authToken)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if gkClient != nil {
			gkClient.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpURL, "http-url", defaultHTTPURL(), "HTTP server URL")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", defaultToken(), "bearer token for the server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&actorID, "actor", defaultActor(), "actor name recorded on mutations")
	rootCmd.PersistentFlags().StringVar(&actorRole, "role", defaultRole(), "governance role of the actor")

	rootCmd.AddGroup(
		&cobra.Group{ID: "projects", Title: "Projects:"},
		&cobra.Group{ID: "gates", Title: "Gates:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	cobra.EnableCommandSorting = false
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	// Projects
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(watchCmd)

	// Gates
	rootCmd.AddCommand(gateCmd)
	rootCmd.AddCommand(decideCmd)
	rootCmd.AddCommand(payloadCmd)
	rootCmd.AddCommand(overrideCmd)
	rootCmd.AddCommand(clearOverrideCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(artifactCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(gatesCmd)

	// System
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(healthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
