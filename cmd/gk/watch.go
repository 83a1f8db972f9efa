package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/groblegark/gatekeep/internal/events"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch <project-id>",
	Short:   "Watch a project for gate and checkpoint changes",
	GroupID: "projects",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		interval, _ := cmd.Flags().GetDuration("interval")
		once, _ := cmd.Flags().GetBool("once")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var lastSeen time.Time

		// Initial query.
		if err := queryAndPrint(ctx, id, &lastSeen); err != nil {
			return err
		}
		if once {
			return nil
		}

		// Choose event-driven or polling mode.
		natsURL := os.Getenv("GATEKEEP_NATS_URL")
		if natsURL != "" {
			return watchNATS(ctx, natsURL, id, &lastSeen)
		}
		return watchPoll(ctx, interval, id, &lastSeen)
	},
}

// watchNATS subscribes to NATS events and re-queries on changes with debounce.
func watchNATS(ctx context.Context, natsURL, id string, lastSeen *time.Time) error {
	// reconnectCh receives a signal when the NATS client reconnects after
	// a disconnect, so we can immediately re-query for missed events.
	reconnectCh := make(chan struct{}, 1)

	sub, err := events.NewNATSSubscriber(natsURL,
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("nats: disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats: reconnected")
			select {
			case reconnectCh <- struct{}{}:
			default:
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("connecting to NATS: %w", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe("gatekeep.>")
	if err != nil {
		return fmt.Errorf("subscribing to events: %w", err)
	}
	defer cancel()

	debounce := time.NewTimer(0)
	debounce.Stop()
	// Drain the timer channel in case it fired between NewTimer and Stop.
	select {
	case <-debounce.C:
	default:
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			debounce.Reset(200 * time.Millisecond)
		case <-reconnectCh:
			debounce.Reset(0) // immediate re-query
		case <-debounce.C:
			if err := queryAndPrint(ctx, id, lastSeen); err != nil {
				return err
			}
		}
	}
}

// watchPoll polls for changes at the given interval.
func watchPoll(ctx context.Context, interval time.Duration, id string, lastSeen *time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
		if err := queryAndPrint(ctx, id, lastSeen); err != nil {
			return err
		}
	}
}

// queryAndPrint fetches the project and prints it when updated_at moved
// past the last seen timestamp.
func queryAndPrint(ctx context.Context, id string, lastSeen *time.Time) error {
	view, err := gkClient.GetProject(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !view.Project.UpdatedAt.After(*lastSeen) {
		return nil
	}
	*lastSeen = view.Project.UpdatedAt

	if jsonOutput {
		printJSON(view)
	} else {
		fmt.Printf("--- %s\n", view.Project.UpdatedAt.Format("2006-01-02 15:04:05"))
		printProjectView(view.Project, view.Gates)
		fmt.Println()
	}
	return nil
}

func init() {
	watchCmd.Flags().Duration("interval", 5*time.Second, "polling interval")
	watchCmd.Flags().Bool("once", false, "exit after first query")
}
