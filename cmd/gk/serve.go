package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/groblegark/gatekeep/internal/advisory"
	"github.com/groblegark/gatekeep/internal/config"
	"github.com/groblegark/gatekeep/internal/events"
	"github.com/groblegark/gatekeep/internal/server"
	"github.com/groblegark/gatekeep/internal/store/postgres"
	gatesync "github.com/groblegark/gatekeep/internal/sync"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Start the Gatekeep server",
	GroupID: "system",
	// Override PersistentPreRunE so we don't create an HTTP client.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		// Load configuration.
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// Load the gate plan.
		plan, err := config.LoadPlan(cfg.PlanPath)
		if err != nil {
			return err
		}
		logger.Info("gate plan loaded", "gates", len(plan.Gates))

		// Connect to Postgres.
		store, err := postgres.New(cfg.DatabaseURL, plan)
		if err != nil {
			return err
		}

		// Create event publisher.
		var publisher events.Publisher
		if cfg.NATSURL != "" {
			pub, err := events.NewNATSPublisher(cfg.NATSURL)
			if err != nil {
				store.Close()
				return err
			}
			publisher = pub
			logger.Info("events enabled", "nats_url", cfg.NATSURL)
		} else {
			publisher = &events.NoopPublisher{}
			logger.Info("events disabled (GATEKEEP_NATS_URL not set)")
		}

		// Create the checkpoint advisor. Falls back to offline heuristics
		// when no LLM endpoint is configured.
		var suggester advisory.Suggester
		if cfg.AdvisoryBaseURL != "" {
			llm, err := advisory.NewLLMSuggester(cfg.AdvisoryBaseURL, cfg.AdvisoryModel, cfg.AdvisoryToken)
			if err != nil {
				logger.Error("failed to create LLM advisor, using offline heuristics", "err", err)
				suggester = advisory.Offline{}
			} else {
				suggester = llm
				logger.Info("advisor enabled", "base_url", cfg.AdvisoryBaseURL, "model", cfg.AdvisoryModel)
			}
		} else {
			suggester = advisory.Offline{}
			logger.Info("advisor running offline (GATEKEEP_ADVISORY_BASE_URL not set)")
		}
		policyNotes := advisory.LoadPolicyNotes(cfg.PolicyNotesPath)

		// Create server components.
		govServer := server.NewGovServer(store, publisher, plan, suggester, policyNotes)

		httpServer := &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: govServer.NewHTTPHandler(cfg.AuthToken),
		}

		go func() {
			logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("HTTP server error", "err", err)
			}
		}()

		// Start sync scheduler if any destinations are configured.
		var scheduler *gatesync.Scheduler
		if cfg.SyncInterval > 0 {
			var dests []gatesync.Destination

			if cfg.SyncS3Bucket != "" {
				s3Dest, err := gatesync.NewS3Destination(
					context.Background(),
					cfg.SyncS3Bucket,
					cfg.SyncS3Key,
					cfg.SyncS3Region,
					cfg.SyncS3Endpoint,
				)
				if err != nil {
					logger.Error("failed to create S3 sync destination", "err", err)
				} else {
					dests = append(dests, s3Dest)
					logger.Info("sync S3 destination enabled", "bucket", cfg.SyncS3Bucket, "key", cfg.SyncS3Key)
				}
			}

			if cfg.SyncGitRepo != "" {
				gitDest := gatesync.NewGitDestination(cfg.SyncGitRepo, cfg.SyncGitFile, cfg.SyncGitBranch)
				dests = append(dests, gitDest)
				logger.Info("sync git destination enabled", "repo", cfg.SyncGitRepo, "file", cfg.SyncGitFile)
			}

			if len(dests) > 0 {
				scheduler = gatesync.NewScheduler(store, dests, cfg.SyncInterval, logger)
				scheduler.Start()
				logger.Info("sync scheduler started", "interval", cfg.SyncInterval)
			}
		}

		logger.Info("gatekeep server started", "http_addr", cfg.HTTPAddr)

		// Wait for SIGINT or SIGTERM.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)

		// Graceful shutdown.
		if scheduler != nil {
			scheduler.Stop()
			logger.Info("sync scheduler stopped")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "err", err)
		}
		logger.Info("HTTP server stopped")

		if err := publisher.Close(); err != nil {
			logger.Error("error closing publisher", "err", err)
		}
		if err := store.Close(); err != nil {
			logger.Error("error closing store", "err", err)
		}

		logger.Info("shutdown complete")
		return nil
	},
}
