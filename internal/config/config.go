package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	DatabaseURL string // GATEKEEP_DATABASE_URL (required)
	HTTPAddr    string // GATEKEEP_HTTP_ADDR (default ":8080")
	NATSURL     string // GATEKEEP_NATS_URL (optional, empty = no events)
	AuthToken   string // GATEKEEP_AUTH_TOKEN (optional, empty = auth disabled)

	PlanPath string // GATEKEEP_PLAN_PATH (optional, empty = built-in gate plan)

	// Advisory settings
	AdvisoryBaseURL string // GATEKEEP_ADVISORY_BASE_URL (enables the LLM advisor when set)
	AdvisoryModel   string // GATEKEEP_ADVISORY_MODEL (default "gpt-4o-mini")
	AdvisoryToken   string // GATEKEEP_ADVISORY_TOKEN (API key for the advisory endpoint)
	PolicyNotesPath string // GATEKEEP_POLICY_NOTES (optional governance notes fed to the advisor)

	// Sync settings
	SyncInterval   time.Duration // GATEKEEP_SYNC_INTERVAL (default 3m; 0 = disabled)
	SyncS3Bucket   string        // GATEKEEP_SYNC_S3_BUCKET (enables S3 when set)
	SyncS3Endpoint string        // GATEKEEP_SYNC_S3_ENDPOINT (custom endpoint for MinIO)
	SyncS3Region   string        // GATEKEEP_SYNC_S3_REGION (default "us-east-1")
	SyncS3Key      string        // GATEKEEP_SYNC_S3_KEY (default "gatekeep/backup.jsonl")
	SyncGitRepo    string        // GATEKEEP_SYNC_GIT_REPO (enables git when set; path to clone)
	SyncGitFile    string        // GATEKEEP_SYNC_GIT_FILE (default "projects.jsonl")
	SyncGitBranch  string        // GATEKEEP_SYNC_GIT_BRANCH (default "main")
}

func Load() (*Config, error) {
	c := &Config{
		DatabaseURL:     os.Getenv("GATEKEEP_DATABASE_URL"),
		HTTPAddr:        envOrDefault("GATEKEEP_HTTP_ADDR", ":8080"),
		NATSURL:         os.Getenv("GATEKEEP_NATS_URL"),
		AuthToken:       os.Getenv("GATEKEEP_AUTH_TOKEN"),
		PlanPath:        os.Getenv("GATEKEEP_PLAN_PATH"),
		AdvisoryBaseURL: os.Getenv("GATEKEEP_ADVISORY_BASE_URL"),
		AdvisoryModel:   envOrDefault("GATEKEEP_ADVISORY_MODEL", "gpt-4o-mini"),
		AdvisoryToken:   os.Getenv("GATEKEEP_ADVISORY_TOKEN"),
		PolicyNotesPath: os.Getenv("GATEKEEP_POLICY_NOTES"),
		SyncS3Bucket:    os.Getenv("GATEKEEP_SYNC_S3_BUCKET"),
		SyncS3Endpoint:  os.Getenv("GATEKEEP_SYNC_S3_ENDPOINT"),
		SyncS3Region:    envOrDefault("GATEKEEP_SYNC_S3_REGION", "us-east-1"),
		SyncS3Key:       envOrDefault("GATEKEEP_SYNC_S3_KEY", "gatekeep/backup.jsonl"),
		SyncGitRepo:     os.Getenv("GATEKEEP_SYNC_GIT_REPO"),
		SyncGitFile:     envOrDefault("GATEKEEP_SYNC_GIT_FILE", "projects.jsonl"),
		SyncGitBranch:   envOrDefault("GATEKEEP_SYNC_GIT_BRANCH", "main"),
	}
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("GATEKEEP_DATABASE_URL is required")
	}

	intervalStr := envOrDefault("GATEKEEP_SYNC_INTERVAL", "3m")
	if intervalStr != "" {
		d, err := time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("GATEKEEP_SYNC_INTERVAL: %w", err)
		}
		c.SyncInterval = d
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
