package store

import (
	"context"

	"github.com/groblegark/gatekeep/internal/model"
)

// Store defines the persistence interface for governance projects.
//
// Every mutation is atomic with respect to other writers of the same project:
// implementations serialize read-modify-write operations per project (the
// Postgres store locks the project row for the duration of each call). No
// operation performs gating policy; callers run the workflow engine's checks
// before advancing a project.
type Store interface {
	// Project lifecycle
	CreateProject(ctx context.Context, p *model.Project) error
	GetProject(ctx context.Context, id string) (*model.Project, error)
	ListProjects(ctx context.Context) ([]*model.Project, error)
	UpdateProjectStatus(ctx context.Context, id string, status model.ProjectStatus, actor model.Actor) (*model.Project, error)

	// Checkpoint writes
	RecordCheckpointDecision(ctx context.Context, projectID, gateID, artifactKey string, decision model.Decision, actor model.Actor) error
	RecordCheckpointPayload(ctx context.Context, projectID, gateID, artifactKey string, payload model.Payload, actor model.Actor) error

	// Gate override protocol
	RecordGateOverride(ctx context.Context, projectID, gateID string, status model.Decision, actor model.Actor, reason string) error
	ClearGateOverride(ctx context.Context, projectID, gateID string, actor model.Actor, reason string) error

	// Reads
	GetArtifactPayload(ctx context.Context, projectID, artifactKey string) (*model.Payload, error)
	GetAuditTrail(ctx context.Context, projectID, gateID string) ([]model.AuditEvent, error)

	// AdvanceProjectGate moves the current-gate pointer forward one step,
	// clamped to maxIndex; past the end it is a no-op. It performs no
	// gating checks itself.
	AdvanceProjectGate(ctx context.Context, projectID string, maxIndex int) (*model.Project, error)

	// Lifecycle
	Close() error
}
