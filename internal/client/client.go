// Package client provides a transport-agnostic interface for the gatekeep
// service and an HTTP/JSON implementation that talks to the gatekeep REST API.
package client

import (
	"context"

	"github.com/groblegark/gatekeep/internal/advisory"
	"github.com/groblegark/gatekeep/internal/model"
	"github.com/groblegark/gatekeep/internal/workflow"
)

// GatekeepClient is the interface all gk CLI commands use to communicate with
// the gatekeep server. It is implemented by HTTPClient (default) and can be
// backed by any transport.
type GatekeepClient interface {
	// Projects
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*model.Project, error)
	GetProject(ctx context.Context, id string) (*ProjectView, error)
	ListProjects(ctx context.Context) (*ListProjectsResponse, error)
	SetProjectStatus(ctx context.Context, id string, status model.ProjectStatus, actor model.Actor) (*model.Project, error)
	AdvanceProject(ctx context.Context, id string, actor model.Actor) (*ProjectView, error)

	// Gates and checkpoints
	GetGate(ctx context.Context, projectID, gateID string) (*workflow.GateView, error)
	RecordDecision(ctx context.Context, projectID, gateID, artifactKey string, decision model.Decision, actor model.Actor) (*workflow.GateView, error)
	RecordPayload(ctx context.Context, projectID, gateID, artifactKey string, payload model.Payload, actor model.Actor) (*workflow.GateView, error)
	OverrideGate(ctx context.Context, projectID, gateID string, status model.Decision, reason string, actor model.Actor) (*workflow.GateView, error)
	ClearOverride(ctx context.Context, projectID, gateID, reason string, actor model.Actor) (*workflow.GateView, error)
	GetAudit(ctx context.Context, projectID, gateID string) ([]model.AuditEvent, error)
	GetArtifact(ctx context.Context, projectID, artifactKey string) (*ArtifactResponse, error)
	Suggest(ctx context.Context, projectID, gateID, artifactKey string) (*advisory.Suggestion, error)
	ListGates(ctx context.Context) (*model.Plan, error)

	// Health
	Health(ctx context.Context) (string, error)

	// Lifecycle
	Close() error
}

// CreateProjectRequest holds parameters for creating a project.
type CreateProjectRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Owner       string      `json:"owner,omitempty"`
	Actor       model.Actor `json:"actor"`
}

// ProjectView is a project together with the effective view of every gate.
type ProjectView struct {
	Project *model.Project      `json:"project"`
	Gates   []workflow.GateView `json:"gates"`
}

// ListProjectsResponse is the response from ListProjects.
type ListProjectsResponse struct {
	Projects []*model.Project `json:"projects"`
	Total    int              `json:"total"`
}

// ArtifactResponse reports whether evidence exists for an artifact key
// anywhere in the project, and the first payload found.
type ArtifactResponse struct {
	ArtifactKey string         `json:"artifact_key"`
	Present     bool           `json:"present"`
	Payload     *model.Payload `json:"payload"`
}
