package events

import (
	"context"

	"github.com/groblegark/gatekeep/internal/model"
)

// Event topic constants
const (
	TopicProjectCreated  = "gatekeep.project.created"
	TopicProjectStatus   = "gatekeep.project.status"
	TopicProjectAdvanced = "gatekeep.project.advanced"

	// Checkpoint events
	TopicCheckpointDecided = "gatekeep.checkpoint.decided"
	TopicCheckpointPayload = "gatekeep.checkpoint.payload"

	// Gate override lifecycle
	TopicGateOverridden      = "gatekeep.gate.overridden"
	TopicGateOverrideCleared = "gatekeep.gate.override_cleared"
)

// Event types

type ProjectCreated struct {
	Project *model.Project `json:"project"`
}

type ProjectStatusChanged struct {
	ProjectID string              `json:"project_id"`
	Status    model.ProjectStatus `json:"status"`
	ChangedBy string              `json:"changed_by,omitempty"`
}

type ProjectAdvanced struct {
	ProjectID string `json:"project_id"`
	GateIndex int    `json:"gate_index"`
	GateID    string `json:"gate_id,omitempty"`
	MovedBy   string `json:"moved_by,omitempty"`
}

type CheckpointDecided struct {
	ProjectID   string         `json:"project_id"`
	GateID      string         `json:"gate_id"`
	ArtifactKey string         `json:"artifact_key"`
	Decision    model.Decision `json:"decision"`
	DecidedBy   string         `json:"decided_by,omitempty"`
	GateStatus  model.Decision `json:"gate_status"`
}

type CheckpointPayloadSubmitted struct {
	ProjectID   string         `json:"project_id"`
	GateID      string         `json:"gate_id"`
	ArtifactKey string         `json:"artifact_key"`
	Payload     *model.Payload `json:"payload"`
	SubmittedBy string         `json:"submitted_by,omitempty"`
}

type GateOverridden struct {
	ProjectID string         `json:"project_id"`
	GateID    string         `json:"gate_id"`
	Status    model.Decision `json:"status"`
	By        string         `json:"by"`
	Reason    string         `json:"reason,omitempty"`
}

type GateOverrideCleared struct {
	ProjectID string         `json:"project_id"`
	GateID    string         `json:"gate_id"`
	Status    model.Decision `json:"status"` // recomputed status after the clear
	By        string         `json:"by"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
