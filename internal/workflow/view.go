package workflow

import (
	"time"

	"github.com/groblegark/gatekeep/internal/model"
)

// CheckpointView is the reader-facing state of one checkpoint: the effective
// decision (override-aware) alongside the stored record.
type CheckpointView struct {
	Checkpoint model.Checkpoint `json:"checkpoint"`
	Decision   model.Decision   `json:"decision"`
	DecidedBy  string           `json:"decided_by,omitempty"`
	DecidedAt  *time.Time       `json:"decided_at,omitempty"`
	Payload    *model.Payload   `json:"payload,omitempty"`
	HasPayload bool             `json:"has_payload"`
}

// GateView is the reader-facing state of one gate for one project.
type GateView struct {
	GateID         string           `json:"gate_id"`
	GateName       string           `json:"gate_name"`
	Status         model.Decision   `json:"status"`
	Overridden     bool             `json:"overridden"`
	OverrideBy     string           `json:"override_by,omitempty"`
	OverrideReason string           `json:"override_reason,omitempty"`
	Checkpoints    []CheckpointView `json:"checkpoints"`
	CanAdvance     bool             `json:"can_advance"`
}

// BuildGateView assembles the effective view of one gate: checkpoints in plan
// order, decisions replaced by the override value while overridden, payloads
// resolved across gates, and the advancement check evaluated.
func BuildGateView(p *model.Project, gate *model.Gate) GateView {
	var gs *model.GateState
	if p != nil && p.Gates != nil {
		gs = p.Gates[gate.ID]
	}

	present := PresentArtifactKeys(p)

	view := GateView{
		GateID:   gate.ID,
		GateName: gate.Name,
		Status:   GateStatus(gs, gate),
	}
	if gs != nil && gs.Overridden {
		view.Overridden = true
		view.OverrideBy = gs.OverrideBy
		view.OverrideReason = gs.OverrideReason
	}

	for _, cp := range gate.Checkpoints {
		cv := CheckpointView{
			Checkpoint: cp,
			Decision:   EffectiveDecision(gs, cp.ArtifactKey),
		}
		if gs != nil {
			if state, ok := gs.Checkpoints[cp.ArtifactKey]; ok && state != nil {
				cv.DecidedBy = state.DecidedBy
				cv.DecidedAt = state.DecidedAt
			}
		}
		// Evidence may live under the same key in another gate.
		if payload := findPayload(p, cp.ArtifactKey); payload != nil {
			cv.Payload = payload
			cv.HasPayload = true
		}
		view.Checkpoints = append(view.Checkpoints, cv)
	}

	view.CanAdvance = CanAdvance(gate.RequiredArtifactKeys(), present, view.Status == model.DecisionApprove)
	return view
}

// findPayload returns the first payload recorded for the key in any gate of
// the project, or nil.
func findPayload(p *model.Project, artifactKey string) *model.Payload {
	if p == nil {
		return nil
	}
	for _, gs := range p.Gates {
		if gs == nil {
			continue
		}
		if cp, ok := gs.Checkpoints[artifactKey]; ok && cp != nil && cp.Payload != nil {
			return cp.Payload
		}
	}
	return nil
}
