// Package workflow implements the gate status engine: pure rules that compute
// a gate's aggregate status from its checkpoint decisions, the override
// semantics that pin that status, and the advancement check.
package workflow

import (
	"github.com/groblegark/gatekeep/internal/model"
)

// ComputeGateStatus aggregates checkpoint decisions into a gate status.
// Precedence, strictly in this order:
//
//	1. any Reject            -> Reject
//	2. non-empty, all Approve -> Approve
//	3. any ReScope           -> ReScope
//	4. otherwise             -> Pending
//
// Rejection is an absolute veto; clearing a gate needs unanimous approval;
// ReScope outranks mere incompleteness. An empty gate is Pending, not
// trivially approved. Order of the input is irrelevant.
func ComputeGateStatus(decisions []model.Decision) model.Decision {
	if len(decisions) == 0 {
		return model.DecisionPending
	}

	allApprove := true
	anyReScope := false
	for _, d := range decisions {
		switch d {
		case model.DecisionReject:
			return model.DecisionReject
		case model.DecisionReScope:
			anyReScope = true
			allApprove = false
		case model.DecisionApprove:
		default:
			allApprove = false
		}
	}

	if allApprove {
		return model.DecisionApprove
	}
	if anyReScope {
		return model.DecisionReScope
	}
	return model.DecisionPending
}

// CanAdvance reports whether a project may move past a gate: the gate must
// carry an explicit approval AND every required artifact key must have a
// submitted artifact. Neither condition alone suffices.
func CanAdvance(required, present map[string]struct{}, gateApproved bool) bool {
	if !gateApproved {
		return false
	}
	for key := range required {
		if _, ok := present[key]; !ok {
			return false
		}
	}
	return true
}

// GateStatus returns the gate's effective aggregate status: the pinned
// override value while overridden, otherwise the status recomputed over the
// plan gate's full checkpoint list, with undecided checkpoints (no stored
// container yet) counting as Pending. Aggregating over stored containers
// alone would grant approval while a required checkpoint is still
// undecided. A gate absent from the plan falls back to the stored
// containers.
func GateStatus(gs *model.GateState, gate *model.Gate) model.Decision {
	if gs != nil && gs.Overridden {
		return gs.GateStatus
	}
	if gate != nil {
		decisions := make([]model.Decision, 0, len(gate.Checkpoints))
		for _, cp := range gate.Checkpoints {
			decisions = append(decisions, EffectiveDecision(gs, cp.ArtifactKey))
		}
		return ComputeGateStatus(decisions)
	}
	if gs == nil {
		return model.DecisionPending
	}
	decisions := make([]model.Decision, 0, len(gs.Checkpoints))
	for _, cp := range gs.Checkpoints {
		if cp != nil {
			decisions = append(decisions, cp.Decision)
		}
	}
	return ComputeGateStatus(decisions)
}

// EffectiveDecision returns the decision a reader should see for one
// checkpoint: the override value while the gate is overridden, otherwise the
// stored decision (Pending when the container is absent).
func EffectiveDecision(gs *model.GateState, artifactKey string) model.Decision {
	if gs != nil && gs.Overridden {
		return gs.GateStatus
	}
	if gs == nil {
		return model.DecisionPending
	}
	cp, ok := gs.Checkpoints[artifactKey]
	if !ok || cp == nil {
		return model.DecisionPending
	}
	return cp.Decision
}

// PresentArtifactKeys returns the artifact keys that have evidence anywhere
// in the project, for use as CanAdvance's present set.
func PresentArtifactKeys(p *model.Project) map[string]struct{} {
	present := make(map[string]struct{})
	if p == nil {
		return present
	}
	for _, gs := range p.Gates {
		if gs == nil {
			continue
		}
		for key, cp := range gs.Checkpoints {
			if cp != nil && cp.Payload != nil {
				present[key] = struct{}{}
			}
		}
	}
	return present
}

// DecisionWritable reports whether an ordinary reviewer may record a decision
// on a checkpoint in the gate. Decisions are frozen while the gate is
// overridden.
func DecisionWritable(gs *model.GateState) bool {
	return gs == nil || !gs.Overridden
}
