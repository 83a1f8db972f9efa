package server

import (
	"context"

	"github.com/groblegark/gatekeep/internal/advisory"
	"github.com/groblegark/gatekeep/internal/events"
	"github.com/groblegark/gatekeep/internal/model"
	"github.com/groblegark/gatekeep/internal/workflow"
)

// resolveCheckpoint looks up the gate and checkpoint definitions in the plan.
func (s *GovServer) resolveCheckpoint(gateID, artifactKey string) (*model.Gate, *model.Checkpoint, error) {
	gate := s.plan.GateByID(gateID)
	if gate == nil {
		return nil, nil, inputError("unknown gate " + gateID)
	}
	cp := gate.CheckpointByKey(artifactKey)
	if cp == nil {
		return nil, nil, inputError("unknown checkpoint " + artifactKey + " in gate " + gateID)
	}
	return gate, cp, nil
}

// recordDecision writes a reviewer decision on a checkpoint and publishes the
// resulting gate status. The write is not applied while the gate is
// overridden; that condition propagates as store.ErrGateOverridden.
func (s *GovServer) recordDecision(ctx context.Context, projectID, gateID, artifactKey string, decision model.Decision, actor model.Actor) (workflow.GateView, error) {
	gate, cp, err := s.resolveCheckpoint(gateID, artifactKey)
	if err != nil {
		return workflow.GateView{}, err
	}
	if !model.CanReview(cp, actor.Role) {
		return workflow.GateView{}, forbiddenError("deciding " + artifactKey + " requires the " + cp.ReviewerRole + " role")
	}

	if err := s.store.RecordCheckpointDecision(ctx, projectID, gateID, artifactKey, decision, actor); err != nil {
		return workflow.GateView{}, err
	}

	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return workflow.GateView{}, err
	}
	view := workflow.BuildGateView(p, gate)

	s.publish(ctx, events.TopicCheckpointDecided, events.CheckpointDecided{
		ProjectID:   projectID,
		GateID:      gateID,
		ArtifactKey: artifactKey,
		Decision:    decision,
		DecidedBy:   actor.ID,
		GateStatus:  view.Status,
	})
	return view, nil
}

// recordPayload submits artifact evidence. The store replicates the payload
// to other gates that already track the same artifact key.
func (s *GovServer) recordPayload(ctx context.Context, projectID, gateID, artifactKey string, payload model.Payload, actor model.Actor) (workflow.GateView, error) {
	gate, cp, err := s.resolveCheckpoint(gateID, artifactKey)
	if err != nil {
		return workflow.GateView{}, err
	}
	if !model.CanSubmit(cp, actor.Role) {
		return workflow.GateView{}, forbiddenError("submitting " + artifactKey + " requires the " + cp.SubmitterRole + " role")
	}

	if err := s.store.RecordCheckpointPayload(ctx, projectID, gateID, artifactKey, payload, actor); err != nil {
		return workflow.GateView{}, err
	}

	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return workflow.GateView{}, err
	}

	s.publish(ctx, events.TopicCheckpointPayload, events.CheckpointPayloadSubmitted{
		ProjectID:   projectID,
		GateID:      gateID,
		ArtifactKey: artifactKey,
		Payload:     &payload,
		SubmittedBy: actor.ID,
	})
	return workflow.BuildGateView(p, gate), nil
}

// overrideGate pins the gate's status to the given value and cascades the
// decision to every checkpoint in the gate. Authority only.
func (s *GovServer) overrideGate(ctx context.Context, projectID, gateID string, status model.Decision, actor model.Actor, reason string) (workflow.GateView, error) {
	gate := s.plan.GateByID(gateID)
	if gate == nil {
		return workflow.GateView{}, inputError("unknown gate " + gateID)
	}
	if !model.IsAuthority(actor.Role) {
		return workflow.GateView{}, forbiddenError("overriding a gate requires the " + model.RoleAuthority + " role")
	}

	if err := s.store.RecordGateOverride(ctx, projectID, gateID, status, actor, reason); err != nil {
		return workflow.GateView{}, err
	}

	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return workflow.GateView{}, err
	}

	s.publish(ctx, events.TopicGateOverridden, events.GateOverridden{
		ProjectID: projectID,
		GateID:    gateID,
		Status:    status,
		By:        actor.ID,
		Reason:    reason,
	})
	return workflow.BuildGateView(p, gate), nil
}

// clearGateOverride lifts an override, recomputing the gate's status from
// its checkpoints. Authority only.
func (s *GovServer) clearGateOverride(ctx context.Context, projectID, gateID string, actor model.Actor, reason string) (workflow.GateView, error) {
	gate := s.plan.GateByID(gateID)
	if gate == nil {
		return workflow.GateView{}, inputError("unknown gate " + gateID)
	}
	if !model.IsAuthority(actor.Role) {
		return workflow.GateView{}, forbiddenError("clearing an override requires the " + model.RoleAuthority + " role")
	}

	if err := s.store.ClearGateOverride(ctx, projectID, gateID, actor, reason); err != nil {
		return workflow.GateView{}, err
	}

	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return workflow.GateView{}, err
	}
	view := workflow.BuildGateView(p, gate)

	s.publish(ctx, events.TopicGateOverrideCleared, events.GateOverrideCleared{
		ProjectID: projectID,
		GateID:    gateID,
		Status:    view.Status,
		By:        actor.ID,
	})
	return view, nil
}

// suggestDecision asks the advisory service for a non-binding suggestion on
// a checkpoint. Advisory failures degrade to the offline fallback; an
// Approve without artifact evidence is clamped before it is returned.
func (s *GovServer) suggestDecision(ctx context.Context, projectID, gateID, artifactKey string) (advisory.Suggestion, error) {
	gate, cp, err := s.resolveCheckpoint(gateID, artifactKey)
	if err != nil {
		return advisory.Suggestion{}, err
	}

	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return advisory.Suggestion{}, err
	}

	payload, err := s.store.GetArtifactPayload(ctx, projectID, artifactKey)
	if err != nil {
		return advisory.Suggestion{}, err
	}

	req := advisory.Request{
		Project:     p,
		Gate:        gate,
		Checkpoint:  cp,
		HasArtifact: payload != nil,
		Payload:     payload,
		PolicyNotes: s.policy,
	}
	return advisory.Advise(ctx, s.suggester, req), nil
}
