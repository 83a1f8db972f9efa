package server

import (
	"encoding/json"
	"net/http"

	"github.com/groblegark/gatekeep/internal/model"
	"github.com/groblegark/gatekeep/internal/workflow"
)

// handleGetGate handles GET /v1/projects/{id}/gates/{gate_id}: the effective
// view of one gate (override-aware decisions, cross-gate payloads).
func (s *GovServer) handleGetGate(w http.ResponseWriter, r *http.Request) {
	gate := s.plan.GateByID(r.PathValue("gate_id"))
	if gate == nil {
		writeError(w, http.StatusNotFound, "gate not found")
		return
	}

	p, err := s.store.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		writeOpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workflow.BuildGateView(p, gate))
}

// handleRecordDecision handles
// POST /v1/projects/{id}/gates/{gate_id}/checkpoints/{key}/decision.
func (s *GovServer) handleRecordDecision(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Decision model.Decision `json:"decision"`
		Actor    model.Actor    `json:"actor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	view, err := s.recordDecision(r.Context(), r.PathValue("id"), r.PathValue("gate_id"), r.PathValue("key"), in.Decision, in.Actor)
	if err != nil {
		writeOpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// handleRecordPayload handles
// POST /v1/projects/{id}/gates/{gate_id}/checkpoints/{key}/payload.
func (s *GovServer) handleRecordPayload(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Payload model.Payload `json:"payload"`
		Actor   model.Actor   `json:"actor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	view, err := s.recordPayload(r.Context(), r.PathValue("id"), r.PathValue("gate_id"), r.PathValue("key"), in.Payload, in.Actor)
	if err != nil {
		writeOpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// handleOverrideGate handles POST /v1/projects/{id}/gates/{gate_id}/override.
func (s *GovServer) handleOverrideGate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status model.Decision `json:"status"`
		Reason string         `json:"reason"`
		Actor  model.Actor    `json:"actor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	view, err := s.overrideGate(r.Context(), r.PathValue("id"), r.PathValue("gate_id"), in.Status, in.Actor, in.Reason)
	if err != nil {
		writeOpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// handleClearOverride handles DELETE /v1/projects/{id}/gates/{gate_id}/override.
// The actor is carried in the body since DELETE requests here still name who
// acted and why.
func (s *GovServer) handleClearOverride(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Reason string      `json:"reason"`
		Actor  model.Actor `json:"actor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	view, err := s.clearGateOverride(r.Context(), r.PathValue("id"), r.PathValue("gate_id"), in.Actor, in.Reason)
	if err != nil {
		writeOpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// handleGetAudit handles GET /v1/projects/{id}/gates/{gate_id}/audit.
func (s *GovServer) handleGetAudit(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.GetAuditTrail(r.Context(), r.PathValue("id"), r.PathValue("gate_id"))
	if err != nil {
		writeOpError(w, err)
		return
	}

	if events == nil {
		events = []model.AuditEvent{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"audit": events})
}

// handleGetArtifact handles GET /v1/projects/{id}/artifacts/{key}: the first
// payload recorded for the key in any gate.
func (s *GovServer) handleGetArtifact(w http.ResponseWriter, r *http.Request) {
	payload, err := s.store.GetArtifactPayload(r.Context(), r.PathValue("id"), r.PathValue("key"))
	if err != nil {
		writeOpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"artifact_key": r.PathValue("key"),
		"present":      payload != nil,
		"payload":      payload,
	})
}

// handleSuggest handles
// POST /v1/projects/{id}/gates/{gate_id}/checkpoints/{key}/suggest.
func (s *GovServer) handleSuggest(w http.ResponseWriter, r *http.Request) {
	sug, err := s.suggestDecision(r.Context(), r.PathValue("id"), r.PathValue("gate_id"), r.PathValue("key"))
	if err != nil {
		writeOpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sug)
}
