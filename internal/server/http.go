package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/groblegark/gatekeep/internal/store"
)

// NewHTTPHandler returns an http.Handler with all routes registered.
// When authToken is non-empty, requests (except GET /v1/health) must include
// a valid Authorization: Bearer <token> header.
func (s *GovServer) NewHTTPHandler(authToken string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/projects", s.handleCreateProject)
	mux.HandleFunc("GET /v1/projects", s.handleListProjects)
	mux.HandleFunc("GET /v1/projects/{id}", s.handleGetProject)
	mux.HandleFunc("POST /v1/projects/{id}/status", s.handleSetProjectStatus)
	mux.HandleFunc("POST /v1/projects/{id}/advance", s.handleAdvanceProject)
	mux.HandleFunc("GET /v1/projects/{id}/gates/{gate_id}", s.handleGetGate)
	mux.HandleFunc("POST /v1/projects/{id}/gates/{gate_id}/checkpoints/{key}/decision", s.handleRecordDecision)
	mux.HandleFunc("POST /v1/projects/{id}/gates/{gate_id}/checkpoints/{key}/payload", s.handleRecordPayload)
	mux.HandleFunc("POST /v1/projects/{id}/gates/{gate_id}/checkpoints/{key}/suggest", s.handleSuggest)
	mux.HandleFunc("POST /v1/projects/{id}/gates/{gate_id}/override", s.handleOverrideGate)
	mux.HandleFunc("DELETE /v1/projects/{id}/gates/{gate_id}/override", s.handleClearOverride)
	mux.HandleFunc("GET /v1/projects/{id}/gates/{gate_id}/audit", s.handleGetAudit)
	mux.HandleFunc("GET /v1/projects/{id}/artifacts/{key}", s.handleGetArtifact)
	mux.HandleFunc("GET /v1/gates", s.handleListGates)
	mux.HandleFunc("GET /v1/health", s.handleHealth)
	return AuthMiddleware(authToken, mux)
}

// handleHealth handles GET /v1/health.
func (s *GovServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListGates handles GET /v1/gates: the immutable gate plan.
func (s *GovServer) handleListGates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.plan)
}

// writeOpError maps business and store errors onto HTTP status codes.
func writeOpError(w http.ResponseWriter, err error) {
	var ie inputError
	var fe forbiddenError
	switch {
	case errors.As(err, &ie):
		writeError(w, http.StatusBadRequest, ie.Error())
	case errors.As(err, &fe):
		writeError(w, http.StatusForbidden, fe.Error())
	case errors.Is(err, store.ErrUnknownProject):
		writeError(w, http.StatusNotFound, "project not found")
	case errors.Is(err, store.ErrDuplicateProject):
		writeError(w, http.StatusConflict, "project already exists")
	case errors.Is(err, store.ErrInvalidDecision), errors.Is(err, store.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrGateOverridden):
		writeError(w, http.StatusConflict, "decision not applied: gate is overridden")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
