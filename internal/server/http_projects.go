package server

import (
	"encoding/json"
	"net/http"

	"github.com/groblegark/gatekeep/internal/model"
)

// handleCreateProject handles POST /v1/projects.
func (s *GovServer) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var in createProjectInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p, err := s.createProject(r.Context(), in)
	if err != nil {
		writeOpError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// handleListProjects handles GET /v1/projects.
func (s *GovServer) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	// Ensure projects is never null in JSON output.
	if projects == nil {
		projects = []*model.Project{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"projects": projects,
		"total":    len(projects),
	})
}

// handleGetProject handles GET /v1/projects/{id}: the project plus the
// effective view of every gate.
func (s *GovServer) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		writeOpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.buildProjectView(p))
}

// handleSetProjectStatus handles POST /v1/projects/{id}/status.
func (s *GovServer) handleSetProjectStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status model.ProjectStatus `json:"status"`
		Actor  model.Actor         `json:"actor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p, err := s.setProjectStatus(r.Context(), r.PathValue("id"), in.Status, in.Actor)
	if err != nil {
		writeOpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// handleAdvanceProject handles POST /v1/projects/{id}/advance.
func (s *GovServer) handleAdvanceProject(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Actor model.Actor `json:"actor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p, err := s.advanceProject(r.Context(), r.PathValue("id"), in.Actor)
	if err != nil {
		writeOpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.buildProjectView(p))
}
