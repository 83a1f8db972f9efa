package sync

import (
	"context"
	"sort"

	"github.com/groblegark/gatekeep/internal/model"
	"github.com/groblegark/gatekeep/internal/store"
)

// mockStore is a minimal in-memory store for sync tests.
type mockStore struct {
	projects map[string]*model.Project
}

func newMockStore() *mockStore {
	return &mockStore{projects: make(map[string]*model.Project)}
}

func (m *mockStore) CreateProject(_ context.Context, p *model.Project) error {
	m.projects[p.ID] = p
	return nil
}

func (m *mockStore) GetProject(_ context.Context, id string) (*model.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, store.ErrUnknownProject
	}
	return p, nil
}

func (m *mockStore) ListProjects(_ context.Context) ([]*model.Project, error) {
	var result []*model.Project
	for _, p := range m.projects {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockStore) UpdateProjectStatus(_ context.Context, id string, status model.ProjectStatus, _ model.Actor) (*model.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, store.ErrUnknownProject
	}
	p.Status = status
	return p, nil
}

func (m *mockStore) RecordCheckpointDecision(_ context.Context, _, _, _ string, _ model.Decision, _ model.Actor) error {
	return nil
}

func (m *mockStore) RecordCheckpointPayload(_ context.Context, _, _, _ string, _ model.Payload, _ model.Actor) error {
	return nil
}

func (m *mockStore) RecordGateOverride(_ context.Context, _, _ string, _ model.Decision, _ model.Actor, _ string) error {
	return nil
}

func (m *mockStore) ClearGateOverride(_ context.Context, _, _ string, _ model.Actor, _ string) error {
	return nil
}

func (m *mockStore) GetArtifactPayload(_ context.Context, _, _ string) (*model.Payload, error) {
	return nil, nil
}

func (m *mockStore) GetAuditTrail(_ context.Context, _, _ string) ([]model.AuditEvent, error) {
	return nil, nil
}

func (m *mockStore) AdvanceProjectGate(_ context.Context, id string, maxIndex int) (*model.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, store.ErrUnknownProject
	}
	if p.CurrentGateIndex < maxIndex {
		p.CurrentGateIndex++
	}
	return p, nil
}

func (m *mockStore) Close() error {
	return nil
}
