package server

import (
	"context"
	"fmt"
	"time"

	"github.com/groblegark/gatekeep/internal/events"
	"github.com/groblegark/gatekeep/internal/idgen"
	"github.com/groblegark/gatekeep/internal/model"
	"github.com/groblegark/gatekeep/internal/workflow"
)

// createProjectInput holds transport-agnostic parameters for creating a project.
type createProjectInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Owner       string      `json:"owner"`
	Actor       model.Actor `json:"actor"`
}

// createProject validates input, persists a new project, and publishes a
// ProjectCreated event. Returns inputError for validation failures.
func (s *GovServer) createProject(ctx context.Context, in createProjectInput) (*model.Project, error) {
	if in.Name == "" {
		return nil, inputError("name is required")
	}

	now := time.Now().UTC()
	id, err := idgen.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ID: %w", err)
	}

	p := &model.Project{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Owner:       in.Owner,
		Status:      model.ProjectOngoing,
		CreatedAt:   now,
		CreatedBy:   in.Actor.ID,
		UpdatedAt:   now,
		Gates:       make(map[string]*model.GateState),
	}

	if err := model.ValidateProject(p); err != nil {
		return nil, inputError(err.Error())
	}
	if err := s.store.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TopicProjectCreated, events.ProjectCreated{Project: p})
	return p, nil
}

// setProjectStatus updates the lifecycle status (ONGOING or COMPLETED).
func (s *GovServer) setProjectStatus(ctx context.Context, id string, status model.ProjectStatus, actor model.Actor) (*model.Project, error) {
	p, err := s.store.UpdateProjectStatus(ctx, id, status, actor)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.TopicProjectStatus, events.ProjectStatusChanged{
		ProjectID: id,
		Status:    status,
		ChangedBy: actor.ID,
	})
	return p, nil
}

// advanceProject moves the project to the next gate after verifying the
// actor's authority and the current gate's advancement conditions: the gate
// must read Approve and every required artifact must have evidence.
func (s *GovServer) advanceProject(ctx context.Context, id string, actor model.Actor) (*model.Project, error) {
	if !model.IsAuthority(actor.Role) {
		return nil, forbiddenError("advancing a gate requires the " + model.RoleAuthority + " role")
	}

	p, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	idx := p.CurrentGateIndex
	if idx >= len(s.plan.Gates) {
		idx = len(s.plan.Gates) - 1
	}
	gate := &s.plan.Gates[idx]
	view := workflow.BuildGateView(p, gate)
	if !view.CanAdvance {
		return nil, inputError(fmt.Sprintf("gate %s is not ready to advance: status is %s and required artifacts must be present", gate.ID, view.Status))
	}

	p, err = s.store.AdvanceProjectGate(ctx, id, s.plan.MaxGateIndex())
	if err != nil {
		return nil, err
	}

	ev := events.ProjectAdvanced{ProjectID: id, GateIndex: p.CurrentGateIndex, MovedBy: actor.ID}
	if p.CurrentGateIndex < len(s.plan.Gates) {
		ev.GateID = s.plan.Gates[p.CurrentGateIndex].ID
	}
	s.publish(ctx, events.TopicProjectAdvanced, ev)
	return p, nil
}

// projectView pairs a project with the effective view of every gate in plan
// order.
type projectView struct {
	Project *model.Project      `json:"project"`
	Gates   []workflow.GateView `json:"gates"`
}

func (s *GovServer) buildProjectView(p *model.Project) projectView {
	view := projectView{Project: p}
	for i := range s.plan.Gates {
		view.Gates = append(view.Gates, workflow.BuildGateView(p, &s.plan.Gates[i]))
	}
	return view
}
