package model

import "testing"

func TestDecision_IsValid(t *testing.T) {
	for _, tc := range []struct {
		decision Decision
		want     bool
	}{
		{DecisionApprove, true},
		{DecisionReject, true},
		{DecisionReScope, true},
		{DecisionPending, true},
		{Decision(""), false},
		{Decision("approve"), false},
		{Decision("Maybe"), false},
	} {
		if got := tc.decision.IsValid(); got != tc.want {
			t.Errorf("Decision(%q).IsValid() = %v, want %v", tc.decision, got, tc.want)
		}
	}
}

func TestProjectStatus_IsValid(t *testing.T) {
	for _, tc := range []struct {
		status ProjectStatus
		want   bool
	}{
		{ProjectOngoing, true},
		{ProjectCompleted, true},
		{ProjectStatus(""), false},
		{ProjectStatus("ongoing"), false},
	} {
		if got := tc.status.IsValid(); got != tc.want {
			t.Errorf("ProjectStatus(%q).IsValid() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestProject_Gate_AutoCreates(t *testing.T) {
	p := &Project{ID: "prj-1"}
	g := p.Gate("G1")
	if g == nil {
		t.Fatal("Gate returned nil")
	}
	if g.GateStatus != DecisionPending {
		t.Errorf("new gate status = %q, want Pending", g.GateStatus)
	}
	if g.Overridden {
		t.Error("new gate should not be overridden")
	}
	if got := p.Gate("G1"); got != g {
		t.Error("second Gate call should return the same container")
	}
}

func TestGateState_Checkpoint_AutoCreates(t *testing.T) {
	g := NewGateState()
	cp := g.Checkpoint("model-card")
	if cp.Decision != DecisionPending {
		t.Errorf("new checkpoint decision = %q, want Pending", cp.Decision)
	}
	cp.Decision = DecisionApprove
	if got := g.Checkpoint("model-card"); got.Decision != DecisionApprove {
		t.Error("second Checkpoint call should return the same container")
	}
}
