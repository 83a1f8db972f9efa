package main

import (
	"testing"

	"github.com/groblegark/gatekeep/internal/model"
)

func TestDecisionGlyph(t *testing.T) {
	tests := []struct {
		decision model.Decision
		want     string
	}{
		{model.DecisionApprove, "●"},
		{model.DecisionReject, "✗"},
		{model.DecisionReScope, "◐"},
		{model.DecisionPending, "○"},
		{model.Decision("bogus"), "○"},
	}
	for _, tt := range tests {
		if got := decisionGlyph(tt.decision); got != tt.want {
			t.Errorf("decisionGlyph(%q) = %q, want %q", tt.decision, got, tt.want)
		}
	}
}

func TestCallerActor(t *testing.T) {
	actorID = "alice"
	actorRole = "DomainSME"
	a := callerActor()
	if a.ID != "alice" || a.Role != "DomainSME" {
		t.Errorf("callerActor() = %+v", a)
	}
}
